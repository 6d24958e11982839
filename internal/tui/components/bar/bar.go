package bar

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/healthion/internal/tui/theme"
)

const (
	DefaultWidth = 24
	fillRune     = "█"
	trackRune    = "░"
	placeholder  = "--"
)

// Bar is a horizontal meter for a single score. A nil value renders an empty
// track with a placeholder.
type Bar struct {
	value  *float64
	max    float64
	label  string
	unit   string
	detail string
	color  color.Color
	width  int
}

func New(value *float64, max float64, label string, c color.Color) Bar {
	return Bar{
		value: value,
		max:   max,
		label: label,
		color: c,
		width: DefaultWidth,
	}
}

func (b Bar) WithWidth(width int) Bar {
	b.width = max(width, 1)
	return b
}

func (b Bar) WithUnit(unit string) Bar {
	b.unit = unit
	return b
}

// WithDetail sets a secondary line rendered under the value.
func (b Bar) WithDetail(detail string) Bar {
	b.detail = detail
	return b
}

// Filled returns how many of width cells value fills out of max, clamped to
// [0, width].
func Filled(value float64, max float64, width int) int {
	if max <= 0 || width <= 0 || math.IsNaN(value) || value <= 0 {
		return 0
	}
	n := int(math.Round(value / max * float64(width)))
	return min(n, width)
}

func (b Bar) Render() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(b.color).
		Bold(true)
	fillStyle := lipgloss.NewStyle().Foreground(b.color)
	trackStyle := lipgloss.NewStyle().Foreground(theme.ColorBgLight)

	filled := 0
	value := placeholder
	if b.value != nil {
		filled = Filled(*b.value, b.max, b.width)
		value = strconv.FormatFloat(*b.value, 'f', 0, 64) + b.unit
	}

	track := fillStyle.Render(strings.Repeat(fillRune, filled)) +
		trackStyle.Render(strings.Repeat(trackRune, b.width-filled))

	lines := []string{
		labelStyle.Render(b.label),
		track,
		valueStyle.Render(value),
	}
	if b.detail != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ColorDim).Render(b.detail))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
