package tui

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/resource"
	"github.com/garrettladley/healthion/internal/session"
	"github.com/garrettladley/healthion/internal/tui/components/auth"
	"github.com/garrettladley/healthion/internal/tui/components/bar"
	"github.com/garrettladley/healthion/internal/tui/theme"
)

type DashboardState struct {
	AuthIndicator auth.Indicator
	Identity      *session.Identity
}

const (
	cardWidth   = 30
	barWidth    = cardWidth - 4
	cardSpacing = "  "
	stepGoal    = 10000
)

func (m *Model) DashboardView() string {
	r := m.deps.Resources

	var top, bottom []string
	if r.Recovery != nil {
		top = append(top, m.recoveryCard(r.Recovery))
	}
	if r.Sleep != nil {
		top = append(top, m.sleepCard(r.Sleep))
	}
	if r.Activity != nil {
		top = append(top, m.activityCard(r.Activity))
	}
	if r.Timeseries != nil {
		bottom = append(bottom, m.heartRateCard(r.Timeseries))
	}
	if r.Workouts != nil {
		bottom = append(bottom, m.workoutsCard(r.Workouts))
	}
	if r.Connections != nil {
		bottom = append(bottom, m.connectionsCard(r.Connections))
	}

	hint := "r refresh · q quit"
	if m.state.refreshing {
		hint = "refreshing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.greeting(),
		"",
		row(top),
		"",
		row(bottom),
		"",
		m.theme.Muted().Render(hint),
	)
}

func (m *Model) AuthIndicatorView() string {
	return m.state.dashboard.AuthIndicator.Render()
}

func (m *Model) greeting() string {
	if id := m.state.dashboard.Identity; id != nil && id.Email != "" {
		return m.theme.Title().Render("Health overview for " + id.Email)
	}
	return m.theme.Title().Render("Health overview")
}

func row(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cards)*2-1)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, cardSpacing)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// card renders body, or a loading, empty or error line when there is nothing
// to show. A failed refresh over existing data shows both.
func card[T any](t theme.Theme, title string, s resource.State[T], empty bool, body func() string) string {
	var content string
	switch {
	case !empty:
		content = body()
		if s.Error != "" {
			content += "\n" + t.ErrorText().Render(s.Error)
		}
	case s.Error != "":
		content = t.ErrorText().Render(s.Error)
	case s.Loading:
		content = t.Muted().Render("loading...")
	default:
		content = t.Muted().Render("no data")
	}

	return t.Card(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, t.Title().Render(title), content),
	)
}

func (m *Model) recoveryCard(p *resource.Page[healthion.RecoverySummary]) string {
	score := latestRecoveryScore(p.Items())
	return card(m.theme, "Recovery", p.State(), score == nil, func() string {
		return bar.New(score, 100, "SCORE", recoveryColor(score)).
			WithWidth(barWidth).
			WithUnit("%").
			Render()
	})
}

func (m *Model) sleepCard(p *resource.Page[healthion.SleepSession]) string {
	sleep, ok := latestSleep(p.Items())
	return card(m.theme, "Sleep", p.State(), !ok, func() string {
		return bar.New(sleep.EfficiencyPercent, 100, "EFFICIENCY", theme.ColorSleep).
			WithWidth(barWidth).
			WithUnit("%").
			WithDetail(formatDuration(sleep.DurationSeconds) + " asleep").
			Render()
	})
}

func (m *Model) activityCard(p *resource.Page[healthion.ActivitySummary]) string {
	summary, ok := latestActivity(p.Items())
	return card(m.theme, "Activity", p.State(), !ok, func() string {
		var steps *float64
		if summary.Steps != nil {
			v := float64(*summary.Steps)
			steps = &v
		}
		return bar.New(steps, stepGoal, "STEPS", theme.ColorActivity).
			WithWidth(barWidth).
			WithDetail(summary.Date).
			Render()
	})
}

func (m *Model) heartRateCard(ts *resource.Timeseries) string {
	stats, ok := summarizeSeries(ts.Points())
	return card(m.theme, "Heart rate", ts.State(), !ok, func() string {
		value := lipgloss.NewStyle().
			Foreground(theme.ColorHeart).
			Bold(true).
			Render(fmt.Sprintf("%.0f %s", stats.last, stats.unit))
		detail := m.theme.Muted().Render(fmt.Sprintf("min %.0f · max %.0f · %d samples", stats.min, stats.max, stats.count))
		return lipgloss.JoinVertical(lipgloss.Left, value, detail)
	})
}

func (m *Model) workoutsCard(p *resource.Page[healthion.EventWorkout]) string {
	workouts := p.Items()
	return card(m.theme, "Workouts", p.State(), len(workouts) == 0, func() string {
		latest := slices.MaxFunc(workouts, func(a, b healthion.EventWorkout) int {
			return a.StartTime.Compare(b.StartTime)
		})
		lines := []string{
			lipgloss.NewStyle().
				Foreground(theme.ColorActivity).
				Bold(true).
				Render(fmt.Sprintf("%d in the last %d days", len(workouts), resource.DateLookbackDays)),
			m.theme.Muted().Render("latest: " + workoutLabel(latest)),
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func (m *Model) connectionsCard(c *resource.Connections) string {
	active := c.Active()
	return card(m.theme, "Connections", c.State(), len(c.Connections()) == 0, func() string {
		if len(active) == 0 {
			return m.theme.Muted().Render("no active providers")
		}
		names := make([]string, 0, len(active))
		for _, conn := range active {
			names = append(names, conn.Provider)
		}
		return m.theme.TextAccent().Render(strings.Join(names, ", "))
	})
}

func recoveryColor(score *float64) color.Color {
	if score == nil {
		return theme.ColorRecoveryBlue
	}

	s := *score
	switch {
	case s >= 67:
		return theme.ColorHighRecovery
	case s >= 34:
		return theme.ColorMediumRecovery
	default:
		return theme.ColorLowRecovery
	}
}

// latestRecoveryScore returns the score of the most recent day that has one.
func latestRecoveryScore(items []healthion.RecoverySummary) *float64 {
	scored := slices.DeleteFunc(slices.Clone(items), func(s healthion.RecoverySummary) bool {
		return s.RecoveryScore == nil
	})
	if len(scored) == 0 {
		return nil
	}
	latest := slices.MaxFunc(scored, func(a, b healthion.RecoverySummary) int {
		return strings.Compare(a.Date, b.Date)
	})
	v := float64(*latest.RecoveryScore)
	return &v
}

// latestSleep prefers the most recent main sleep over naps.
func latestSleep(items []healthion.SleepSession) (healthion.SleepSession, bool) {
	if len(items) == 0 {
		return healthion.SleepSession{}, false
	}
	candidates := slices.DeleteFunc(slices.Clone(items), func(s healthion.SleepSession) bool {
		return s.IsNap
	})
	if len(candidates) == 0 {
		candidates = items
	}
	return slices.MaxFunc(candidates, func(a, b healthion.SleepSession) int {
		return a.StartTime.Compare(b.StartTime)
	}), true
}

func latestActivity(items []healthion.ActivitySummary) (healthion.ActivitySummary, bool) {
	if len(items) == 0 {
		return healthion.ActivitySummary{}, false
	}
	return slices.MaxFunc(items, func(a, b healthion.ActivitySummary) int {
		return strings.Compare(a.Date, b.Date)
	}), true
}

type seriesStats struct {
	last  float64
	min   float64
	max   float64
	unit  string
	count int
}

func summarizeSeries(points []healthion.DataPoint) (seriesStats, bool) {
	if len(points) == 0 {
		return seriesStats{}, false
	}

	latest := slices.MaxFunc(points, func(a, b healthion.DataPoint) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	stats := seriesStats{
		last:  latest.Value,
		min:   latest.Value,
		max:   latest.Value,
		unit:  latest.Unit,
		count: len(points),
	}
	for _, p := range points {
		stats.min = min(stats.min, p.Value)
		stats.max = max(stats.max, p.Value)
	}
	return stats, true
}

func workoutLabel(w healthion.EventWorkout) string {
	label := w.Type
	if w.Name != nil && *w.Name != "" {
		label = *w.Name
	}
	if w.DurationSeconds != nil {
		label += " (" + formatDuration(*w.DurationSeconds) + ")"
	}
	return label
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
