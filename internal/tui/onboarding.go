package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/healthion/internal/tui/theme"
)

// SignedOutView is shown when no credential is stored.
func (m *Model) SignedOutView() string {
	commandStyle := lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(theme.ColorTeal).
		Padding(0, 2).
		Bold(true)

	var (
		title    = m.theme.Title().Render("Not signed in")
		subtitle = m.theme.TextAccent().Render("Store a bearer token to view your health data")
		command  = commandStyle.Render("healthion auth <token>")
		hint     = m.theme.Muted().Render("Press q to quit")
	)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.LogoView(),
		"",
		"",
		title,
		"",
		subtitle,
		"",
		command,
		"",
		hint,
	)
}
