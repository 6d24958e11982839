package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Status oauth.Status
	// Email is shown once identity resolves.
	Email string
}

func (a Indicator) Render() string {
	if a.Status.Pending {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if a.Status.Authenticated {
		label := "signed in"
		if a.Email != "" {
			label = a.Email
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorHighRecovery).
			Render(statusDot + " " + label)
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorLowRecovery).
		Render(statusDot + " signed out")
}
