package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorTeal           = lipgloss.Color("#00F19F") // highlights, titles
	ColorActivity       = lipgloss.Color("#0093E7") // steps, workouts
	ColorHeart          = lipgloss.Color("#FF5A79") // heart rate series
	ColorRecoveryBlue   = lipgloss.Color("#67AEE6") // recovery without a score
	ColorHighRecovery   = lipgloss.Color("#16EC06") // recovery 100-67
	ColorMediumRecovery = lipgloss.Color("#FFDE00") // recovery 66-34
	ColorLowRecovery    = lipgloss.Color("#FF0026") // recovery 33-0, errors
	ColorSleep          = lipgloss.Color("#7BA1BB")
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)
