package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the tomato palette.
const (
	primaryColor   = "#FF6B6B" // Tomato red
	secondaryColor = "#4ECDC4" // Turquoise
	accentColor    = "#FFE66D" // Yellow
	workColor      = "#F97316" // Orange
	breakColor     = "#22C55E" // Green
	backgroundDark = "#1E1E2E"
	dimColor       = "#6B7280" // Gray
	mutedColor     = "#9CA3AF"
)

// Exported colors for components that take a color string.
const (
	WorkColor  = workColor
	BreakColor = breakColor
	EmptyColor = "#374151"
)

// Style variables for consistent TUI rendering.
var (
	// TitleStyle renders the screen titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SubtitleStyle renders secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// LabelStyle renders statistic labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor))

	// AccentStyle highlights keys and streaks.
	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	// ErrorStyle renders persistence failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))

	// OptionStyle renders an unselected mode.
	OptionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Width(24).
			Align(lipgloss.Center)

	// BannerStyle renders the "Pomodoro completed!" message.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(backgroundDark)).
			Background(lipgloss.Color(breakColor)).
			Bold(true).
			Padding(0, 1)

	// PausedStyle renders the paused indicator.
	PausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Blink(true)

	// DialogStyle frames confirmation dialogs.
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// PhaseColor returns the accent used for a work or break phase.
func PhaseColor(isBreak bool) lipgloss.Color {
	if isBreak {
		return lipgloss.Color(breakColor)
	}
	return lipgloss.Color(workColor)
}

// SelectedOptionStyle renders the highlighted mode in the menu.
func SelectedOptionStyle(color lipgloss.Color) lipgloss.Style {
	return OptionStyle.
		BorderForeground(color).
		Foreground(lipgloss.Color(backgroundDark)).
		Background(color).
		Bold(true)
}

// ModeColor returns the highlight color for the menu entry at index.
func ModeColor(index int) lipgloss.Color {
	if index == 0 {
		return lipgloss.Color(workColor)
	}
	return lipgloss.Color(secondaryColor)
}

// ClockStyle frames the MM:SS display in the phase color.
func ClockStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(1, 6).
		Align(lipgloss.Center)
}
