package tui

import "github.com/charmbracelet/lipgloss"

// Global styles used across views. Colors follow the original web palette:
// blue session boxes, pink favorites, red time cursor, yellow 30min badge.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dayTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("246"))

	dayTabActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("170")).
				Underline(true)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252"))

	timeGutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	// The "now" row marker, red like the original cursor line
	timeNowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	sessionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#DBEAFE")).
			Foreground(lipgloss.Color("#1E40AF"))

	favoriteStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFC7C7")).
			Foreground(lipgloss.Color("#7F1D1D"))

	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	continuationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	shortBadgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FEF08A")).
			Foreground(lipgloss.Color("#A16207"))

	footerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1E40AF"))

	footerMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// badgeStyle renders a tag badge with its table color as background.
func badgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#FFFFFF"))
}
