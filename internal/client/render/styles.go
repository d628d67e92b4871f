package render

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGray   = lipgloss.Color("#6272A4")
	colorWhite  = lipgloss.Color("#F8F8F2")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	labelStyle   = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	pointStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	loadingStyle = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorGray)
	infoStyle    = lipgloss.NewStyle().Foreground(colorCyan)
)
