package model

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#1976d2")
	secondary = lipgloss.Color("#424242")
	accent    = lipgloss.Color("#fbc02d")
	muted     = lipgloss.Color("#858585")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	headingStyle = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(accent)

	starOnStyle  = lipgloss.NewStyle().Foreground(accent)
	starOffStyle = lipgloss.NewStyle().Foreground(muted)
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	cursorStyle  = lipgloss.NewStyle().Foreground(accent)

	saveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(primary).Padding(0, 1)
	deleteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(secondary).Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(accent)
)
