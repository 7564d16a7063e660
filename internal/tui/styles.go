package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#7aa2f7")
	dimColor     = lipgloss.Color("#565f89")
	textColor    = lipgloss.Color("#c0caf5")
	bgColor      = lipgloss.Color("#1a1b26")
	borderColor  = lipgloss.Color("#3b4261")
	successColor = lipgloss.Color("#9ece6a")
	errorColor   = lipgloss.Color("#f7768e")

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)

	// Jump prompt and empty-deck placeholder
	promptStyle      = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(dimColor).Italic(true)
)
