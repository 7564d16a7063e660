package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette for the TUI. Each field maps to a
// semantic role used by the status bar, prompts and overlays.
type Theme struct {
	Name string

	Accent  lipgloss.Color
	Dim     lipgloss.Color
	Text    lipgloss.Color
	Bg      lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var themeDefault = Theme{
	Name:    "default",
	Accent:  lipgloss.Color("#7aa2f7"), // blue
	Dim:     lipgloss.Color("#565f89"), // dim gray
	Text:    lipgloss.Color("#c0caf5"), // light text
	Bg:      lipgloss.Color("#1a1b26"), // dark background
	Border:  lipgloss.Color("#3b4261"),
	Success: lipgloss.Color("#9ece6a"), // green
	Error:   lipgloss.Color("#f7768e"), // red
}

// GitHub/Primer palettes, reduced to the few roles used here.

var themeGitHubDark = Theme{
	Name:    "github-dark",
	Accent:  lipgloss.Color("#4493f8"),
	Dim:     lipgloss.Color("#9198a1"),
	Text:    lipgloss.Color("#f0f6fc"),
	Bg:      lipgloss.Color("#0d1117"),
	Border:  lipgloss.Color("#3d444d"),
	Success: lipgloss.Color("#3fb950"),
	Error:   lipgloss.Color("#f85149"),
}

var themeGitHubDarkHighContrast = Theme{
	Name:    "github-dark-high-contrast",
	Accent:  lipgloss.Color("#74b9ff"),
	Dim:     lipgloss.Color("#b7bdc8"),
	Text:    lipgloss.Color("#ffffff"),
	Bg:      lipgloss.Color("#010409"),
	Border:  lipgloss.Color("#b7bdc8"),
	Success: lipgloss.Color("#2bd853"),
	Error:   lipgloss.Color("#ff9492"),
}

// ANSI base colours, so the user's terminal palette decides.
var themeTerminal = Theme{
	Name:    "terminal",
	Accent:  lipgloss.Color("11"), // bright yellow
	Dim:     lipgloss.Color("7"),
	Text:    lipgloss.Color("15"),
	Bg:      lipgloss.Color("0"),
	Border:  lipgloss.Color("8"),
	Success: lipgloss.Color("10"),
	Error:   lipgloss.Color("9"),
}

// ThemeByName returns a named theme. Falls back to default for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "github-dark":
		return themeGitHubDark
	case "github-dark-high-contrast", "high-contrast":
		return themeGitHubDarkHighContrast
	case "terminal":
		return themeTerminal
	case "":
		return themeGitHubDarkHighContrast
	default:
		return themeDefault
	}
}

// ApplyTheme sets the package-level colour and style variables from a Theme.
func ApplyTheme(t Theme) {
	accentColor = t.Accent
	dimColor = t.Dim
	textColor = t.Text
	bgColor = t.Bg
	borderColor = t.Border
	successColor = t.Success
	errorColor = t.Error

	statusBarStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(dimColor)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor)
	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(dimColor).Italic(true)
}

// ThemeNames returns the available theme names for help text.
func ThemeNames() []string {
	return []string{
		"default",
		"github-dark",
		"github-dark-high-contrast",
		"terminal",
	}
}
