package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// usagePane is the full-screen key reference. Sections are kept so a
// resize re-wraps them; the last row is a footer with the scroll position.
type usagePane struct {
	viewport viewport.Model
	width    int
	title    string
	sections []usageSection
}

type usageSection struct {
	title string
	rows  []usageRow
}

type usageRow struct {
	keys string
	desc string
}

func newUsagePane() usagePane {
	return usagePane{viewport: viewport.New(0, 0)}
}

func (u *usagePane) SetSize(w, h int) {
	u.width = max(0, w)
	u.viewport.Width = u.width
	u.viewport.Height = max(0, h-1)
	if u.sections != nil {
		u.render()
	}
}

// Show replaces the content and scrolls back to the top.
func (u *usagePane) Show(title string, sections []usageSection) {
	u.title = title
	u.sections = sections
	u.render()
	u.viewport.GotoTop()
}

func (u *usagePane) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		u.viewport, cmd = u.viewport.Update(msg)
		return cmd
	}
	switch km.String() {
	case "j", "down":
		u.viewport.LineDown(1)
	case "k", "up":
		u.viewport.LineUp(1)
	case "pgdown", " ", "f":
		u.viewport.ViewDown()
	case "pgup", "b":
		u.viewport.ViewUp()
	case "ctrl+d":
		u.viewport.HalfViewDown()
	case "ctrl+u":
		u.viewport.HalfViewUp()
	case "g", "home":
		u.viewport.GotoTop()
	case "G", "end":
		u.viewport.GotoBottom()
	}
	return nil
}

func (u *usagePane) View() string {
	footer := fmt.Sprintf("u/esc close  pgup/pgdn scroll  %3.0f%%", u.viewport.ScrollPercent()*100)
	footer = statusDescStyle.Render(ansi.Truncate(footer, u.width, ""))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(u.width).Height(u.viewport.Height).Render(u.viewport.View()),
		footer,
	)
}

// render lays sections out as a two-column table. Keys longer than half
// the width are cut; descriptions wrap under their own column, breaking
// words that do not fit.
func (u *usagePane) render() {
	width := u.width
	if width <= 0 {
		width = 80
	}

	keyW := 0
	for _, s := range u.sections {
		for _, r := range s.rows {
			keyW = max(keyW, lipgloss.Width(r.keys))
		}
	}
	keyW = min(keyW+2, max(8, width/2))
	descW := max(10, width-2-keyW)

	keyStyle := lipgloss.NewStyle().Foreground(accentColor).Width(keyW)
	descStyle := lipgloss.NewStyle().Foreground(textColor)
	titleStyle := lipgloss.NewStyle().Foreground(textColor).Bold(true)
	indent := strings.Repeat(" ", keyW)

	lines := []string{promptStyle.Render(u.title), ""}
	for _, s := range u.sections {
		lines = append(lines, titleStyle.Render(s.title))
		for _, r := range s.rows {
			k := keyStyle.Render(ansi.Truncate(r.keys, keyW-1, "…"))
			for i, d := range strings.Split(wrap.String(wordwrap.String(r.desc, descW), descW), "\n") {
				if i > 0 {
					k = indent
				}
				lines = append(lines, "  "+k+descStyle.Render(d))
			}
		}
		lines = append(lines, "")
	}
	u.viewport.SetContent(strings.Join(lines[:len(lines)-1], "\n"))
}
