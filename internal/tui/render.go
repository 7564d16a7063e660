package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nickromney/looppager/internal/pager"
)

// renderPage draws the visible page: the three mounted panels laid out
// along the axis, cut at the surface offset.
func (m Model) renderPage() string {
	page := m.surface.page
	if page.Width <= 0 || page.Height <= 0 {
		return ""
	}

	w, ok := m.ctrl.Window()
	if !ok {
		return m.renderPlaceholder("No panels to show")
	}

	var views [3][]string
	for i, p := range w.Panels() {
		views[i] = padLines(p.Content().View(page.Width, page.Height), page.Width, page.Height)
	}

	off := m.surface.offset
	if m.ctrl.Orientation() == pager.Vertical {
		rows := make([]string, 0, 3*page.Height)
		for _, v := range views {
			rows = append(rows, v...)
		}
		start := clampInt(off.Y, 0, len(rows)-page.Height, 0)
		return strings.Join(rows[start:start+page.Height], "\n")
	}

	rows := make([]string, page.Height)
	for r := range rows {
		joined := views[0][r] + views[1][r] + views[2][r]
		rows[r] = padExact(ansi.Cut(joined, off.X, off.X+page.Width), page.Width)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPlaceholder(text string) string {
	page := m.surface.page
	return lipgloss.Place(page.Width, page.Height, lipgloss.Center, lipgloss.Center,
		placeholderStyle.Render(text))
}

// padLines splits s into exactly h lines of exactly w cells.
func padLines(s string, w, h int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = padExact(l, w)
	}
	return lines
}

func padExact(s string, w int) string {
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, "")
	}
	return padWidth(s, w)
}

func padWidth(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
