package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const jumpMaxMatches = 5

// jumpPrompt is the "/" prompt. Titles are ranked with fuzzy; a bare
// number (1-based) jumps to that position.
type jumpPrompt struct {
	input   textinput.Model
	visible bool
	titles  []string
	matches fuzzy.Matches
}

func newJumpPrompt() jumpPrompt {
	ti := textinput.New()
	ti.Prompt = "jump: "
	ti.Placeholder = "title or number"
	ti.CharLimit = 128
	return jumpPrompt{input: ti}
}

func (j *jumpPrompt) Open(titles []string) tea.Cmd {
	j.visible = true
	j.titles = titles
	j.input.SetValue("")
	j.refresh()
	return j.input.Focus()
}

func (j *jumpPrompt) Close() {
	j.visible = false
	j.input.Blur()
	j.matches = nil
}

// Update feeds a key to the input and re-ranks.
func (j *jumpPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	j.refresh()
	return cmd
}

func (j *jumpPrompt) refresh() {
	q := strings.TrimSpace(j.input.Value())
	if q == "" {
		j.matches = nil
		return
	}
	j.matches = fuzzy.Find(q, j.titles)
}

// Target resolves the query to a logical index.
func (j *jumpPrompt) Target() (int, bool) {
	q := strings.TrimSpace(j.input.Value())
	if q == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n >= 1 && n <= len(j.titles) {
			return n - 1, true
		}
		return 0, false
	}
	if len(j.matches) == 0 {
		return 0, false
	}
	return j.matches[0].Index, true
}

// View renders the prompt line and the best few matches.
func (j *jumpPrompt) View(width int) string {
	lines := []string{promptStyle.Render("Jump to panel"), j.input.View()}
	for i, mt := range j.matches {
		if i == jumpMaxMatches {
			break
		}
		line := "  " + strconv.Itoa(mt.Index+1) + ". " + mt.Str
		if i == 0 {
			line = statusKeyStyle.Render("> " + line[2:])
		} else {
			line = statusDescStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(j.matches) == 0 && strings.TrimSpace(j.input.Value()) != "" {
		if _, ok := j.Target(); !ok {
			lines = append(lines, errorStyle.Render("  no match"))
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(20, min(width-4, 60)))
	return box.Render(strings.Join(lines, "\n"))
}
