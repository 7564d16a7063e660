// Package deck loads the cards shown by the carousel.
//
// A deck file is plain text split into cards by lines holding only "---".
// The first non-blank line of a card is its title (leading '#' stripped).
// A deck directory holds one card per regular, non-hidden file.
package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/nickromney/looppager/internal/pager"
)

const separator = "---"

// Card is one page of a deck.
type Card struct {
	Title  string
	Body   string
	Source string
}

// Deck is an ordered list of cards. It implements pager.ContentProvider.
type Deck struct {
	Name  string
	Cards []*Card
}

func (d *Deck) NumberOfPanels() int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// PanelAt returns a nil Content for a nil card, so the controller can
// reject it.
func (d *Deck) PanelAt(index int) pager.Content {
	if c := d.Card(index); c != nil {
		return c
	}
	return nil
}

func (d *Deck) Titles() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		out[i] = c.Title
	}
	return out
}

// Card returns the card at index, or nil.
func (d *Deck) Card(index int) *Card {
	if d == nil || index < 0 || index >= len(d.Cards) {
		return nil
	}
	return d.Cards[index]
}

// Load reads a deck file or a deck directory.
func Load(path string) (*Deck, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	if st.IsDir() {
		return LoadDir(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	d := Parse(filepath.Base(path), data)
	for _, c := range d.Cards {
		c.Source = path
	}
	return d, nil
}

// LoadDir makes one card per regular, non-hidden file in dir, in name order.
func LoadDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load deck dir: %w", err)
	}

	d := &Deck{Name: filepath.Base(dir)}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load deck dir: %w", err)
		}
		d.Cards = append(d.Cards, &Card{
			Title:  e.Name(),
			Body:   strings.TrimSpace(normalizeNewlines(string(data))),
			Source: path,
		})
	}
	return d, nil
}

// Parse splits data into cards.
func Parse(name string, data []byte) *Deck {
	d := &Deck{Name: name}

	var block []string
	flush := func() {
		if c := cardFromLines(block); c != nil {
			if c.Title == "" {
				c.Title = fmt.Sprintf("%s #%d", name, len(d.Cards)+1)
			}
			d.Cards = append(d.Cards, c)
		}
		block = block[:0]
	}

	for _, line := range strings.Split(normalizeNewlines(string(data)), "\n") {
		if strings.TrimRight(line, " \t") == separator {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()
	return d
}

// Numbered returns n placeholder cards.
func Numbered(n int) *Deck {
	d := &Deck{Name: "demo"}
	for i := 0; i < n; i++ {
		d.Cards = append(d.Cards, &Card{
			Title: fmt.Sprintf("Panel %d", i),
			Body:  fmt.Sprintf("This is panel %d of %d.", i, n),
		})
	}
	return d
}

func cardFromLines(lines []string) *Card {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return nil
	}

	title := strings.TrimSpace(strings.TrimLeft(lines[start], "#"))
	body := strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
	return &Card{Title: title, Body: body}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

var titleStyle = lipgloss.NewStyle().Bold(true)

// View renders the card as a bordered block of exactly width x height cells.
func (c *Card) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// Border takes one cell per side, padding one column per side.
	innerW := max(0, width-4)
	innerH := max(0, height-2)

	lines := []string{titleStyle.Render(truncate.StringWithTail(c.Title, uint(innerW), "…"))}
	if c.Body != "" && innerW > 0 {
		lines = append(lines, "")
		body := wrap.String(wordwrap.String(c.Body, innerW), innerW)
		lines = append(lines, strings.Split(body, "\n")...)
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(max(0, width-2)).
		Height(innerH).
		MaxWidth(width).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
