package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/nickromney/looppager/internal/config"
	"github.com/nickromney/looppager/internal/pager"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	First     key.Binding
	Last      key.Binding
	Select    key.Binding
	Jump      key.Binding
	Copy      key.Binding
	Theme     key.Binding
	SaveTheme key.Binding
	Usage     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// newKeyMap builds the bindings from config. LOOPPAGER_KEY_* env vars win
// over the file; arrows follow the scroll axis.
func newKeyMap(cfg config.KeysConfig, o pager.Orientation) keyMap {
	next := envKey("LOOPPAGER_KEY_NEXT", cfg.Next)
	prev := envKey("LOOPPAGER_KEY_PREV", cfg.Prev)
	sel := envKey("LOOPPAGER_KEY_SELECT", cfg.Select)
	cp := envKey("LOOPPAGER_KEY_COPY", cfg.Copy)
	jump := envKey("LOOPPAGER_KEY_JUMP", cfg.Jump)

	nextKeys, prevKeys := []string{next, "right"}, []string{prev, "left"}
	nextHelp, prevHelp := next+"/→", prev+"/←"
	if o == pager.Vertical {
		nextKeys, prevKeys = []string{next, "down", "j"}, []string{prev, "up", "k"}
		nextHelp, prevHelp = next+"/↓", prev+"/↑"
	}

	return keyMap{
		Next: key.NewBinding(
			key.WithKeys(nextKeys...),
			key.WithHelp(nextHelp, "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys(prevKeys...),
			key.WithHelp(prevHelp, "prev"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys(sel),
			key.WithHelp(sel, "select"),
		),
		Jump: key.NewBinding(
			key.WithKeys(jump),
			key.WithHelp(jump, "jump"),
		),
		Copy: key.NewBinding(
			key.WithKeys(cp),
			key.WithHelp(cp, "copy"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		SaveTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "save theme"),
		),
		Usage: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "usage"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit?"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp feeds the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Jump, k.Copy, k.Theme, k.Usage, k.Quit}
}

// FullHelp feeds the usage pane.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Select, k.Jump, k.Copy},
		{k.Theme, k.SaveTheme, k.Usage, k.Back, k.Quit, k.ForceQuit},
	}
}
