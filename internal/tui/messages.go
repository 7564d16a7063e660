package tui

import "github.com/nickromney/looppager/internal/deck"

// frameMsg advances the running scroll animation. Stale frames (older seq)
// are dropped.
type frameMsg struct {
	Seq int
}

// snapMsg fires once the mouse wheel has been idle for the snap delay.
type snapMsg struct {
	Seq int
}

// DeckEventMsg carries a reload from the deck watcher.
type DeckEventMsg struct {
	Event deck.Event
}

// deckClosedMsg is sent once the watcher channel closes.
type deckClosedMsg struct{}

// StatusMsg sets a temporary status message in the status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// ToastMsg shows a centred, auto-dismissing notification.
type ToastMsg struct {
	Text string
}

// ToastDismissMsg hides the toast after its timeout.
type ToastDismissMsg struct{}
