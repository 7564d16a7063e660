package deck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event is a reload of a watched deck.
type Event struct {
	Deck *Deck
	Err  error
}

// Watch reloads the deck at path on every change and sends the result.
// A file is watched through its parent directory so editors that replace
// the file on save are seen. The channel closes when ctx is done.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	path = filepath.Clean(path)
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("watch deck: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch deck: %w", err)
	}

	isDir := st.IsDir()
	dir := path
	if !isDir {
		dir = filepath.Dir(path)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch deck: %w", err)
	}

	out := make(chan Event)
	send := func(ev Event) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !isDir && filepath.Clean(ev.Name) != path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				d, err := Load(path)
				if errors.Is(err, fs.ErrNotExist) {
					// Mid-replace; the Create that follows reloads it.
					continue
				}
				if !send(Event{Deck: d, Err: err}) {
					return
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if !send(Event{Err: fmt.Errorf("watch deck: %w", err)}) {
					return
				}
			}
		}
	}()

	return out, nil
}
