package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nickromney/looppager/internal/deck"
	"github.com/spf13/cobra"
)

// loadDeck resolves the PATH argument: empty means a numbered demo deck,
// "-" reads a deck document from stdin, anything else is a file or dir.
func loadDeck(cmd *cobra.Command, path string, count int) (*deck.Deck, error) {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		if count < 0 {
			return nil, usageError(fmt.Sprintf("--count must be >= 0, got %d", count))
		}
		return deck.Numbered(count), nil
	case "-":
		return readDeckFromStdin(cmd)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deck not found: %s", path)
		}
		return nil, fmt.Errorf("cannot access deck: %s: %w", path, err)
	}
	return deck.Load(path)
}

func readDeckFromStdin(cmd *cobra.Command) (*deck.Deck, error) {
	// Gate on the real stdin to avoid hanging on a terminal.
	if isTerminalFn(os.Stdin) {
		return nil, usageError("PATH - requires stdin to be piped/redirected")
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read deck from stdin: %w", err)
	}
	return deck.Parse("stdin", b), nil
}
