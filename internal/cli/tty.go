package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminalFn reports whether f is a terminal. It gates the interactive
// pager (stdin and stdout) and `PATH -` decks (stdin must be piped).
// Tests swap it out.
var isTerminalFn = func(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// isInteractiveTTY is the precondition for running the pager: it needs
// the keyboard on stdin and owns stdout for the alternate screen.
func isInteractiveTTY() bool {
	return isTerminalFn(os.Stdin) && isTerminalFn(os.Stdout)
}
