package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func RepoRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}

	// Start from .../test/testutil and walk up until we find go.mod.
	dir := filepath.Dir(thisFile)
	for i := 0; i < 12; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	t.Fatal("could not locate repo root (go.mod not found)")
	return ""
}

func FixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "test", "fixtures", name)
}

// WriteDeck writes cards joined by separator lines to a temp deck file and
// returns its path.
func WriteDeck(t *testing.T, cards ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.md")
	if err := os.WriteFile(path, []byte(strings.Join(cards, "\n---\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}
