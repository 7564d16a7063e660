package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nickromney/looppager/internal/pager"
	"github.com/nickromney/looppager/internal/tui"
	"github.com/nickromney/looppager/test/testutil"
)

type fakeRunner struct {
	called   bool
	opts     tui.Options
	selected int
	picked   bool
	err      error
}

func (f *fakeRunner) run(opts tui.Options) (int, bool, error) {
	f.called = true
	f.opts = opts
	return f.selected, f.picked, f.err
}

func stubTTY(t *testing.T, tty bool) {
	t.Helper()
	old := isTerminalFn
	t.Cleanup(func() { isTerminalFn = old })
	isTerminalFn = func(_ *os.File) bool { return tty }
}

// execute runs the root command and returns what the status helpers and
// cobra wrote to stdout.
func execute(t *testing.T, runTUI RunTUI, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	oldOut, oldErr, oldOpt := outStdout, outStderr, outOpt
	t.Cleanup(func() {
		outStdout, outStderr, outOpt = oldOut, oldErr, oldOpt
	})
	var out, errOut bytes.Buffer
	setOutputOptions(&out, &errOut, outputOptions{})

	cmd := NewRootCmd(runTUI, BuildInfo{Version: "test", BuildTime: "now", GitCommit: "abc"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_NonInteractive_ShowsHelpAndExit2(t *testing.T) {
	stubTTY(t, false)
	r := &fakeRunner{}

	out, err := execute(t, r.run, "")
	code, silent, ok := ExitCode(err)
	if !ok || code != 2 || !silent {
		t.Fatalf("expected silent exit 2, got code=%d silent=%v err=%v", code, silent, err)
	}
	if r.called {
		t.Fatalf("expected TUI not to run in non-interactive mode")
	}
	if !strings.Contains(out, "looppager [PATH]") {
		t.Fatalf("expected help output on stdout, got %q", out)
	}
}

func TestRoot_Interactive_RunsDemoDeck(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	if _, err := execute(t, r.run, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.called {
		t.Fatalf("expected TUI to run")
	}
	if got := r.opts.Deck.NumberOfPanels(); got != 5 {
		t.Fatalf("expected 5 demo panels, got %d", got)
	}
	if r.opts.Orientation != pager.Horizontal || r.opts.Start != 0 || r.opts.Pick {
		t.Fatalf("unexpected defaults %+v", r.opts)
	}
	if r.opts.Events != nil {
		t.Fatalf("expected no watcher without PATH")
	}
	if r.opts.Logger == nil {
		t.Fatalf("expected a logger")
	}
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", "--vertical", "--start", "2", "--count", "3", "--mouse=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.opts.Orientation != pager.Vertical {
		t.Fatalf("expected vertical, got %s", r.opts.Orientation)
	}
	if r.opts.Start != 2 || r.opts.Deck.NumberOfPanels() != 3 {
		t.Fatalf("unexpected start/count %d/%d", r.opts.Start, r.opts.Deck.NumberOfPanels())
	}
	if r.opts.Config.Mouse {
		t.Fatalf("expected mouse off")
	}
}

func TestRoot_StartOutOfRange(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", "--start", "5")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2, got %v", err)
	}
	if r.called {
		t.Fatalf("expected TUI not to run")
	}
}

func TestRoot_BadLogLevel(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", "--log-level", "chatty")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2, got %v", err)
	}
}

func TestRoot_PickPrintsIndex(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{selected: 3, picked: true}

	out, err := execute(t, r.run, "", "--pick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.opts.Pick {
		t.Fatalf("expected pick mode")
	}
	if out != "3\n" {
		t.Fatalf("expected index on stdout, got %q", out)
	}
}

func TestRoot_PickWithoutSelection(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", "--pick")
	code, silent, ok := ExitCode(err)
	if !ok || code != 1 || !silent {
		t.Fatalf("expected silent exit 1, got %v", err)
	}
}

func TestRoot_FatalPagerErrorPropagates(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{err: pager.ErrNilContent}

	_, err := execute(t, r.run, "")
	if !errors.Is(err, pager.ErrNilContent) {
		t.Fatalf("expected ErrNilContent, got %v", err)
	}
}

func TestRoot_DeckPathAndWatch(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}
	path := testutil.WriteDeck(t, "# one", "# two")

	if _, err := execute(t, r.run, "", path, "--watch"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.opts.Deck.Titles(); len(got) != 2 || got[0] != "one" {
		t.Fatalf("unexpected titles %v", got)
	}
	if r.opts.Events == nil {
		t.Fatalf("expected watcher events with --watch")
	}
}

func TestRoot_MissingDeck(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", filepath.Join(t.TempDir(), "nope.md"))
	if err == nil || !strings.Contains(err.Error(), "deck not found") {
		t.Fatalf("expected deck not found, got %v", err)
	}
}

func TestRoot_StdinDeckRejected(t *testing.T) {
	stubTTY(t, true)
	r := &fakeRunner{}

	_, err := execute(t, r.run, "", "-")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2, got %v", err)
	}
}

func TestList_Fixture(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "list", testutil.FixturePath(t, "deck.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\tWelcome\n1\tKeys\n2\tWrap-around\n" {
		t.Fatalf("unexpected list output %q", out)
	}
}

func TestList_Stdin(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "# a\n---\n# b\n", "list", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\ta\n1\tb\n" {
		t.Fatalf("unexpected list output %q", out)
	}
}

func TestList_StdinFromTerminal(t *testing.T) {
	stubTTY(t, true)

	_, err := execute(t, nil, "", "list", "-")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2, got %v", err)
	}
}

func TestWindow_WrapsAround(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "window", "--count", "5", "--index", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "  previous: 3  Panel 3\n  middle: 4  Panel 4\n  next: 0  Panel 0\n"
	if out != want {
		t.Fatalf("unexpected window output:\n%s\nwant:\n%s", out, want)
	}
}

func TestWindow_Steps(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "--quiet", "window", "--count", "3", "--index", "2", "--step", "next", "--step", "next", "--step", "prev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "middle: 0  Panel 0") {
		t.Fatalf("expected middle 0 after next,next,prev from 2:\n%s", out)
	}

	out, err = execute(t, nil, "", "--quiet", "window", "--vertical", "--count", "3", "--step", "prev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "middle: 2  Panel 2") {
		t.Fatalf("expected vertical prev to wrap to 2:\n%s", out)
	}
}

func TestWindow_SmallDecks(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "window", "--count", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, "0  Panel 0  (copy)") != 2 || !strings.Contains(out, "middle: 0  Panel 0\n") {
		t.Fatalf("expected copies on both edges:\n%s", out)
	}

	out, err = execute(t, nil, "", "window", "--count", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "previous: 1  Panel 1\n") || !strings.Contains(out, "next: 1  Panel 1\n") {
		t.Fatalf("expected the other panel on both edges:\n%s", out)
	}
}

func TestWindow_Errors(t *testing.T) {
	stubTTY(t, false)

	_, err := execute(t, nil, "", "window", "--count", "3", "--index", "3")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2 for bad index, got %v", err)
	}

	_, err = execute(t, nil, "", "window", "--step", "sideways")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2 for bad step, got %v", err)
	}

	_, err = execute(t, nil, "", "window", "--count", "0")
	if err == nil || err.Error() != "deck has no panels" {
		t.Fatalf("expected empty deck error, got %v", err)
	}
}

func TestTheme_ListAndSave(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "--ascii", "theme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "* github-dark-high-contrast\n") {
		t.Fatalf("expected unconfigured default to be marked:\n%s", out)
	}

	out, err = execute(t, nil, "", "theme", "terminal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Saved theme to ") {
		t.Fatalf("expected save confirmation, got %q", out)
	}

	_, err = execute(t, nil, "", "theme", "neon")
	if code, _, ok := ExitCode(err); !ok || code != 2 {
		t.Fatalf("expected exit 2 for unknown theme, got %v", err)
	}
}

func TestConfig_ShowsResolvedValues(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"config.yml", "orientation: horizontal", "scroll_frames: 8", "keys: next=l prev=h"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	stubTTY(t, false)

	out, err := execute(t, nil, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "looppager test\n") || !strings.Contains(out, "git_commit: abc") {
		t.Fatalf("unexpected version output %q", out)
	}
}
