package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, opt outputOptions) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	oldOut := outStdout
	oldErr := outStderr
	oldOpt := outOpt
	t.Cleanup(func() {
		outStdout = oldOut
		outStderr = oldErr
		outOpt = oldOpt
	})

	var out bytes.Buffer
	var errOut bytes.Buffer
	setOutputOptions(&out, &errOut, opt)
	return &out, &errOut
}

func TestOutputOptions_ColorAndUnicode(t *testing.T) {
	out, _ := captureOutput(t, outputOptions{color: true, unicode: true})
	success("hello")
	got := out.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes when color enabled, got %q", got)
	}
	if !strings.Contains(got, "✓") {
		t.Fatalf("expected unicode glyph when unicode enabled, got %q", got)
	}

	setOutputOptions(nil, nil, outputOptions{color: false, unicode: false})
	out.Reset()
	success("hello")
	got = out.String()
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no ANSI escapes when color disabled, got %q", got)
	}
	if !strings.Contains(got, "OK") {
		t.Fatalf("expected ASCII fallback when unicode disabled, got %q", got)
	}
}

func TestOutputOptions_QuietSuppressesStatusLines(t *testing.T) {
	out, errOut := captureOutput(t, outputOptions{quiet: true})

	info("a")
	success("b")
	warn("c")
	step("d")

	if strings.TrimSpace(out.String()) != "" || strings.TrimSpace(errOut.String()) != "" {
		t.Fatalf("expected no status output when quiet, got %q / %q", out.String(), errOut.String())
	}

	errMsg("e")
	if !strings.Contains(errOut.String(), "ERR") {
		t.Fatalf("expected errMsg to still print, got %q", errOut.String())
	}
}

func TestWarn_GoesToStderr(t *testing.T) {
	out, errOut := captureOutput(t, outputOptions{})
	warn("careful")
	if out.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", out.String())
	}
	if got := errOut.String(); got != "WARN  careful\n" {
		t.Fatalf("unexpected warn output %q", got)
	}
}

func TestKV_PlainAndBold(t *testing.T) {
	out, _ := captureOutput(t, outputOptions{})
	kv("middle", "2  Panel 2")
	kv("", "bare")
	if got := out.String(); got != "  middle: 2  Panel 2\n  bare\n" {
		t.Fatalf("unexpected kv output %q", got)
	}

	setOutputOptions(nil, nil, outputOptions{color: true})
	out.Reset()
	kv("middle", "x")
	if !strings.Contains(out.String(), "\x1b[1m") {
		t.Fatalf("expected bold key when color enabled, got %q", out.String())
	}
}

func TestReport(t *testing.T) {
	_, errOut := captureOutput(t, outputOptions{})

	if code := Report(nil); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if code := Report(&ExitError{Code: 1, Silent: true}); code != 1 || errOut.Len() != 0 {
		t.Fatalf("expected silent exit 1, got %d %q", code, errOut.String())
	}
	if code := Report(usageError("bad flag")); code != 2 || !strings.Contains(errOut.String(), "Error: bad flag") {
		t.Fatalf("expected printed exit 2, got %d %q", code, errOut.String())
	}
}
