package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestSaveTheme_CreatesConfigWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := SaveTheme("terminal")
	if err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	if path == "" {
		t.Fatalf("expected path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if strings.TrimSpace(string(data)) != "theme: terminal" {
		t.Fatalf("unexpected config contents:\n%s", string(data))
	}
}

func TestSaveTheme_UpdatesExistingThemePreservingOtherLines(t *testing.T) {
	p := writeConfig(t, ""+
		"# header\n"+
		"orientation: vertical\n"+
		"theme: default  # keep comment\n"+
		"keys:\n"+
		"  next: n\n")

	if _, err := SaveTheme("github-dark"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	out, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "theme: github-dark  # keep comment") {
		t.Fatalf("expected theme update with comment preserved, got:\n%s", s)
	}
	if !strings.Contains(s, "# header") || !strings.Contains(s, "orientation: vertical") || !strings.Contains(s, "keys:\n  next: n") {
		t.Fatalf("expected other content preserved, got:\n%s", s)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if cfg.Theme != "github-dark" || cfg.Orientation != "vertical" || cfg.Keys.Next != "n" {
		t.Fatalf("unexpected config after save: %+v", cfg)
	}
}

func TestSaveTheme_InsertsBeforeKeysSection(t *testing.T) {
	p := writeConfig(t, ""+
		"mouse: false\n"+
		"keys:\n"+
		"  next: n\n")

	if _, err := SaveTheme("default"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	out, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	s := string(out)
	idxTheme := strings.Index(s, "theme: default")
	idxKeys := strings.Index(s, "keys:")
	if idxTheme < 0 || idxKeys < 0 || idxTheme > idxKeys {
		t.Fatalf("expected theme inserted before keys, got:\n%s", s)
	}
}

func TestSaveTheme_RefusesToBreakInvalidConfig(t *testing.T) {
	p := writeConfig(t, "scroll_frames: 500\n")

	if _, err := SaveTheme("default"); err == nil {
		t.Fatalf("expected error for invalid existing config")
	}
	out, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(out) != "scroll_frames: 500\n" {
		t.Fatalf("expected config untouched, got:\n%s", out)
	}
}
