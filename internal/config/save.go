package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// SaveTheme updates (or inserts) the top-level `theme:` key in config.yml.
// Comments and unrelated keys are kept; the write is atomic.
func SaveTheme(theme string) (string, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = "default"
	}

	path, err := Path()
	if err != nil {
		return "", err
	}

	var mode os.FileMode = 0o644
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		data = nil
	} else if st, serr := os.Stat(path); serr == nil {
		mode = st.Mode().Perm()
	}

	updated := upsertTopLevel(string(data), "theme", theme)
	if !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	if _, err := parse([]byte(updated)); err != nil {
		return "", fmt.Errorf("refusing to write invalid config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "config.yml.*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return "", err
	}
	if _, err := tmp.WriteString(updated); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename temp config: %w", err)
	}

	return path, nil
}

// upsertTopLevel replaces the line of a top-level scalar key, or inserts it
// before the first nested section (`keys:`) when absent.
func upsertTopLevel(in, key, value string) string {
	lines := strings.Split(in, "\n")
	prefix := key + ":"
	quoted := quoteScalar(value)

	for i, raw := range lines {
		if raw == "" || raw[0] == ' ' || raw[0] == '\t' {
			continue
		}
		check := strings.TrimSpace(stripComment(raw))
		if !strings.HasPrefix(check, prefix) {
			continue
		}

		out := key + ": " + quoted
		if ci := strings.IndexByte(raw, '#'); ci >= 0 {
			out += "  " + strings.TrimSpace(raw[ci:])
		}
		lines[i] = out
		return strings.Join(lines, "\n")
	}

	insertAt := len(lines)
	for i, raw := range lines {
		if strings.TrimSpace(stripComment(raw)) == "keys:" {
			insertAt = i
			break
		}
	}

	lines = append(lines, "")
	copy(lines[insertAt+1:], lines[insertAt:])
	lines[insertAt] = key + ": " + quoted

	if len(lines) >= 2 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// quoteScalar lets yaml decide whether the scalar needs quoting
// (e.g. "yes", "1", or values with ':').
func quoteScalar(v string) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return v
	}
	return strings.TrimSpace(string(b))
}
