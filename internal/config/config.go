package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config is intentionally small and flat.
//
// File location: ~/.config/looppager/config.yml (or $XDG_CONFIG_HOME/looppager/config.yml)
type Config struct {
	Orientation     string // "horizontal" or "vertical"
	StartIndex      int
	Mouse           bool
	Watch           bool
	ScrollFrames    int
	FrameIntervalMS int
	Theme           string // "default", "github-dark", "terminal"
	LogLevel        string
	LogFormat       string
	LogFile         string
	Keys            KeysConfig
}

type KeysConfig struct {
	Next   string `yaml:"next"`
	Prev   string `yaml:"prev"`
	Select string `yaml:"select"`
	Copy   string `yaml:"copy"`
	Jump   string `yaml:"jump"`
}

func Default() Config {
	return Config{
		Orientation:     "horizontal",
		Mouse:           true,
		ScrollFrames:    8,
		FrameIntervalMS: 16,
		LogLevel:        "info",
		LogFormat:       "text",
		Keys: KeysConfig{
			Next:   "l",
			Prev:   "h",
			Select: "enter",
			Copy:   "c",
			Jump:   "/",
		},
	}
}

func Path() (string, error) {
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "looppager", "config.yml"), nil
}

// Load reads config.yml if present. If missing, returns Default() with nil error.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	patch, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	patch.apply(&cfg)
	return cfg, nil
}

// partialConfig mirrors the file. Pointers distinguish "unset" from zero.
type partialConfig struct {
	Orientation     *string    `yaml:"orientation"`
	StartIndex      *int       `yaml:"start_index"`
	Mouse           *bool      `yaml:"mouse"`
	Watch           *bool      `yaml:"watch"`
	ScrollFrames    *int       `yaml:"scroll_frames"`
	FrameIntervalMS *int       `yaml:"frame_interval_ms"`
	Theme           *string    `yaml:"theme"`
	LogLevel        *string    `yaml:"log_level"`
	LogFormat       *string    `yaml:"log_format"`
	LogFile         *string    `yaml:"log_file"`
	Keys            KeysConfig `yaml:"keys"`
}

func parse(data []byte) (partialConfig, error) {
	var out partialConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, err
	}

	if out.Orientation != nil {
		switch strings.ToLower(strings.TrimSpace(*out.Orientation)) {
		case "horizontal", "vertical":
		default:
			return out, fmt.Errorf("orientation must be horizontal or vertical, got %q", *out.Orientation)
		}
	}
	if out.StartIndex != nil && *out.StartIndex < 0 {
		return out, fmt.Errorf("start_index must be a non-negative int, got %d", *out.StartIndex)
	}
	if out.ScrollFrames != nil && (*out.ScrollFrames < 1 || *out.ScrollFrames > 60) {
		return out, fmt.Errorf("scroll_frames must be int 1..60, got %d", *out.ScrollFrames)
	}
	if out.FrameIntervalMS != nil && (*out.FrameIntervalMS < 1 || *out.FrameIntervalMS > 1000) {
		return out, fmt.Errorf("frame_interval_ms must be int 1..1000, got %d", *out.FrameIntervalMS)
	}
	return out, nil
}

func (p partialConfig) apply(cfg *Config) {
	setString := func(dst *string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			*dst = strings.TrimSpace(*v)
		}
	}
	setString(&cfg.Orientation, p.Orientation)
	setString(&cfg.Theme, p.Theme)
	setString(&cfg.LogLevel, p.LogLevel)
	setString(&cfg.LogFormat, p.LogFormat)
	setString(&cfg.LogFile, p.LogFile)
	cfg.Orientation = strings.ToLower(cfg.Orientation)

	if p.StartIndex != nil {
		cfg.StartIndex = *p.StartIndex
	}
	if p.Mouse != nil {
		cfg.Mouse = *p.Mouse
	}
	if p.Watch != nil {
		cfg.Watch = *p.Watch
	}
	if p.ScrollFrames != nil {
		cfg.ScrollFrames = *p.ScrollFrames
	}
	if p.FrameIntervalMS != nil {
		cfg.FrameIntervalMS = *p.FrameIntervalMS
	}

	keys := []struct {
		dst *string
		v   string
	}{
		{&cfg.Keys.Next, p.Keys.Next},
		{&cfg.Keys.Prev, p.Keys.Prev},
		{&cfg.Keys.Select, p.Keys.Select},
		{&cfg.Keys.Copy, p.Keys.Copy},
		{&cfg.Keys.Jump, p.Keys.Jump},
	}
	for _, k := range keys {
		if v := strings.TrimSpace(k.v); v != "" {
			*k.dst = v
		}
	}
}
