// Package config loads the CLI's YAML config file: default colour mode
// and the REPL history path (SPEC_FULL.md §6). Grounded on the teacher's
// own yaml.v3-tagged Config struct (internal/ext/config.go), scaled down
// to this CLI's much smaller surface.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level ~/.hark/config.yaml shape.
type Config struct {
	// Colour forces ANSI colour on or off. Nil means "decide from isatty".
	Colour *bool `yaml:"colour,omitempty"`

	// HistoryPath is where the REPL's SQLite history database lives.
	// Defaults to "~/.hark/history.db" when empty.
	HistoryPath string `yaml:"history_path,omitempty"`
}

// DefaultPath is ~/.hark/config.yaml, or "" if the home directory can't
// be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hark", "config.yaml")
}

// Load reads and parses the config file at path. A missing file is not
// an error: it returns the zero Config, matching the CLI's "config is
// optional" contract.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HistoryPathOr returns cfg.HistoryPath, or fallback if it's unset.
func (c Config) HistoryPathOr(fallback string) string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return fallback
}

// DefaultHistoryPath is ~/.hark/history.db, or "" if the home directory
// can't be resolved.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hark", "history.db")
}
