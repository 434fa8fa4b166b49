// Package config loads the user's nirw settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the content of config.toml. Every field is optional.
type Config struct {
	// Editor is the command used to open a match. {file}, {line} and
	// {column} are substituted in each word.
	Editor     string   `toml:"editor"`
	Persistent bool     `toml:"persistent"`
	Hidden     bool     `toml:"hidden"`
	NoIgnore   bool     `toml:"no_ignore"`
	SmartCase  bool     `toml:"smart_case"`
	Exclude    []string `toml:"exclude"`
	LogFile    string   `toml:"log_file"`
	LogLevel   string   `toml:"log_level"`
}

// DefaultPath returns $XDG_CONFIG_HOME/nirw/config.toml, falling back to
// ~/.config/nirw/config.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nirw", "config.toml")
}

// Load reads the config at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
