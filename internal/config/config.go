// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Board   BoardConfig   `toml:"board"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// BoardConfig holds board behavior settings.
type BoardConfig struct {
	ReadOnly bool `toml:"read_only"` // deny all record writes
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Board: BoardConfig{
			ReadOnly: false,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopboard.db"
	}
	return filepath.Join(home, ".local", "share", "shopboard", "shopboard.db")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "shopboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads configuration from the given path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file is fine; defaults apply.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaultDBPath()
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHOPBOARD_DB_PATH"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("SHOPBOARD_READ_ONLY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Board.ReadOnly = b
		}
	}
	if v := os.Getenv("SHOPBOARD_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.UI.Color = false
		}
	}
}

// Save writes the configuration to the given path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
