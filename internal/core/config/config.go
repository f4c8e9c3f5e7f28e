package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultTimezone is the display timezone for the bundled schedule.
const DefaultTimezone = "Asia/Tokyo"

type Config struct {
	Timezone string // IANA display timezone for the grid
	DBPath   string // favorites database location
	TagsPath string // optional tag table override (tags.toml)
}

type tomlConfig struct {
	Timezone string `toml:"timezone"`
	DBPath   string `toml:"db_path"`
	TagsPath string `toml:"tags_path"`
}

// Dir returns the confgrid config directory (~/.config/confgrid).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "confgrid")
}

// Load reads config from ~/.config/confgrid/. A missing or unreadable
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	dir := Dir()
	cfg := &Config{
		Timezone: DefaultTimezone,
		DBPath:   filepath.Join(dir, "favorites.db"),
	}

	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.Timezone != "" {
				cfg.Timezone = tc.Timezone
			}
			if tc.DBPath != "" {
				cfg.DBPath = tc.DBPath
			}
			if tc.TagsPath != "" {
				cfg.TagsPath = tc.TagsPath
			}
		}
	}

	// A tags.toml next to the config file overrides the embedded table
	// even without an explicit tags_path.
	if cfg.TagsPath == "" {
		implicit := filepath.Join(dir, "tags.toml")
		if _, err := os.Stat(implicit); err == nil {
			cfg.TagsPath = implicit
		}
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to the default
// and then to the local zone if the name is unknown.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.Local
}
