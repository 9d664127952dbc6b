// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	DataDir string      `toml:"data_dir"` // Where the store and logs live
	Timer   TimerConfig `toml:"timer"`
	UI      UIConfig    `toml:"ui"`
	Log     LogConfig   `toml:"log"`
}

// TimerConfig holds focus timer settings from the [timer] section.
type TimerConfig struct {
	FocusMinutes      int `toml:"focus_minutes"`
	ShortBreakMinutes int `toml:"short_break_minutes"`
	LongBreakMinutes  int `toml:"long_break_minutes"`
	LongBreakEvery    int `toml:"long_break_every"` // Long break after every Nth focus session
}

// UIConfig holds presentation settings from the [ui] section.
type UIConfig struct {
	Theme       string `toml:"theme"`         // "dark" or "light"
	DueSoonDays int    `toml:"due_soon_days"` // Window for due-soon highlighting
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Timer: TimerConfig{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakEvery:    4,
		},
		UI: UIConfig{
			Theme:       "dark",
			DueSoonDays: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Loader loads configuration from TOML files.
type Loader struct {
	confDir string // Config directory (e.g. ~/.config/focusdeck)
}

// NewLoader creates a Loader for the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// Load returns the configuration merged over the defaults. A missing config
// file yields the defaults; a malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	path := filepath.Join(l.confDir, ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := toml.Unmarshal(content, &loaded); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return mergeConfigs(base, &loaded), nil
}

// mergeConfigs overlays set fields of over onto base.
func mergeConfigs(base, over *Config) *Config {
	merged := *base
	if over.DataDir != "" {
		merged.DataDir = over.DataDir
	}
	if over.Timer.FocusMinutes > 0 {
		merged.Timer.FocusMinutes = over.Timer.FocusMinutes
	}
	if over.Timer.ShortBreakMinutes > 0 {
		merged.Timer.ShortBreakMinutes = over.Timer.ShortBreakMinutes
	}
	if over.Timer.LongBreakMinutes > 0 {
		merged.Timer.LongBreakMinutes = over.Timer.LongBreakMinutes
	}
	if over.Timer.LongBreakEvery > 0 {
		merged.Timer.LongBreakEvery = over.Timer.LongBreakEvery
	}
	if over.UI.Theme != "" {
		merged.UI.Theme = over.UI.Theme
	}
	if over.UI.DueSoonDays > 0 {
		merged.UI.DueSoonDays = over.UI.DueSoonDays
	}
	if over.Log.Level != "" {
		merged.Log.Level = over.Log.Level
	}
	return &merged
}

// defaultConfigDir resolves the config directory from XDG conventions.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "focusdeck")
}

// defaultDataDir resolves the data directory from XDG conventions.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "focusdeck")
}
