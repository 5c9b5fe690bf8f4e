// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/todo/internal/core/styles"
)

// DefaultDataFile is the task file used when neither a flag nor the config
// names one. Relative paths resolve against the working directory.
const DefaultDataFile = "todo_list.json"

// ColorMode controls styled output.
type ColorMode string

// Supported color modes.
const (
	ColorAuto  ColorMode = "auto"  // color when stdout is a terminal
	ColorNever ColorMode = "never" // always plain text
)

// IsValid checks if the color mode is a supported value.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds the application configuration.
type Config struct {
	DataFile  string    `yaml:"data_file"`
	Color     ColorMode `yaml:"color"`
	Theme     string    `yaml:"theme"`
	Reminders bool      `yaml:"reminders"` // show reminders when the menu starts
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataFile:  DefaultDataFile,
		Color:     ColorAuto,
		Theme:     styles.DefaultTheme,
		Reminders: true,
	}
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read is Load without validation, for callers that report on invalid
// values themselves.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DataFile == "" {
		c.DataFile = defaults.DataFile
	}
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Palette returns the colors of the configured theme.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}
