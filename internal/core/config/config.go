// Package config handles configuration loading and validation for alertbox.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/alertbox/internal/dialog"
)

// Config holds the application configuration.
type Config struct {
	// Defaults are merged onto the built-in dialog defaults using the same
	// rules as per-dialog options.
	Defaults dialog.Values `yaml:"defaults"`
	// Content lists doublestar patterns of files registered as "#id" message
	// bodies.
	Content []string     `yaml:"content"`
	Timing  TimingConfig `yaml:"timing"`
	Render  RenderConfig `yaml:"render"`
}

// TimingConfig holds the animation delays.
type TimingConfig struct {
	Settle   time.Duration `yaml:"settle"`
	Teardown time.Duration `yaml:"teardown"`
}

// RenderConfig controls how dialogs are drawn in the terminal.
type RenderConfig struct {
	Markdown     bool   `yaml:"markdown"`
	GlamourStyle string `yaml:"glamour_style"`
	Width        int    `yaml:"width"`
}

// MinWidth is the narrowest dialog the terminal renderer supports.
const MinWidth = 20

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	t := dialog.DefaultTimings()
	return Config{
		Defaults: dialog.Values{},
		Content:  []string{},
		Timing: TimingConfig{
			Settle:   t.Settle,
			Teardown: t.Teardown,
		},
		Render: RenderConfig{
			Markdown:     true,
			GlamourStyle: "tokyo-night",
			Width:        56,
		},
	}
}

// Load reads and validates configuration from the given path. If configPath
// is empty or doesn't exist, the defaults are returned.
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

// Read parses configuration without validating it.
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
	if c.Defaults == nil {
		c.Defaults = dialog.Values{}
	}
	if c.Timing.Settle == 0 {
		c.Timing.Settle = defaults.Timing.Settle
	}
	if c.Timing.Teardown == 0 {
		c.Timing.Teardown = defaults.Timing.Teardown
	}
	if c.Render.GlamourStyle == "" {
		c.Render.GlamourStyle = defaults.Render.GlamourStyle
	}
	if c.Render.Width == 0 {
		c.Render.Width = defaults.Render.Width
	}
}

// Timings converts the timing section for use by a dialog controller.
func (c *Config) Timings() dialog.Timings {
	return dialog.Timings{
		Settle:   c.Timing.Settle,
		Teardown: c.Timing.Teardown,
	}
}
