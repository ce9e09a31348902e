// Package config loads the gridls YAML configuration. The rendering
// packages never read configuration themselves; the CLI maps loaded
// values onto explicit options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	errs "github.com/caphefalumi/Canvas-CLI-sub001/internal/errors"
)

// Config represents the application configuration structure.
type Config struct {
	Table struct {
		Wrap       bool   `yaml:"wrap"`        // Wrap overflowing cells instead of truncating
		RowNumbers bool   `yaml:"row_numbers"` // Show the row-number gutter
		Title      string `yaml:"title"`       // Default table title
	} `yaml:"table"`
	Browser struct {
		Extensions []string `yaml:"extensions"` // Allow-list of file extensions for the picker
		Filter     string   `yaml:"filter"`     // Glob pattern applied to file names
		Watch      bool     `yaml:"watch"`      // Auto-reload the listing on filesystem change
	} `yaml:"browser"`
	Theme struct {
		Title    string `yaml:"title"`    // Title color
		Selected string `yaml:"selected"` // Selected-entry color
		Cursor   string `yaml:"cursor"`   // Cursor highlight color
		Border   string `yaml:"border"`   // Border color for frames
	} `yaml:"theme"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// New returns a configuration populated with defaults.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Theme.Title = "#7B61FF"
	cfg.Theme.Selected = "#73F59F"
	cfg.Theme.Cursor = "#7B61FF"
	cfg.Theme.Border = "#666666"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/gridls/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "gridls", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errs.Wrap(err, "error reading config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrap(err, "error parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errs.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	for _, color := range []string{c.Theme.Title, c.Theme.Selected, c.Theme.Cursor, c.Theme.Border} {
		if color == "" {
			continue
		}
		if !strings.HasPrefix(color, "#") {
			return errs.NewConfigError(
				fmt.Sprintf("theme color %q must be a hex value like #7B61FF", color), "theme", nil)
		}
	}
	for _, ext := range c.Browser.Extensions {
		if strings.TrimLeft(ext, ".") == "" {
			return errs.NewConfigError("empty extension in browser allow-list", "browser.extensions", nil)
		}
	}
	return nil
}
