// Package config reads the optional YAML defaults file for the CLI.
// Flags always win over the file; the file wins over built-ins.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Watch    WatchConfig    `yaml:"watch"`
}

// DefaultsConfig seeds the convert flags.
type DefaultsConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Quantizer string  `yaml:"quantizer"`
	BlurSigma float32 `yaml:"blur_sigma"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Extensions []string `yaml:"extensions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Quantizer: "uniform"},
		Watch: WatchConfig{
			Extensions: []string{".png", ".jpg", ".jpeg", ".webp", ".qoi"},
		},
	}
}

// Load reads and validates a YAML config file, filling unset fields from
// the built-in defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	if c.Defaults.Width < 0 || c.Defaults.Height < 0 {
		return fmt.Errorf("defaults.width/height must not be negative")
	}
	if c.Defaults.BlurSigma < 0 {
		return fmt.Errorf("defaults.blur_sigma must not be negative")
	}
	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("watch.extensions must not be empty")
	}
	for _, ext := range c.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("watch extension %q must start with a dot", ext)
		}
	}
	return nil
}

// Watched reports whether the watch command should convert this file.
func (c *Config) Watched(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Watch.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
