package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLogoPath is the source logo, relative to the repository root
	DefaultLogoPath = "public/D2D_logo.png"
	// DefaultOutputDir is where the favicons are written
	DefaultOutputDir = "public"
	// DefaultDebounceMS is how long watch mode waits for a burst of writes to settle
	DefaultDebounceMS = 500
)

// Config represents the application configuration
type Config struct {
	LogoPath  string      `yaml:"logo_path"`
	OutputDir string      `yaml:"output_dir"`
	Watch     WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the configured debounce window as a duration
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		LogoPath:  DefaultLogoPath,
		OutputDir: DefaultOutputDir,
		Watch: WatchConfig{
			DebounceMS: DefaultDebounceMS,
		},
	}
}

// Load reads and parses the configuration file.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist. A file that exists but cannot be parsed is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.LogoPath == "" {
		return fmt.Errorf("logo_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	return nil
}
