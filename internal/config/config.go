// Package config resolves wallrotate settings from the config file, the
// environment and the command line, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is the rotation interval in minutes when none is configured.
const DefaultInterval = 15

// MaxInterval is the largest interval in minutes that fits a time.Duration.
const MaxInterval = math.MaxInt64 / int64(time.Minute)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config is the persisted application configuration.
type Config struct {
	// Interval between rotations, in minutes.
	Interval    int    `yaml:"interval" env:"WALLROTATE_INTERVAL"`
	Program     string `yaml:"program,omitempty" env:"WALLROTATE_PROGRAM"`
	RestartSWWW bool   `yaml:"restart_swww,omitempty" env:"WALLROTATE_RESTART_SWWW"`
	LogLevel    string `yaml:"log_level" env:"WALLROTATE_LOG_LEVEL"`
}

// Dir returns the OS-specific config directory (e.g. ~/.config/wallrotate).
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "wallrotate"), nil
}

// Path returns the full path to config.yaml.
func Path() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads config from the OS config dir, or returns default if missing.
func Load() (*Config, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(p)
}

// LoadFile reads config from p, or returns default if p does not exist.
func LoadFile(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config decode %s: %w", p, err)
	}
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return &c, nil
}

// Save writes config to the OS config dir.
func Save(c *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes config to p, creating its directory.
func SaveFile(p string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Interval: DefaultInterval,
		LogLevel: "info",
	}
}

// Validate checks field values that have no safe fallback.
func (c *Config) Validate() error {
	if err := checkInterval(c.Interval); err != nil {
		return err
	}
	if c.LogLevel != "" && !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(c.LogLevel))) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidOption, c.LogLevel)
	}
	if c.Program != "" {
		p, err := ProgramName(c.Program)
		if err != nil {
			return err
		}
		c.Program = p
	}
	return nil
}

func checkInterval(n int) error {
	if n <= 0 || int64(n) > MaxInterval {
		return fmt.Errorf("%w: interval must be between 1 and %d minutes, got %d", ErrInvalidOption, MaxInterval, n)
	}
	return nil
}
