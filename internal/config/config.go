// Package config handles reading and writing pomo's config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pomo-dev/pomo/internal/analytics"
	"github.com/pomo-dev/pomo/internal/timer"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version     int           `yaml:"version"`
	DefaultMode string        `yaml:"default_mode"` // "short" | "long"
	Storage     StorageConfig `yaml:"storage"`
	Timer       TimerConfig   `yaml:"timer"`
	Log         LogConfig     `yaml:"log"`
}

// StorageConfig controls where analytics are kept.
type StorageConfig struct {
	Backend string `yaml:"backend"`  // "json" | "sqlite"
	DataDir string `yaml:"data_dir"` // empty = platform default
}

// TimerConfig controls the tick loop and phase transitions.
type TimerConfig struct {
	TickIntervalMs int  `yaml:"tick_interval_ms"`
	AutoContinue   bool `yaml:"auto_continue"`
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

const (
	appName    = "pomo"
	configFile = "config.yaml"

	minTickInterval = 50 * time.Millisecond
)

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		DefaultMode: "short",
		Storage: StorageConfig{
			Backend: analytics.BackendJSON,
		},
		Timer: TimerConfig{
			TickIntervalMs: 1000,
			AutoContinue:   false,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// DefaultPath returns <user config dir>/pomo/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFile), nil
}

// ReadConfig reads the config file at path. Fields missing from the file
// keep their default values. Returns an error if the file is not found or
// the YAML is malformed.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Any other read or parse failure is returned.
func Load(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to path, creating the parent directory if needed.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	if _, err := timer.ParseMode(c.DefaultMode); err != nil {
		return fmt.Errorf("default_mode: %w", err)
	}
	switch c.Storage.Backend {
	case analytics.BackendJSON, analytics.BackendSQLite:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want json or sqlite)", c.Storage.Backend)
	}
	if c.Timer.TickIntervalMs <= 0 {
		return fmt.Errorf("timer.tick_interval_ms: must be positive, got %d", c.Timer.TickIntervalMs)
	}
	return nil
}

// Mode returns the mode preselected in the menu.
func (c *Config) Mode() timer.Mode {
	mode, err := timer.ParseMode(c.DefaultMode)
	if err != nil {
		return timer.ModeShort
	}
	return mode
}

// TickInterval returns the period of the tick loop, never below 50ms.
func (c *Config) TickInterval() time.Duration {
	d := time.Duration(c.Timer.TickIntervalMs) * time.Millisecond
	if d < minTickInterval {
		return minTickInterval
	}
	return d
}

// ResolveDataDir returns the configured data directory, or the platform
// default when none is set.
func (c *Config) ResolveDataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return expandHome(c.Storage.DataDir)
	}
	return DefaultDataDir()
}

// AnalyticsPath returns the analytics file inside dataDir for the
// configured backend.
func (c *Config) AnalyticsPath(dataDir string) string {
	return filepath.Join(dataDir, analytics.FileName(c.Storage.Backend))
}
