// Package config loads wakeloop configuration from the environment using koanf.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by [Load].
// WAKELOOP_LOG_LEVEL maps to the log_level key.
const EnvPrefix = "WAKELOOP_"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds wakeloop configuration.
type Config struct {
	// Interval is how far ahead of the current instant each wake target is set.
	Interval time.Duration `koanf:"interval"`

	// Iterations is the number of wake cycles to run; 0 runs until interrupted.
	Iterations int `koanf:"iterations"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaults() *Config {
	return &Config{
		Interval:   5 * time.Second,
		Iterations: 0,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load returns compiled defaults overridden by WAKELOOP_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")
	cfg := defaults()

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalid, c.Interval)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalid, c.Iterations)
	}
	return nil
}
