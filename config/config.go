// SPDX-License-Identifier: MIT

// Package config loads trackswitch settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvInput       = "TRACKSWITCH_INPUT"
	EnvOutput      = "TRACKSWITCH_OUTPUT"
	EnvLogLevel    = "TRACKSWITCH_LOG_LEVEL"
	EnvMaxSwitches = "TRACKSWITCH_MAX_SWITCHES"
)

// DefaultInput is the input file read when none is given.
const DefaultInput = "cymbal.in"

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all trackswitch configuration.
type Config struct {
	// Input is the path of the track system file.
	Input string `yaml:"input"`

	// Output is the report path; empty means stdout.
	Output string `yaml:"output"`

	// MaxSwitches rejects larger systems; 0 disables the limit.
	MaxSwitches int `yaml:"max_switches"`

	// CheckStructure runs track.Network.Validate (acyclic, single entry)
	// before solving.
	CheckStructure bool `yaml:"validate"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:          DefaultInput,
		MaxSwitches:    100,
		CheckStructure: true,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies TRACKSWITCH_* variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvMaxSwitches); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxSwitches, v)
		}
		c.MaxSwitches = n
	}

	return nil
}

// Validate checks value domains.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if c.MaxSwitches < 0 {
		return fmt.Errorf("%w: max_switches=%d", ErrInvalid, c.MaxSwitches)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level=%q", ErrInvalid, c.Logging.Level)
	}
	if c.Logging.Encoding != "console" && c.Logging.Encoding != "json" {
		return fmt.Errorf("%w: logging.encoding=%q (valid: console, json)", ErrInvalid, c.Logging.Encoding)
	}

	return nil
}

// ZapConfig returns the zap configuration for c: production defaults writing
// to stderr, at the configured level and encoding. verbose forces debug.
func (c *Config) ZapConfig(verbose bool) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.Logging.Encoding
	if c.Logging.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: logging.level=%q", ErrInvalid, c.Logging.Level)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc, nil
}
