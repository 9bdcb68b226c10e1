// Package config loads and validates the run configuration for the satour
// CLI from a YAML file. All knobs map one-to-one onto anneal.Options, plus
// the restart count and log level consumed by the CLI itself.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/satour/satour/anneal"
)

// Config is the YAML run configuration.
type Config struct {
	InitialTemperature float64 `yaml:"initial_temperature"`
	DecayRate          float64 `yaml:"decay_rate"`
	MinTemperature     float64 `yaml:"min_temperature"`
	MaxIterations      int     `yaml:"max_iterations"`
	Seed               int64   `yaml:"seed"` // 0 => time-based
	Move               string  `yaml:"move"` // "reverse" or "swap"
	Runs               int     `yaml:"runs"` // independent restarts
	LogLevel           string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		InitialTemperature: anneal.DefaultInitialTemp,
		DecayRate:          anneal.DefaultDecayRate,
		MinTemperature:     anneal.DefaultMinTemp,
		MaxIterations:      anneal.DefaultMaxIterations,
		Seed:               0,
		Move:               anneal.MoveReverse.String(),
		Runs:               1,
		LogLevel:           "info",
	}
}

// Load reads and parses a configuration file, then validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Unknown fields are rejected so typos fail fast.
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and names the first one that is out of range.
func (c Config) Validate() error {
	if c.InitialTemperature <= 0 {
		return fmt.Errorf("initial_temperature must be positive, got %g", c.InitialTemperature)
	}
	if c.DecayRate <= 0 || c.DecayRate >= 1 {
		return fmt.Errorf("decay_rate must be in (0,1), got %g", c.DecayRate)
	}
	if c.MinTemperature <= 0 {
		return fmt.Errorf("min_temperature must be positive, got %g", c.MinTemperature)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if _, err := c.MovePolicy(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// MovePolicy maps the configured move name onto anneal's policy enum.
func (c Config) MovePolicy() (anneal.MovePolicy, error) {
	switch c.Move {
	case "", anneal.MoveReverse.String():
		return anneal.MoveReverse, nil
	case anneal.MoveSwap.String():
		return anneal.MoveSwap, nil
	default:
		return 0, fmt.Errorf("unknown move %q (must be reverse or swap)", c.Move)
	}
}

// Options builds the optimizer options for this configuration.
// The seed is carried verbatim; the CLI derives per-restart seeds from it.
func (c Config) Options() (anneal.Options, error) {
	move, err := c.MovePolicy()
	if err != nil {
		return anneal.Options{}, err
	}

	return anneal.Options{
		InitialTemp:   c.InitialTemperature,
		DecayRate:     c.DecayRate,
		MinTemp:       c.MinTemperature,
		MaxIterations: c.MaxIterations,
		Move:          move,
		Seed:          c.Seed,
	}, nil
}
