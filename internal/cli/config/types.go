// Package config provides configuration management for the robustpade CLI.
package config

import (
	"fmt"

	"github.com/tuneinsight/robustpade/pade"
)

// Output formats.
const (
	OutputText     = "text"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Default configuration values.
const (
	DefaultTol    = pade.DefaultTolerance
	DefaultOutput = OutputText
	DefaultOrder  = 20
	DefaultSeed   = "robustpade"
)

// Config holds all CLI configuration options.
type Config struct {
	// Tol is the relative tolerance of the robust construction.
	Tol float64 `koanf:"tol"`
	// Workers bounds the number of table cells computed concurrently (0 = GOMAXPROCS).
	Workers int    `koanf:"workers"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`

	// Order is the number of Taylor coefficients extracted from a --func source.
	Order int `koanf:"order"`
	// At is the expansion point of a --func source.
	At float64 `koanf:"at"`

	// Noise is the relative amplitude of the uniform noise added to the coefficients.
	Noise float64 `koanf:"noise"`
	// Seed keys the noise PRNG.
	Seed string `koanf:"seed"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Default returns the configuration used when no source overrides a value.
func Default() *Config {
	return &Config{
		Tol:    DefaultTol,
		Output: DefaultOutput,
		Order:  DefaultOrder,
		Seed:   DefaultSeed,
	}
}

// PadeConfig returns the parameters of the robust construction.
func (c *Config) PadeConfig() pade.Config {
	return pade.Config{Tol: c.Tol}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.PadeConfig().Validate(); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("output must be one of %s, %s or %s but is %q", OutputText, OutputJSON, OutputMarkdown, c.Output)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative but is %d", c.Workers)
	}
	if c.Order < 0 {
		return fmt.Errorf("order must be non-negative but is %d", c.Order)
	}
	if c.Noise < 0 {
		return fmt.Errorf("noise must be non-negative but is %v", c.Noise)
	}
	return nil
}
