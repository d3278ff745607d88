// Package config provides layered configuration for the potential CLI:
// defaults, then potential.yaml, then POTENTIAL_* environment variables,
// then explicitly set flags.
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// Defaults.
const (
	DefaultOutputDir = "plots"
	DefaultFormat    = "png"
	DefaultSize      = 6.0
	EnvPrefix        = "POTENTIAL_"
)

// ConfigFileNames are searched in the working directory when no explicit
// config file is given.
var ConfigFileNames = []string{"potential.yaml", "potential.yml"}

// Formats lists the supported figure formats.
var Formats = []string{"png", "svg", "pdf"}

// Config holds all CLI configuration options.
type Config struct {
	OutputDir    string  `koanf:"output_dir"`
	Format       string  `koanf:"format"`
	Width        float64 `koanf:"width"`
	Height       float64 `koanf:"height"`
	Workers      int     `koanf:"workers"`
	Export       bool    `koanf:"export"`
	Verbose      bool    `koanf:"verbose"`
	ScenarioFile string  `koanf:"scenario_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Width:     DefaultSize,
		Height:    DefaultSize,
		Workers:   runtime.NumCPU(),
	}
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unsupported format %q (available: %s)", c.Format, strings.Join(Formats, ", "))
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("figure size %gx%g must be positive", c.Width, c.Height)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir is required")
	}

	return nil
}
