// Package config loads environment-derived defaults for the CLI.
//
// Every value here can be overridden by a command-line flag; the
// environment only seeds the defaults, which keeps scripted invocations
// short (e.g. a fixed OPXPORT_OUTPUT_DIR in a backup job).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-derived defaults.
type Config struct {
	// OutputDir is the default output directory. Empty means "next to
	// the input file".
	OutputDir string `env:"OPXPORT_OUTPUT_DIR"`

	// Format is the default output format name.
	Format string `env:"OPXPORT_FORMAT" envDefault:"icloud"`

	// Quiet suppresses all output except errors.
	Quiet bool `env:"OPXPORT_QUIET"`

	// Verbose enables debug diagnostics.
	Verbose bool `env:"OPXPORT_VERBOSE"`
}

// Load populates a Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error reading environment config: %w", err)
	}
	return cfg, nil
}
