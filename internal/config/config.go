// Package config provides configuration for the chess-rules tool.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary per move
	Verbosity int

	// Grouped settings
	Display *DisplayConfig
	Setup   *SetupConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Setup:      NewSetupConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the board and command replies are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every grouped setting.
func (c *Config) Validate() error {
	return c.Setup.Validate()
}
