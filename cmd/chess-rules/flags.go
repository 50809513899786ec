// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	startFEN = flag.String("fen", "", "Start from this FEN position (default: initial position)")

	// Display options
	noColour   = flag.Bool("nocolour", false, "Draw the board as plain ASCII without colours")
	useUnicode = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	noCoords   = flag.Bool("nocoords", false, "Don't print rank and file labels")
	prompt     = flag.String("prompt", "> ", "Input prompt")

	// Diagnostics
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)

	cfg.Setup.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.UseColour = !*noColour
	cfg.Display.Unicode = *useUnicode
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.Prompt = *prompt
}
