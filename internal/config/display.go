package config

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// UseColour enables ANSI colours for squares and pieces
	UseColour bool

	// Unicode draws pieces with chess symbols instead of FEN letters
	Unicode bool

	// Coordinates prints rank labels and the file footer
	Coordinates bool

	// Prompt is printed before each line of input
	Prompt string
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		UseColour:   true,
		Coordinates: true,
		Prompt:      "> ",
	}
}
