package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SetupConfig holds settings for the starting position.
type SetupConfig struct {
	// StartFEN is the position a new game begins from. Empty means the
	// standard initial layout.
	StartFEN string
}

// NewSetupConfig creates a SetupConfig with default values.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}

// Validate checks that StartFEN, if set, describes a usable position.
func (s *SetupConfig) Validate() error {
	if s.StartFEN == "" {
		return nil
	}
	board, err := engine.NewBoardFromFEN(s.StartFEN)
	if err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if err := engine.ValidatePosition(board); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// FEN returns the starting position as FEN.
func (s *SetupConfig) FEN() string {
	if s.StartFEN == "" {
		return engine.InitialFEN
	}
	return s.StartFEN
}
