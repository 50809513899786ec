package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ValidatePosition checks the preconditions the engine relies on: exactly
// one king of each colour. Check detection on a board failing this is
// undefined, so boards are validated when they are loaded.
func ValidatePosition(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrKingCount)
		}
	}
	return nil
}
