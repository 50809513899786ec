package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq converts an algebraic square name such as "e4".
func sq(name string) chess.Square {
	return chess.Sq(int(name[0]-'a'), int(name[1]-'1'))
}
