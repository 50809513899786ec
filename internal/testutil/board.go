package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// Square converts an algebraic name such as "e4" to a square.
// It calls t.Fatal for anything else.
func Square(t *testing.T, name string) chess.Square {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("bad square name %q", name)
	}
	return chess.Sq(int(name[0]-'a'), int(name[1]-'1'))
}

// Move converts "e2e4" to a move. It calls t.Fatal for anything else.
func Move(t *testing.T, lalg string) chess.Move {
	t.Helper()
	if len(lalg) != 4 {
		t.Fatalf("bad move %q", lalg)
	}
	return chess.Move{From: Square(t, lalg[:2]), To: Square(t, lalg[2:])}
}

// Placement returns the piece placement field of the board's FEN.
func Placement(board *chess.Board) string {
	fen := engine.BoardToFEN(board, chess.White, 0, 1)
	for i := 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			return fen[:i]
		}
	}
	return fen
}
