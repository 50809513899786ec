package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		colour chess.Colour
		want   bool
	}{
		{"initial e1", InitialFEN, "e1", chess.White, false},
		{"initial e8", InitialFEN, "e8", chess.Black, false},
		{"initial e6", InitialFEN, "e6", chess.Black, false},
		{"knight", "k7/8/8/5n2/8/4K3/8/8 w - - 0 1", "e3", chess.White, true},
		{"knight not aligned", "k7/8/8/4n3/8/4K3/8/8 w - - 0 1", "e3", chess.White, false},
		{"black pawn attacks white", "k7/8/8/8/3p4/4K3/8/8 w - - 0 1", "e3", chess.White, true},
		{"black pawn behind white", "k7/8/8/8/8/4K3/3p4/8 w - - 0 1", "e3", chess.White, false},
		{"white pawn attacks black", "8/8/4k3/3P4/8/8/8/K7 b - - 0 1", "e6", chess.Black, true},
		{"white pawn in front of black", "8/8/4k3/4P3/8/8/8/K7 b - - 0 1", "e6", chess.Black, false},
		{"rook on file", "k3r3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", chess.White, true},
		{"rook blocked", "k3r3/8/8/8/4N3/8/8/4K3 w - - 0 1", "e1", chess.White, false},
		{"rook on diagonal", "k7/8/8/8/8/8/6r1/7K w - - 0 1", "h1", chess.White, false},
		{"bishop", "k7/8/8/1b6/8/8/8/5K2 w - - 0 1", "f1", chess.White, true},
		{"bishop blocked by own piece", "k7/8/8/1b6/8/3P4/8/5K2 w - - 0 1", "f1", chess.White, false},
		{"bishop on file", "k7/8/8/5b2/8/8/8/5K2 w - - 0 1", "f1", chess.White, false},
		{"queen diagonal", "k7/8/8/8/q7/8/8/3K4 w - - 0 1", "d1", chess.White, true},
		{"queen rank", "k7/8/8/8/8/8/8/q2K4 w - - 0 1", "d1", chess.White, true},
		{"adjacent king", "8/8/8/3k4/4K3/8/8/8 w - - 0 1", "e4", chess.White, true},
		{"distant king", "8/8/3k4/8/4K3/8/8/8 w - - 0 1", "e4", chess.White, false},
		{"own pieces never attack", "k7/8/8/8/8/5N2/8/4KR2 w - - 0 1", "e1", chess.White, false},
		{"empty square", "k7/8/8/8/8/8/8/r3K3 w - - 0 1", "c1", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsAttacked(board, sq(tt.square), tt.colour); got != tt.want {
				t.Errorf("IsAttacked(%s, %v) = %v, want %v", tt.square, tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsAttacked_OffBoard(t *testing.T) {
	board := mustBoard(t, "k7/8/8/8/8/8/8/r3K3 w - - 0 1")

	for _, s := range []chess.Square{chess.Sq(-1, 0), chess.Sq(8, 0), chess.Sq(0, 8), chess.Sq(3, -1)} {
		if IsAttacked(board, s, chess.White) {
			t.Errorf("IsAttacked(%+v) = true, want false", s)
		}
	}
	if IsAttacked(nil, sq("e1"), chess.White) {
		t.Error("IsAttacked(nil board) = true, want false")
	}
}

// IsAttacked must agree with asking whether any enemy piece could legally
// move onto the square, ignoring that piece's own king.
func TestIsAttacked_AgreesWithMoveRules(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		board := mustBoard(t, fen)
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				target := chess.Sq(file, rank)
				for _, colour := range []chess.Colour{chess.White, chess.Black} {
					want := attackedByRules(board, target, colour)
					if got := IsAttacked(board, target, colour); got != want {
						t.Errorf("%s: IsAttacked(%v, %v) = %v, want %v", fen, target, colour, got, want)
					}
				}
			}
		}
	}
}

// attackedByRules places a stand-in piece of colour on target and asks each
// enemy piece's move rule whether it could capture there.
func attackedByRules(board *chess.Board, target chess.Square, colour chess.Colour) bool {
	probe := board.Copy()
	probe.Set(target, chess.NewPiece(colour, chess.Knight))

	attacked := false
	probe.Each(func(from chess.Square, p chess.Piece) {
		if attacked || from == target || p.IsEmpty() || p.Colour == colour {
			return
		}
		if ruleFor(p.Kind).canMove(probe, p, from, target) {
			attacked = true
		}
	})
	return attacked
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"rook check", "4r2k/8/8/8/8/8/P7/4K3 w - - 0 1", chess.White, true},
		{"rook check other side", "4r2k/8/8/8/8/8/P7/4K3 w - - 0 1", chess.Black, false},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"no white king", "4k3/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestRayScanDetector(t *testing.T) {
	var d CheckDetector = RayScanDetector{}
	board := mustBoard(t, "4r2k/8/8/8/8/8/P7/4K3 w - - 0 1")

	if !d.IsAttacked(board, sq("e1"), chess.White) {
		t.Error("RayScanDetector.IsAttacked(e1) = false, want true")
	}
	if d.IsAttacked(board, sq("d1"), chess.White) {
		t.Error("RayScanDetector.IsAttacked(d1) = true, want false")
	}
}
