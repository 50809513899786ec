package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CheckDetector decides whether a square is attacked. It is the single
// entry point the Validator uses for its check-safety filter.
type CheckDetector interface {
	// IsAttacked reports whether a piece of the colour opposing colour
	// could move to sq, ignoring its own check safety.
	IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) bool
}

// RayScanDetector scans outward from the target square along every attack
// geometry instead of visiting each enemy piece.
type RayScanDetector struct{}

// IsAttacked implements CheckDetector.
func (RayScanDetector) IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	return IsAttacked(board, sq, colour)
}

var (
	knightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsAttacked returns true if the piece of colour standing on sq (normally its
// king) is attacked by the opposing side. Off-board squares are never attacked.
func IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if board == nil || !sq.Valid() {
		return false
	}
	enemy := colour.Opposite()

	// Knight jumps
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(enemy, chess.Knight) {
			return true
		}
	}

	// Enemy pawns attack from one rank ahead of sq, seen from colour's side.
	pawnRank := chess.ColourOffset(colour)
	for _, df := range [2]int{-1, 1} {
		if board.Get(sq.Offset(df, pawnRank)).Is(enemy, chess.Pawn) {
			return true
		}
	}

	if rayHits(board, sq, orthogonalDirs[:], enemy, chess.Rook) {
		return true
	}
	if rayHits(board, sq, diagonalDirs[:], enemy, chess.Bishop) {
		return true
	}

	// Adjacent enemy king
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(enemy, chess.King) {
			return true
		}
	}

	return false
}

// rayHits walks each direction from sq until the edge or the first piece and
// reports whether that piece is an enemy slider of kind or an enemy queen.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, enemy chess.Colour, slider chess.Kind) bool {
	for _, dir := range dirs {
		for cur := sq.Offset(dir[0], dir[1]); ; cur = cur.Offset(dir[0], dir[1]) {
			piece, ok := board.Lookup(cur)
			if !ok {
				break // Edge
			}
			if piece.IsEmpty() {
				continue
			}
			if piece.Is(enemy, slider) || piece.Is(enemy, chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked. A board
// without a king of that colour is reported as not in check; positions are
// expected to have passed ValidatePosition.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	if board == nil {
		return false
	}
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, king, colour)
}
