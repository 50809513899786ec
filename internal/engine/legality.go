package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Validator decides move legality. The check-safety filter goes through
// Detector, which defaults to RayScanDetector when nil.
type Validator struct {
	Detector CheckDetector
}

// DefaultValidator is used by the package-level IsLegal and LegalMoves.
var DefaultValidator = Validator{Detector: RayScanDetector{}}

// IsLegal reports whether moving the piece on from to to is legal on board.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	return DefaultValidator.IsLegal(board, from, to)
}

// LegalMoves returns every legal destination for the piece on from.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	return DefaultValidator.LegalMoves(board, from)
}

// IsLegal reports whether moving the piece on from to to is legal: both
// squares on the board and distinct, a piece on from, no capture of an own
// piece, the kind's geometry satisfied, and the mover's king not attacked
// afterwards. board is never modified.
func (v Validator) IsLegal(board *chess.Board, from, to chess.Square) bool {
	if board == nil || !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	if target := board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	rule := ruleFor(piece.Kind)
	if rule == nil || !rule.canMove(board, piece, from, to) {
		return false
	}

	return v.leavesKingSafe(board, from, to, piece.Colour)
}

// LegalMoves returns every square the piece on from may legally move to,
// ordered a1, b1, ... h8. It returns nil for an empty or off-board origin.
func (v Validator) LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	if board == nil || board.Get(from).IsEmpty() {
		return nil
	}

	var moves []chess.Square
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			to := chess.Sq(file, rank)
			if v.IsLegal(board, from, to) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// leavesKingSafe plays the move on a copy of board and asks the detector
// whether colour's king is attacked afterwards.
func (v Validator) leavesKingSafe(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	Apply(testBoard, from, to)

	king, ok := testBoard.FindKing(colour)
	if !ok {
		return true // No king to expose
	}
	return !v.detector().IsAttacked(testBoard, king, colour)
}

func (v Validator) detector() CheckDetector {
	if v.Detector == nil {
		return RayScanDetector{}
	}
	return v.Detector
}
