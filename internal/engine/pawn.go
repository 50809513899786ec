package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

type pawnRule struct{}

func (pawnRule) canMove(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	dir := chess.ColourOffset(pawn.Colour)
	df := to.File - from.File
	dr := to.Rank - from.Rank
	target := board.Get(to)

	switch {
	case df == 0 && dr == dir:
		return target.IsEmpty()

	case df == 0 && dr == 2*dir:
		return pawn.DoubleStep &&
			board.Get(from.Offset(0, dir)).IsEmpty() &&
			target.IsEmpty()

	case abs(df) == 1 && dr == dir:
		if target.IsEnemyOf(pawn.Colour) {
			return true
		}
		return target.IsEmpty() && isEnPassantCapture(board, pawn.Colour, from, to)
	}

	return false
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from from to to: same rank as the capturer, destination file.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(to.File, from.Rank)
}

// isEnPassantCapture reports whether the enemy pawn beside from on to's file
// is still capturable en passant.
func isEnPassantCapture(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	victim := board.Get(enPassantVictim(from, to))
	return victim.Is(colour.Opposite(), chess.Pawn) && victim.EnPassant
}

// promote returns the piece a pawn becomes on its last rank.
func promote(pawn chess.Piece) chess.Piece {
	return chess.NewPiece(pawn.Colour, chess.Queen)
}
