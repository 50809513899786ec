package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isStraightClear checks that every square strictly between from and to
// along a shared file or rank is empty.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	if from.File != to.File && from.Rank != to.Rank {
		return false
	}
	return isBetweenEmpty(board, from, to)
}

// isDiagonalClear checks that every square strictly between from and to
// along a shared diagonal is empty.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	if abs(to.File-from.File) != abs(to.Rank-from.Rank) {
		return false
	}
	return isBetweenEmpty(board, from, to)
}

// isBetweenEmpty walks from towards to one step at a time and reports
// whether all intermediate squares are empty. from and to must be aligned.
func isBetweenEmpty(board *chess.Board, from, to chess.Square) bool {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)

	for sq := from.Offset(df, dr); sq != to && sq.Valid(); sq = sq.Offset(df, dr) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// canLandOn reports whether a piece of colour may finish its move on sq:
// the square must be empty or hold an enemy piece.
func canLandOn(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	target := board.Get(sq)
	return target.IsEmpty() || target.Colour != colour
}
