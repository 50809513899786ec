// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// moveRule decides whether a piece may move from one square to another on
// geometry, path and capture grounds alone. Check safety is applied by the
// Validator afterwards.
type moveRule interface {
	canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool
}

// moveRules maps each piece kind to its rule.
var moveRules = map[chess.Kind]moveRule{
	chess.Pawn:   pawnRule{},
	chess.Knight: knightRule{},
	chess.Bishop: bishopRule{},
	chess.Rook:   rookRule{},
	chess.Queen:  queenRule{},
	chess.King:   kingRule{},
}

// ruleFor returns the rule for kind, or nil for an empty square.
func ruleFor(kind chess.Kind) moveRule {
	return moveRules[kind]
}

type rookRule struct{}

// Exactly one of the file and rank deltas is non-zero.
func (rookRule) canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if (from.File == to.File) == (from.Rank == to.Rank) {
		return false
	}
	return isStraightClear(board, from, to) && canLandOn(board, piece.Colour, to)
}

type knightRule struct{}

func (knightRule) canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	if !(colDiff == 1 && rankDiff == 2) && !(colDiff == 2 && rankDiff == 1) {
		return false
	}
	return canLandOn(board, piece.Colour, to)
}

type bishopRule struct{}

func (bishopRule) canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if from == to {
		return false
	}
	return isDiagonalClear(board, from, to) && canLandOn(board, piece.Colour, to)
}

// queenRule has no geometry of its own.
type queenRule struct{}

func (queenRule) canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return rookRule{}.canMove(board, piece, from, to) || bishopRule{}.canMove(board, piece, from, to)
}

// kingRule covers single steps only; castling is never legal.
type kingRule struct{}

func (kingRule) canMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	if colDiff > 1 || rankDiff > 1 || (colDiff == 0 && rankDiff == 0) {
		return false
	}
	return canLandOn(board, piece.Colour, to)
}
