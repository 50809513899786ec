package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Apply moves the piece on from to to and returns the captured piece, or
// chess.Empty. It does not check legality; callers gate on IsLegal first.
// Off-board squares, from == to and an empty origin leave board untouched.
//
// Flag bookkeeping:
//   - the opponent's pawns lose their EnPassant flags, so a double step stays
//     capturable until the other side has made its next move;
//   - a pawn that advanced two ranks becomes capturable en passant, and any
//     pawn move spends DoubleStep;
//   - rooks and kings lose CastlingRights;
//   - an en passant capture removes the pawn beside the origin square;
//   - a pawn reaching its last rank becomes a queen.
func Apply(board *chess.Board, from, to chess.Square) chess.Piece {
	if board == nil || !from.Valid() || !to.Valid() || from == to {
		return chess.Empty
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return chess.Empty
	}

	captured := board.Get(to)

	// A pawn moving diagonally onto an empty square is capturing en passant.
	if piece.Kind == chess.Pawn && from.File != to.File && captured.IsEmpty() {
		victim := enPassantVictim(from, to)
		captured = board.Get(victim)
		board.Clear(victim)
	}

	clearEnPassant(board, piece.Colour.Opposite())

	switch piece.Kind {
	case chess.Pawn:
		piece.EnPassant = abs(to.Rank-from.Rank) == 2
		piece.DoubleStep = false
		if to.Rank == chess.LastRank(piece.Colour) {
			piece = promote(piece)
		}
	case chess.Rook, chess.King:
		piece.CastlingRights = false
	}

	board.Clear(from)
	board.Set(to, piece)

	return captured
}

// clearEnPassant removes the en passant flag from every pawn of colour.
func clearEnPassant(board *chess.Board, colour chess.Colour) {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if p := &board.Squares[file][rank]; p.Colour == colour {
				p.EnPassant = false
			}
		}
	}
}
