package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Files of the king and the two corner rooks on the back rank.
const (
	kingFile          = 4
	kingsideRookFile  = chess.BoardSize - 1
	queensideRookFile = 0
)

// CastlingRights summarises which castling options are still open, as
// recorded by the CastlingRights flags of each king and its corner rooks.
// Castling itself is not played by the engine; the flags are bookkeeping.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// CastlingRightsOf derives the castling options from the board's flags. An
// option is open when both the king on its home square and the rook in the
// matching corner still carry CastlingRights.
func CastlingRightsOf(board *chess.Board) CastlingRights {
	return CastlingRights{
		WhiteKingside:  hasCastlingRights(board, chess.White, kingsideRookFile),
		WhiteQueenside: hasCastlingRights(board, chess.White, queensideRookFile),
		BlackKingside:  hasCastlingRights(board, chess.Black, kingsideRookFile),
		BlackQueenside: hasCastlingRights(board, chess.Black, queensideRookFile),
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var s string
	if c.WhiteKingside {
		s += "K"
	}
	if c.WhiteQueenside {
		s += "Q"
	}
	if c.BlackKingside {
		s += "k"
	}
	if c.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

func hasCastlingRights(board *chess.Board, colour chess.Colour, rookFile int) bool {
	rank := chess.HomeRank(colour)
	king := board.Get(chess.Sq(kingFile, rank))
	rook := board.Get(chess.Sq(rookFile, rank))
	return king.Is(colour, chess.King) && king.CastlingRights &&
		rook.Is(colour, chess.Rook) && rook.CastlingRights
}

// grantCastlingRights sets the CastlingRights flags named by a FEN castling
// field. Kings and rooks not named keep whatever flags they already have, so
// callers clear them first. Letters whose king or rook is missing are ignored.
func grantCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}

	for _, c := range field {
		var colour chess.Colour
		var rookFile int
		switch c {
		case 'K':
			colour, rookFile = chess.White, kingsideRookFile
		case 'Q':
			colour, rookFile = chess.White, queensideRookFile
		case 'k':
			colour, rookFile = chess.Black, kingsideRookFile
		case 'q':
			colour, rookFile = chess.Black, queensideRookFile
		default:
			return fmt.Errorf("invalid castling availability %q: %w", field, errors.ErrInvalidFEN)
		}

		rank := chess.HomeRank(colour)
		kingSq, rookSq := chess.Sq(kingFile, rank), chess.Sq(rookFile, rank)
		king, rook := board.Get(kingSq), board.Get(rookSq)
		if !king.Is(colour, chess.King) || !rook.Is(colour, chess.Rook) {
			continue
		}
		king.CastlingRights = true
		rook.CastlingRights = true
		board.Set(kingSq, king)
		board.Set(rookSq, rook)
	}
	return nil
}
