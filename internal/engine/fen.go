package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the FEN fields the board itself does
// not carry.
type Position struct {
	Board         *chess.Board
	ToMove        chess.Colour
	HalfmoveClock int
	MoveNumber    int
}

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// ParsePosition parses a FEN string. Only the piece placement field is
// required; missing trailing fields take their initial-position defaults.
// Pawns on their starting rank may double step, the castling field sets the
// CastlingRights flags and the en passant field marks the pawn that just
// double stepped.
func ParsePosition(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return Position{}, fmt.Errorf("too many FEN fields (%d): %w", len(parts), errors.ErrInvalidFEN)
	}

	pos := Position{
		Board:      chess.NewBoard(),
		ToMove:     chess.White,
		MoveNumber: 1,
	}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return Position{}, err
	}
	if len(parts) >= 2 {
		if err := parseSideToMove(&pos, parts[1]); err != nil {
			return Position{}, err
		}
	}
	if len(parts) >= 3 {
		if err := grantCastlingRights(pos.Board, parts[2]); err != nil {
			return Position{}, err
		}
	}
	if len(parts) >= 4 {
		if err := parseEnPassant(pos.Board, parts[3]); err != nil {
			return Position{}, err
		}
	}
	if len(parts) >= 5 {
		if err := parseClocks(&pos, parts[4:]); err != nil {
			return Position{}, err
		}
	}

	return pos, nil
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	pos, err := ParsePosition(fen)
	if err != nil {
		return nil, err
	}
	return pos.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			kind := chess.NoKind
			if c < unicode.MaxASCII {
				kind = ConvertFENCharToKind(byte(c))
			}
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			// Castling rights come from the castling field only.
			piece := chess.NewPiece(colour, kind)
			piece.CastlingRights = false
			piece.DoubleStep = kind == chess.Pawn && rank == chess.PawnRank(colour)

			board.Set(chess.Sq(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseEnPassant parses the en passant target square field and flags the
// pawn that made the double step.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' {
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}

	file := int(field[0] - 'a')
	var pawnSq chess.Square
	var colour chess.Colour
	switch field[1] {
	case '3':
		colour, pawnSq = chess.White, chess.Sq(file, 3)
	case '6':
		colour, pawnSq = chess.Black, chess.Sq(file, 4)
	default:
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}

	pawn := board.Get(pawnSq)
	if !pawn.Is(colour, chess.Pawn) {
		return fmt.Errorf("no %v pawn on %v for en passant square %s: %w", colour, pawnSq, field, errors.ErrInvalidFEN)
	}
	pawn.EnPassant = true
	board.Set(pawnSq, pawn)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, fields []string) error {
	targets := []*int{&pos.HalfmoveClock, &pos.MoveNumber}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid move counter %q: %w", field, errors.ErrInvalidFEN)
		}
		*targets[i] = n
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board, toMove chess.Colour, halfmoveClock, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(CastlingRightsOf(board).String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " %d %d", halfmoveClock, moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the square behind the pawn that may be captured en
// passant, or '-'.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	target := chess.Square{File: -1}
	board.Each(func(sq chess.Square, p chess.Piece) {
		if p.Kind == chess.Pawn && p.EnPassant {
			target = sq.Offset(0, -chess.ColourOffset(p.Colour))
		}
	})
	sb.WriteString(target.String())
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return Position{
		Board:      chess.NewInitialBoard(),
		ToMove:     chess.White,
		MoveNumber: 1,
	}
}
