package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseSquareAt parses a square such as "E4" or "e4" from a lexed token.
func parseSquareAt(tok Token) (chess.Square, error) {
	if len(tok.Text) != 2 {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    tok.Text,
			Column:   tok.Column,
			Expected: "square (A1-H8)",
			Got:      tok.Text,
		}
	}

	file, rank := tok.Text[0], tok.Text[1]
	if chTab[file] != Alpha || toLower(file) < 'a' || toLower(file) > 'h' {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    tok.Text,
			Column:   tok.Column,
			Expected: "file letter A-H",
			Got:      string(file),
		}
	}
	if chTab[rank] != Digit || rank < '1' || rank > '8' {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    tok.Text,
			Column:   tok.Column + 1,
			Expected: "rank digit 1-8",
			Got:      string(rank),
		}
	}

	return chess.Sq(int(toLower(file)-'a'), int(rank-'1')), nil
}

// ParseMove parses two whitespace-separated squares such as "A2 A4".
func ParseMove(line string) (chess.Move, error) {
	tokens := NewLexer(line).Tokens()
	if len(tokens) != 2 {
		return chess.Move{}, wrongTokenCount(line, tokens)
	}
	return parseMoveTokens(tokens[0], tokens[1])
}

func parseMoveTokens(fromTok, toTok Token) (chess.Move, error) {
	from, err := parseSquareAt(fromTok)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := parseSquareAt(toTok)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

func wrongTokenCount(line string, tokens []Token) error {
	column := len(line) + 1
	got := "end of line"
	if len(tokens) > 2 {
		column = tokens[2].Column
		got = tokens[2].Text
	}
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    line,
		Column:   column,
		Expected: "two squares",
		Got:      got,
	}
}

// FormatSquare returns the square in prompt form, e.g. "E4".
func FormatSquare(sq chess.Square) string {
	return strings.ToUpper(sq.String())
}

// FormatMove returns the move in prompt form, e.g. "E2 E4".
func FormatMove(m chess.Move) string {
	return fmt.Sprintf("%s %s", FormatSquare(m.From), FormatSquare(m.To))
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}
