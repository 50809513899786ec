package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CommandKind identifies a line typed at the prompt.
type CommandKind int

const (
	NoCommand    CommandKind = iota // Blank line
	MoveCommand                     // "A2 A4"
	FENCommand                      // "fen"
	MovesCommand                    // "moves E2"
	HelpCommand                     // "help"
)

// Command is a parsed prompt line.
type Command struct {
	Kind   CommandKind
	Move   chess.Move   // MoveCommand
	Square chess.Square // MovesCommand
}

// ParseCommand parses one line of prompt input. Keywords are
// case-insensitive; anything that is not a keyword is parsed as a move.
func ParseCommand(line string) (Command, error) {
	tokens := NewLexer(line).Tokens()
	if len(tokens) == 0 {
		return Command{Kind: NoCommand}, nil
	}

	switch strings.ToLower(tokens[0].Text) {
	case "fen":
		if len(tokens) != 1 {
			return Command{}, unexpectedToken(line, tokens[1], "end of line")
		}
		return Command{Kind: FENCommand}, nil

	case "help", "?":
		return Command{Kind: HelpCommand}, nil

	case "moves":
		switch {
		case len(tokens) < 2:
			return Command{}, &errors.ParseError{
				Err:      errors.ErrInvalidNotation,
				Input:    line,
				Column:   len(line) + 1,
				Expected: "square",
				Got:      "end of line",
			}
		case len(tokens) > 2:
			return Command{}, unexpectedToken(line, tokens[2], "end of line")
		}
		sq, err := parseSquareAt(tokens[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: MovesCommand, Square: sq}, nil
	}

	move, err := ParseMove(line)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: MoveCommand, Move: move}, nil
}

func unexpectedToken(line string, tok Token, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    line,
		Column:   tok.Column,
		Expected: expected,
		Got:      tok.Text,
	}
}
