package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseSquareAt(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Square
	}{
		{"A1", chess.Sq(0, 0)},
		{"a1", chess.Sq(0, 0)},
		{"H8", chess.Sq(7, 7)},
		{"e4", chess.Sq(4, 3)},
		{"E4", chess.Sq(4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSquareAt(Token{Type: WordToken, Text: tt.input, Column: 1})
			if err != nil {
				t.Fatalf("parseSquareAt(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseSquareAt(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSquareAt_Errors(t *testing.T) {
	tests := []struct {
		input      string
		wantColumn int
		wantGot    string
	}{
		{"", 1, ""},
		{"E", 1, "E"},
		{"E44", 1, "E44"},
		{"I4", 1, "I"},
		{"44", 1, "4"},
		{"E9", 2, "9"},
		{"E0", 2, "0"},
		{"EE", 2, "E"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseSquareAt(Token{Type: WordToken, Text: tt.input, Column: 1})
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)

			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("parseSquareAt(%q) error %T is not a *ParseError", tt.input, err)
			}
			if perr.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", perr.Column, tt.wantColumn)
			}
			if perr.Got != tt.wantGot {
				t.Errorf("Got = %q, want %q", perr.Got, tt.wantGot)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A2 A4", "a2a4"},
		{"a2 a4", "a2a4"},
		{"  b1\tc3  ", "b1c3"},
		{"E7 E8", "e7e8"},
		{"A1 A1", "a1a1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			testutil.AssertNoError(t, err)
			if got.String() != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantColumn int
	}{
		{"one token", "A2", 3},
		{"three tokens", "A2 A4 A5", 7},
		{"joined squares", "A2A4", 5},
		{"bad destination", "A2 Z4", 4},
		{"bad origin rank", "A9 A4", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMove(tt.input)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)

			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("ParseMove(%q) error %T is not a *ParseError", tt.input, err)
			}
			if perr.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", perr.Column, tt.wantColumn)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := FormatSquare(chess.Sq(4, 3)); got != "E4" {
		t.Errorf("FormatSquare(e4) = %q, want %q", got, "E4")
	}
	move := chess.Move{From: chess.Sq(0, 1), To: chess.Sq(0, 3)}
	if got := FormatMove(move); got != "A2 A4" {
		t.Errorf("FormatMove(a2a4) = %q, want %q", got, "A2 A4")
	}

	// Formatted text parses back to the same move.
	back, err := ParseMove(FormatMove(move))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, back, move)
}

func TestLexer(t *testing.T) {
	tokens := NewLexer(" moves\t e2 ").Tokens()

	want := []Token{
		{Type: WordToken, Text: "moves", Column: 2},
		{Type: WordToken, Text: "e2", Column: 9},
	}
	testutil.AssertEqual(t, tokens, want)

	if tok := NewLexer("   ").Next(); tok.Type != EOFToken {
		t.Errorf("Next() on blank line = %v, want EOF", tok.Type)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"", Command{Kind: NoCommand}},
		{"   ", Command{Kind: NoCommand}},
		{"fen", Command{Kind: FENCommand}},
		{"FEN", Command{Kind: FENCommand}},
		{"help", Command{Kind: HelpCommand}},
		{"?", Command{Kind: HelpCommand}},
		{"moves E2", Command{Kind: MovesCommand, Square: chess.Sq(4, 1)}},
		{"A2 A4", Command{Kind: MoveCommand, Move: chess.Move{From: chess.Sq(0, 1), To: chess.Sq(0, 3)}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []string{
		"fen now",
		"moves",
		"moves E2 E4",
		"moves Z2",
		"hello",
		"A2 A4 A6",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCommand(input)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
		})
	}
}

func TestParseCommand_MoveErrorsMatchParseMove(t *testing.T) {
	for _, input := range []string{"hello", "A2 A4 A6", "A2 Z9", "E2"} {
		t.Run(input, func(t *testing.T) {
			_, cmdErr := ParseCommand(input)
			_, moveErr := ParseMove(input)
			testutil.AssertEqual(t, cmdErr.Error(), moveErr.Error())
		})
	}
}
