// Package notation parses and formats the square and move text typed at
// the prompt, e.g. "A2 A4".
package notation

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	WordToken

	// Internal character classes
	Whitespace
	Alpha
	Digit
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	WordToken:  "WORD",
	Whitespace: "WHITESPACE",
	Alpha:      "ALPHA",
	Digit:      "DIGIT",
	ErrorToken: "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is a word of input and the 1-based column it starts in.
type Token struct {
	Type   TokenType
	Text   string
	Column int
}
