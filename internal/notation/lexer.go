package notation

// Lexer splits a line of input into whitespace-separated words.
type Lexer struct {
	line string
	pos  int
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}
	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
}

// NewLexer creates a lexer over one line of input.
func NewLexer(line string) *Lexer {
	return &Lexer{line: line}
}

// Next returns the next word, or an EOFToken at the end of the line. Any
// run of non-whitespace characters is a word; validating its characters is
// left to the parser so errors can name the offending token.
func (l *Lexer) Next() Token {
	for l.pos < len(l.line) && chTab[l.line[l.pos]] == Whitespace {
		l.pos++
	}
	if l.pos >= len(l.line) {
		return Token{Type: EOFToken, Column: l.pos + 1}
	}

	start := l.pos
	for l.pos < len(l.line) && chTab[l.line[l.pos]] != Whitespace {
		l.pos++
	}
	return Token{Type: WordToken, Text: l.line[start:l.pos], Column: start + 1}
}

// Tokens returns every word on the line.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
