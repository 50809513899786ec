package render

import "github.com/lgbarn/chess-rules-go/internal/chess"

// unicodeGlyphs holds the chess symbols indexed [colour][kind].
var unicodeGlyphs = [2][7]string{
	chess.White: {" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the single-character symbol for p: its FEN letter, or the
// Unicode chess symbol when unicode is set. An empty square is a space.
func Glyph(p chess.Piece, unicode bool) string {
	if p.IsEmpty() || p.Kind < chess.Pawn || p.Kind > chess.King {
		return " "
	}
	if unicode {
		return unicodeGlyphs[p.Colour][p.Kind]
	}
	return string(p.Letter())
}
