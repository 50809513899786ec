// Package chess provides core chess types: colours, piece kinds, squares and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies one of the six chess pieces.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index on which a colour's pawns start.
func PawnRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}

// LastRank returns the rank index a colour's pawns promote on.
func LastRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
