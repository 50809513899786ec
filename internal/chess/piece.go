package chess

// Piece is the occupant of a square. The zero value is an empty square.
//
// Only some flags are meaningful for a given kind: DoubleStep and EnPassant
// for pawns, CastlingRights for rooks and kings.
type Piece struct {
	Kind   Kind
	Colour Colour

	// DoubleStep is true until the pawn first moves.
	DoubleStep bool

	// EnPassant is true only while the pawn may be captured en passant,
	// i.e. straight after its double step.
	EnPassant bool

	// CastlingRights is true until the rook or king first moves.
	CastlingRights bool
}

// Empty is the occupant of an empty square.
var Empty = Piece{}

// NewPiece returns a piece of the given colour and kind with its initial flags.
func NewPiece(colour Colour, kind Kind) Piece {
	p := Piece{Kind: kind, Colour: colour}
	switch kind {
	case Pawn:
		p.DoubleStep = true
	case Rook, King:
		p.CastlingRights = true
	}
	return p
}

// W returns a white piece of the given kind.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B returns a black piece of the given kind.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour && kind != NoKind
}

// IsEnemyOf reports whether p is a piece of the colour opposing colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour
}

// Letter returns the FEN letter of p: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter |= 0x20
	}
	return letter
}

// String returns a description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
