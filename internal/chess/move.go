package chess

// Move is a pair of origin and destination squares.
type Move struct {
	From Square
	To   Square
}

// Valid reports whether both squares are on the board and distinct.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid() && m.From != m.To
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
