package chess

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether both coordinates are in [0,7].
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be invalid.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square ("e4"), or "-" if it is off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}
