package chess

// Board is an 8x8 grid of optional pieces indexed [file][rank].
//
// A Board is a plain value: copying it (or calling Copy) yields a fully
// independent board.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][HomeRank(White)] = W(backRank[file])
		b.Squares[file][PawnRank(White)] = W(Pawn)
		b.Squares[file][PawnRank(Black)] = B(Pawn)
		b.Squares[file][HomeRank(Black)] = B(backRank[file])
	}
}

// Get returns the piece on sq. Off-board squares read as Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.File][sq.Rank]
}

// Lookup returns the piece on sq and whether sq is on the board.
func (b *Board) Lookup(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Empty, false
	}
	return b.Squares[sq.File][sq.Rank], true
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Each calls fn for every square from a1 to h8, rank by rank.
func (b *Board) Each(fn func(sq Square, piece Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			fn(Sq(file, rank), b.Squares[file][rank])
		}
	}
}

// FindKing returns the square of the first king of colour found scanning
// from a1, and false if there is none.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[file][rank].Is(colour, King) {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	b.Each(func(_ Square, p Piece) {
		if p.Is(colour, kind) {
			n++
		}
	})
	return n
}
