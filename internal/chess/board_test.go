package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.Get(Sq(file, rank)); !got.IsEmpty() {
					t.Errorf("Get(%v) = %v; want Empty", Sq(file, rank), got)
				}
			}
		}
	})

	t.Run("no kings", func(t *testing.T) {
		if _, ok := b.FindKing(White); ok {
			t.Error("FindKing(White) found a king on an empty board")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name   string
		sq     Square
		colour Colour
		kind   Kind
	}{
		// White back rank
		{"white rook a1", Sq(0, 0), White, Rook},
		{"white knight b1", Sq(1, 0), White, Knight},
		{"white bishop c1", Sq(2, 0), White, Bishop},
		{"white queen d1", Sq(3, 0), White, Queen},
		{"white king e1", Sq(4, 0), White, King},
		{"white bishop f1", Sq(5, 0), White, Bishop},
		{"white knight g1", Sq(6, 0), White, Knight},
		{"white rook h1", Sq(7, 0), White, Rook},
		// Pawns
		{"white pawn a2", Sq(0, 1), White, Pawn},
		{"white pawn h2", Sq(7, 1), White, Pawn},
		{"black pawn a7", Sq(0, 6), Black, Pawn},
		{"black pawn e7", Sq(4, 6), Black, Pawn},
		// Black back rank
		{"black rook a8", Sq(0, 7), Black, Rook},
		{"black queen d8", Sq(3, 7), Black, Queen},
		{"black king e8", Sq(4, 7), Black, King},
		{"black knight g8", Sq(6, 7), Black, Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.sq); !got.Is(tt.colour, tt.kind) {
				t.Errorf("Get(%v) = %v; want %v %v", tt.sq, got, tt.colour, tt.kind)
			}
		})
	}

	t.Run("middle is empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 2; rank < 6; rank++ {
				if got := b.Get(Sq(file, rank)); !got.IsEmpty() {
					t.Errorf("Get(%v) = %v; want Empty", Sq(file, rank), got)
				}
			}
		}
	})

	t.Run("initial flags", func(t *testing.T) {
		if p := b.Get(Sq(4, 1)); !p.DoubleStep || p.EnPassant {
			t.Errorf("e2 pawn flags = %+v; want DoubleStep only", p)
		}
		if p := b.Get(Sq(4, 6)); !p.DoubleStep {
			t.Errorf("e7 pawn DoubleStep = false; want true")
		}
		for _, sq := range []Square{Sq(0, 0), Sq(4, 0), Sq(7, 0), Sq(0, 7), Sq(4, 7), Sq(7, 7)} {
			if !b.Get(sq).CastlingRights {
				t.Errorf("Get(%v).CastlingRights = false; want true", sq)
			}
		}
		if b.Get(Sq(1, 0)).CastlingRights {
			t.Error("knight has CastlingRights; want false")
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		counts := map[Kind]int{Pawn: 8, Knight: 2, Bishop: 2, Rook: 2, Queen: 1, King: 1}
		for _, colour := range []Colour{White, Black} {
			for kind, want := range counts {
				if got := b.Count(colour, kind); got != want {
					t.Errorf("Count(%v, %v) = %d; want %d", colour, kind, got, want)
				}
			}
		}
	})
}

func TestBoardGetSetOffBoard(t *testing.T) {
	b := NewInitialBoard()
	offBoard := []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8), Sq(100, -100)}

	for _, sq := range offBoard {
		if got := b.Get(sq); !got.IsEmpty() {
			t.Errorf("Get(%v) = %v; want Empty", sq, got)
		}
		if _, ok := b.Lookup(sq); ok {
			t.Errorf("Lookup(%v) ok = true; want false", sq)
		}
		b.Set(sq, W(Queen)) // must not panic
	}

	if got := b.Count(White, Queen); got != 1 {
		t.Errorf("Count(White, Queen) after off-board Set = %d; want 1", got)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Clear(Sq(4, 1))
	c.Set(Sq(4, 3), W(Pawn))

	if got := b.Get(Sq(4, 1)); !got.Is(White, Pawn) {
		t.Errorf("original e2 = %v after modifying copy; want White Pawn", got)
	}
	if got := b.Get(Sq(4, 3)); !got.IsEmpty() {
		t.Errorf("original e4 = %v after modifying copy; want Empty", got)
	}
}

func TestBoardEach(t *testing.T) {
	b := NewInitialBoard()
	var visited, occupied int
	var first, last Square

	b.Each(func(sq Square, p Piece) {
		if visited == 0 {
			first = sq
		}
		last = sq
		visited++
		if !p.IsEmpty() {
			occupied++
		}
	})

	if visited != 64 {
		t.Errorf("Each visited %d squares; want 64", visited)
	}
	if occupied != 32 {
		t.Errorf("Each saw %d pieces; want 32", occupied)
	}
	if first != Sq(0, 0) || last != Sq(7, 7) {
		t.Errorf("Each order = %v..%v; want a1..h8", first, last)
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		colour Colour
		want   Square
	}{
		{White, Sq(4, 0)},
		{Black, Sq(4, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			got, ok := b.FindKing(tt.colour)
			if !ok || got != tt.want {
				t.Errorf("FindKing(%v) = %v, %v; want %v, true", tt.colour, got, ok, tt.want)
			}
		})
	}
}
