package chess

import (
	"testing"
)

func pos(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.Get(Position{file, rank}); got != nil {
					t.Errorf("Get(%v) = %v; want nil", Position{file, rank}, got)
				}
			}
		}
	})

	t.Run("no kings", func(t *testing.T) {
		if b.King(White) != nil || b.King(Black) != nil {
			t.Error("empty board reports a king")
		}
		if err := b.Validate(); err == nil {
			t.Error("Validate() on empty board = nil; want error")
		}
	})
}

func TestSetup(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name string
		sq   string
		kind Kind
		side Side
	}{
		{"white rook a1", "a1", Rook, White},
		{"white knight b1", "b1", Knight, White},
		{"white bishop c1", "c1", Bishop, White},
		{"white queen d1", "d1", Queen, White},
		{"white king e1", "e1", King, White},
		{"white rook h1", "h1", Rook, White},
		{"white pawn a2", "a2", Pawn, White},
		{"white pawn h2", "h2", Pawn, White},
		{"black pawn e7", "e7", Pawn, Black},
		{"black queen d8", "d8", Queen, Black},
		{"black king e8", "e8", King, Black},
		{"black knight g8", "g8", Knight, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(pos(tt.sq))
			if got == nil {
				t.Fatalf("Get(%s) = nil; want %s %s", tt.sq, tt.side, tt.kind)
			}
			if got.Kind != tt.kind || got.Side != tt.side {
				t.Errorf("Get(%s) = %v; want %s %s", tt.sq, got, tt.side, tt.kind)
			}
			if got.Pos != pos(tt.sq) {
				t.Errorf("Get(%s).Pos = %v", tt.sq, got.Pos)
			}
		})
	}

	t.Run("middle empty", func(t *testing.T) {
		for _, sq := range []string{"e3", "d4", "f5", "c6"} {
			if got := b.Get(pos(sq)); got != nil {
				t.Errorf("Get(%s) = %v; want nil", sq, got)
			}
		}
	})

	t.Run("king index", func(t *testing.T) {
		if k := b.King(White); k == nil || k.Pos != pos("e1") {
			t.Errorf("King(White) = %v; want e1", k)
		}
		if k := b.King(Black); k == nil || k.Pos != pos("e8") {
			t.Errorf("King(Black) = %v; want e8", k)
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if n := len(b.Pieces(White)); n != 16 {
			t.Errorf("len(Pieces(White)) = %d; want 16", n)
		}
		if n := len(b.Pieces(Black)); n != 16 {
			t.Errorf("len(Pieces(Black)) = %d; want 16", n)
		}
	})

	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBoardGetOffBoard(t *testing.T) {
	b := NewInitialBoard()
	for _, p := range []Position{NoPosition, {8, 0}, {0, 8}, {-1, 3}} {
		if got := b.Get(p); got != nil {
			t.Errorf("Get(%v) = %v; want nil", p, got)
		}
	}

	// Placing off the board is a no-op
	b.Place(NewPiece(Queen, White, Position{9, 9}))
	if got := b.Get(pos("e1")); got == nil || got.Kind != King {
		t.Errorf("Get(e1) = %v after off-board Place; want white king", got)
	}
}

func TestPiecesScanOrder(t *testing.T) {
	b := NewBoard()
	b.Place(NewPiece(King, White, pos("h1")))
	b.Place(NewPiece(Rook, White, pos("a8")))
	b.Place(NewPiece(Pawn, White, pos("a2")))
	b.Place(NewPiece(King, Black, pos("e8")))

	var got []string
	for _, p := range b.Pieces(White) {
		got = append(got, p.Pos.String())
	}
	want := []string{"a2", "a8", "h1"}
	if len(got) != len(want) {
		t.Fatalf("Pieces(White) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pieces(White)[%d] = %s; want %s", i, got[i], want[i])
		}
	}
}

func TestRelocate(t *testing.T) {
	b := NewInitialBoard()
	taken := b.Relocate(pos("e2"), pos("e4"))
	if taken != nil {
		t.Errorf("Relocate to empty square returned %v", taken)
	}
	p := b.Get(pos("e4"))
	if p == nil || p.Kind != Pawn || !p.Moved || p.Pos != pos("e4") {
		t.Errorf("after Relocate, Get(e4) = %+v", p)
	}
	if b.Get(pos("e2")) != nil {
		t.Error("source square not cleared")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	b.Capture(White, NewPiece(Knight, Black, NoPosition))

	c := b.Copy()

	t.Run("same content", func(t *testing.T) {
		for _, side := range []Side{White, Black} {
			orig, cp := b.Pieces(side), c.Pieces(side)
			if len(orig) != len(cp) {
				t.Fatalf("%s piece count %d vs %d", side, len(orig), len(cp))
			}
			for i := range orig {
				if *orig[i] != *cp[i] {
					t.Errorf("piece %d: %+v vs %+v", i, *orig[i], *cp[i])
				}
				if orig[i] == cp[i] {
					t.Errorf("piece %d aliased between board and copy", i)
				}
			}
		}
		if len(c.Captured(White)) != 1 || c.Captured(White)[0] == b.Captured(White)[0] {
			t.Error("captured list not deep-copied")
		}
	})

	t.Run("king index points into copy", func(t *testing.T) {
		for _, side := range []Side{White, Black} {
			k := c.King(side)
			if k == nil || k != c.Get(k.Pos) {
				t.Errorf("copy King(%s) = %v is not the piece on its square", side, k)
			}
			if k == b.King(side) {
				t.Errorf("copy King(%s) aliases the original", side)
			}
		}
	})

	t.Run("mutating copy leaves original", func(t *testing.T) {
		c.Relocate(pos("e1"), pos("e3"))
		if b.King(White).Pos != pos("e1") || b.King(White).Moved {
			t.Errorf("original king changed: %+v", b.King(White))
		}
		if b.Get(pos("e1")) == nil {
			t.Error("original e1 cleared by copy mutation")
		}
	})
}

func TestCopyPanicsWithoutKing(t *testing.T) {
	b := NewBoard()
	b.Place(NewPiece(King, White, pos("e1")))

	defer func() {
		if recover() == nil {
			t.Error("Copy() of board without black king did not panic")
		}
	}()
	b.Copy()
}

func TestValidate(t *testing.T) {
	t.Run("two white kings", func(t *testing.T) {
		b := NewInitialBoard()
		b.Place(NewPiece(King, White, pos("d4")))
		if err := b.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})

	t.Run("stale position", func(t *testing.T) {
		b := NewInitialBoard()
		b.Get(pos("a2")).Pos = pos("a3")
		if err := b.Validate(); err == nil {
			t.Error("Validate() = nil; want error")
		}
	})
}
