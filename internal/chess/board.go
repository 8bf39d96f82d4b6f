package chess

import "fmt"

// Board represents a chess board with all state needed for move execution.
type Board struct {
	// The board squares, indexed squares[file][rank].
	squares [BoardSize][BoardSize]*Piece

	// Pieces taken by each side, indexed by the capturing side.
	captured [2][]*Piece

	// Derived index of each side's king. It is rebuilt by Copy and updated
	// whenever a king is placed; the grid is the source of truth.
	kings [2]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Setup places the standard chess starting position on an empty board.
func (b *Board) Setup() {
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(NewPiece(backRank[file], White, Position{file, 0}))
		b.Place(NewPiece(Pawn, White, Position{file, 1}))
		b.Place(NewPiece(Pawn, Black, Position{file, 6}))
		b.Place(NewPiece(backRank[file], Black, Position{file, 7}))
	}
}

// NewInitialBoard returns a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Setup()
	return b
}

// Get returns the piece at pos, or nil when the square is empty or off the board.
func (b *Board) Get(pos Position) *Piece {
	if !pos.Valid() {
		return nil
	}
	return b.squares[pos.File][pos.Rank]
}

// Place puts p on the square given by p.Pos, replacing any occupant.
// Placing a king updates that side's king index. Off-board positions are a no-op.
func (b *Board) Place(p *Piece) {
	if p == nil || !p.Pos.Valid() || !p.Side.Valid() {
		return
	}
	b.squares[p.Pos.File][p.Pos.Rank] = p
	if p.Kind == King {
		b.kings[p.Side] = p
	}
}

// Relocate moves the piece at from to to without any rule checks and
// returns the piece previously standing on to (nil if none). The caller
// owns rule validation and capture bookkeeping.
func (b *Board) Relocate(from, to Position) *Piece {
	p := b.Get(from)
	if p == nil || !to.Valid() {
		return nil
	}
	taken := b.squares[to.File][to.Rank]
	b.squares[from.File][from.Rank] = nil
	b.squares[to.File][to.Rank] = p
	p.Pos = to
	p.Moved = true
	return taken
}

// Capture appends p to the list of pieces taken by side.
func (b *Board) Capture(side Side, p *Piece) {
	if side.Valid() && p != nil {
		b.captured[side] = append(b.captured[side], p)
	}
}

// Captured returns the pieces taken by side, in capture order.
func (b *Board) Captured(side Side) []*Piece {
	if !side.Valid() {
		return nil
	}
	return b.captured[side]
}

// King returns the king of the given side, or nil if it is not on the board.
func (b *Board) King(side Side) *Piece {
	if !side.Valid() {
		return nil
	}
	return b.kings[side]
}

// Pieces returns every piece of side in scan order: files a to h, and
// within a file ranks 1 to 8.
func (b *Board) Pieces(side Side) []*Piece {
	var pieces []*Piece
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil && p.Side == side {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Copy creates a deep copy of the board. Every piece is duplicated and the
// king index is rebuilt from the copied grid, so the copy shares no mutable
// state with b. Copy panics if b does not hold exactly one king per side.
func (b *Board) Copy() *Board {
	nb := &Board{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil {
				cp := *p
				nb.squares[file][rank] = &cp
			}
		}
	}
	for side := range b.captured {
		for _, p := range b.captured[side] {
			cp := *p
			nb.captured[side] = append(nb.captured[side], &cp)
		}
	}
	if err := nb.reindexKings(); err != nil {
		panic(fmt.Sprintf("chess: copy of inconsistent board: %v", err))
	}
	return nb
}

// Validate checks the board invariants: every piece's stored position
// matches its square and each side has exactly one king, which the king
// index references.
func (b *Board) Validate() error {
	var count [2]int
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.squares[file][rank]
			if p == nil {
				continue
			}
			if p.Pos != (Position{file, rank}) {
				return fmt.Errorf("%v on %v records position %v", p, Position{file, rank}, p.Pos)
			}
			if p.Kind == King {
				count[p.Side]++
				if b.kings[p.Side] != p {
					return fmt.Errorf("%s king index does not reference the king on %v", p.Side, p.Pos)
				}
			}
		}
	}
	for _, side := range []Side{White, Black} {
		if count[side] != 1 {
			return fmt.Errorf("%s has %d kings; want 1", side, count[side])
		}
	}
	return nil
}

// reindexKings rebuilds the king index from the grid.
func (b *Board) reindexKings() error {
	b.kings = [2]*Piece{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.squares[file][rank]
			if p == nil || p.Kind != King {
				continue
			}
			if b.kings[p.Side] != nil {
				return fmt.Errorf("%s has more than one king", p.Side)
			}
			b.kings[p.Side] = p
		}
	}
	for _, side := range []Side{White, Black} {
		if b.kings[side] == nil {
			return fmt.Errorf("%s has no king", side)
		}
	}
	return nil
}
