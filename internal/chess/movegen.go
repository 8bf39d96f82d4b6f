package chess

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// CandidateDestinations returns the squares p could move to on b, ignoring
// whether the move would leave its own king in check. The result depends
// only on board content and the piece's moved flag.
func CandidateDestinations(p *Piece, b *Board) []Position {
	if p == nil || !p.Pos.Valid() {
		return nil
	}

	switch p.Kind {
	case Pawn:
		return pawnDestinations(p, b)
	case Knight:
		return stepDestinations(p, b, knightOffsets)
	case King:
		return stepDestinations(p, b, kingOffsets)
	case Bishop:
		return slideDestinations(p, b, diagonalDirs)
	case Rook:
		return slideDestinations(p, b, straightDirs)
	case Queen:
		return slideDestinations(p, b, append(append([][2]int{}, diagonalDirs...), straightDirs...))
	}
	return nil
}

// CanReach reports whether to is among p's candidate destinations.
func CanReach(p *Piece, b *Board, to Position) bool {
	for _, dest := range CandidateDestinations(p, b) {
		if dest == to {
			return true
		}
	}
	return false
}

// pawnDestinations handles pushes and diagonal captures. There is no en passant.
func pawnDestinations(p *Piece, b *Board) []Position {
	var dests []Position
	dir := p.Side.Forward()

	one := p.Pos.Offset(0, dir)
	if one.Valid() && b.Get(one) == nil {
		dests = append(dests, one)

		// Double push from the starting rank
		startRank := 1
		if p.Side == Black {
			startRank = BoardSize - 2
		}
		two := p.Pos.Offset(0, 2*dir)
		if !p.Moved && p.Pos.Rank == startRank && b.Get(two) == nil {
			dests = append(dests, two)
		}
	}

	for _, df := range []int{-1, 1} {
		diag := p.Pos.Offset(df, dir)
		if target := b.Get(diag); target != nil && target.Side != p.Side {
			dests = append(dests, diag)
		}
	}
	return dests
}

// stepDestinations handles single-step pieces (knight, king).
func stepDestinations(p *Piece, b *Board, offsets [][2]int) []Position {
	var dests []Position
	for _, off := range offsets {
		to := p.Pos.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if target := b.Get(to); target == nil || target.Side != p.Side {
			dests = append(dests, to)
		}
	}
	return dests
}

// slideDestinations handles sliding pieces (bishop, rook, queen).
func slideDestinations(p *Piece, b *Board, dirs [][2]int) []Position {
	var dests []Position
	for _, dir := range dirs {
		to := p.Pos.Offset(dir[0], dir[1])
		for to.Valid() {
			target := b.Get(to)
			if target != nil {
				if target.Side != p.Side {
					dests = append(dests, to)
				}
				break // Blocked
			}
			dests = append(dests, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return dests
}
