package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Status classifies a side's position.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Normal"
}

// IsMate returns true if side has no move that leaves its king out of
// check. Whether that is checkmate or stalemate depends on whether side is
// currently in check; see Classify.
func IsMate(b *chess.Board, side chess.Side) bool {
	for _, piece := range b.Pieces(side) {
		for _, dest := range chess.CandidateDestinations(piece, b) {
			look, err := Simulate(b, piece, dest)
			if err != nil {
				continue
			}
			if !InCheck(look, side) {
				// found a move that escapes check, so no mate
				return false
			}
		}
	}
	return true
}

// Classify combines InCheck and IsMate for side.
func Classify(b *chess.Board, side chess.Side) Status {
	check := InCheck(b, side)
	mate := IsMate(b, side)
	switch {
	case check && mate:
		return Checkmate
	case mate:
		return Stalemate
	case check:
		return Check
	}
	return Normal
}
