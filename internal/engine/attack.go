package engine

import "github.com/lgbarn/chess-go/internal/chess"

// IsAttacked returns true if any piece opposing targetSide has target among
// its candidate destinations on b.
func IsAttacked(b *chess.Board, target chess.Position, targetSide chess.Side) bool {
	for _, p := range b.Pieces(targetSide.Opposite()) {
		if chess.CanReach(p, b, target) {
			return true
		}
	}
	return false
}

// InCheck returns true if the given side's king is attacked.
func InCheck(b *chess.Board, side chess.Side) bool {
	king := b.King(side)
	if king == nil {
		return false // No king found
	}
	return IsAttacked(b, king.Pos, side)
}
