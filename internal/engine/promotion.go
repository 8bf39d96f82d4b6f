package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// PromotionCandidate returns a pawn of side standing on its final rank, or
// nil if there is none.
func PromotionCandidate(b *chess.Board, side chess.Side) *chess.Piece {
	for file := 0; file < chess.BoardSize; file++ {
		p := b.Get(chess.Position{File: file, Rank: finalRank(side)})
		if p != nil && p.Kind == chess.Pawn && p.Side == side {
			return p
		}
	}
	return nil
}

// finalRank returns the rank index on which a pawn of side promotes.
func finalRank(side chess.Side) int {
	if side == chess.Black {
		return 0
	}
	return chess.BoardSize - 1
}

// Promote replaces the pawn at pos with a piece of the given kind. Only a
// pawn on its final rank can be promoted, and only to a knight, bishop,
// rook or queen.
func Promote(b *chess.Board, pos chess.Position, kind chess.Kind) error {
	p := b.Get(pos)
	if p == nil || p.Kind != chess.Pawn || pos.Rank != finalRank(p.Side) {
		return fmt.Errorf("%v: %w", pos, errors.ErrNotPromotable)
	}
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
	default:
		return fmt.Errorf("promotion to %v: %w", kind, errors.ErrNotPromotable)
	}
	b.Place(&chess.Piece{Kind: kind, Side: p.Side, Pos: pos, Moved: true})
	return nil
}
