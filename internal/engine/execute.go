// Package engine provides move execution, attack and check detection, and
// mate detection on top of the chess board model.
package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// ExecuteMove performs m for side on b if it is legal.
//
// Preconditions are checked in order and the first failure is returned:
// malformed move or side, empty source, wrong owner, destination not among
// the piece's candidates, and (outside simulation) a king moving into
// check. On failure b is unchanged. In simulation mode the king-into-check
// test is skipped; callers read check status off the resulting board.
func ExecuteMove(b *chess.Board, m chess.Move, side chess.Side, simulation bool) error {
	if !m.Valid() || !side.Valid() {
		return moveError(errors.ErrMalformedInput, side, m, nil)
	}

	piece := b.Get(m.From)
	if piece == nil {
		return moveError(errors.ErrNoPieceAtSource, side, m, nil)
	}
	if piece.Side != side {
		return moveError(errors.ErrWrongOwner, side, m, piece)
	}
	if !chess.CanReach(piece, b, m.To) {
		return moveError(errors.ErrIllegalDestination, side, m, piece)
	}

	// A king is never taken off the board.
	target := b.Get(m.To)
	if target != nil && target.Kind == chess.King {
		return moveError(errors.ErrIllegalDestination, side, m, piece)
	}

	if piece.Kind == chess.King && !simulation {
		look, err := Simulate(b, piece, m.To)
		if err != nil {
			return err
		}
		if InCheck(look, side) {
			return moveError(errors.ErrSelfCheck, side, m, piece)
		}
	}

	if taken := b.Relocate(m.From, m.To); taken != nil {
		b.Capture(side, taken)
	}
	return nil
}

// moveError wraps a rejection reason with the move context.
func moveError(err error, side chess.Side, m chess.Move, piece *chess.Piece) error {
	me := &errors.MoveError{Err: err}
	if side.Valid() {
		me.Side = side.String()
	}
	if m.Valid() {
		me.Move = m.String()
	}
	if piece != nil {
		me.Piece = piece.Kind.String()
	}
	return me
}
