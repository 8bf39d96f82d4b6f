// Package game tracks the state of a game in progress: the board, whose
// move it is and the turn counter, plus saving and restoring that state.
package game

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Status describes the position for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "Draw"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Over reports whether the status ends the game.
func (s Status) Over() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Game is a game in progress.
type Game struct {
	Board  *chess.Board
	ToMove chess.Side
	Turn   int
}

// New creates a game in the standard starting position, White to move.
func New() *Game {
	return &Game{
		Board:  chess.NewInitialBoard(),
		ToMove: chess.White,
		Turn:   1,
	}
}

// Play executes m for the side to move and passes the turn.
//
// King moves into check are refused by the engine; other moves that leave
// the mover's king in check are refused here with ErrLeavesKingInCheck. On
// any error the game is unchanged.
func (g *Game) Play(m chess.Move) error {
	piece := g.Board.Get(m.From)
	if piece != nil && piece.Side == g.ToMove && piece.Kind != chess.King && chess.CanReach(piece, g.Board, m.To) {
		look, err := engine.Simulate(g.Board, piece, m.To)
		if err == nil && engine.InCheck(look, g.ToMove) {
			return &errors.MoveError{
				Err:   errors.ErrLeavesKingInCheck,
				Side:  g.ToMove.String(),
				Piece: piece.Kind.String(),
				Move:  m.String(),
			}
		}
	}

	return engine.ExecuteMove(g.Board, m, g.ToMove, false)
}

// PendingPromotion returns the mover's pawn that has reached its final
// rank, or nil. Call it after Play and before EndTurn.
func (g *Game) PendingPromotion() *chess.Piece {
	return engine.PromotionCandidate(g.Board, g.ToMove)
}

// Promote replaces the pawn at pos with kind.
func (g *Game) Promote(pos chess.Position, kind chess.Kind) error {
	return engine.Promote(g.Board, pos, kind)
}

// EndTurn passes the move to the other side. The turn counter advances
// after Black moves.
func (g *Game) EndTurn() {
	if g.ToMove == chess.Black {
		g.Turn++
	}
	g.ToMove = g.ToMove.Opposite()
}

// Status reports the position for the side to move.
func (g *Game) Status() Status {
	switch engine.Classify(g.Board, g.ToMove) {
	case engine.Checkmate:
		return Checkmate
	case engine.Stalemate:
		return Stalemate
	case engine.Check:
		return Check
	}
	if engine.HasInsufficientMaterial(g.Board) {
		return Draw
	}
	return InProgress
}
