package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-go/internal/ai"
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/game"
)

// player supplies input for one side.
type player interface {
	// Input returns the next move or command for the side to move.
	Input(g *game.Game) (string, error)

	// Promote chooses the kind a pawn on its final rank becomes.
	Promote(p *chess.Piece) (chess.Kind, error)
}

// human reads moves and commands from the session input.
type human struct {
	side chess.Side
	in   *prompter
}

func (h *human) Input(g *game.Game) (string, error) {
	return h.in.ask(fmt.Sprintf("%s (turn %d): ", h.side, g.Turn))
}

func (h *human) Promote(p *chess.Piece) (chess.Kind, error) {
	for {
		answer, err := h.in.ask(fmt.Sprintf("Promote pawn on %s to (q, r, b, n): ", p.Pos))
		if err != nil {
			return chess.NoKind, err
		}
		if len(answer) == 1 {
			switch k := chess.KindFromLetter(answer[0]); k {
			case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
				return k, nil
			}
		}
		h.in.say("Invalid choice. Enter q, r, b or n.")
	}
}

// computer picks moves with the one-ply scorer.
type computer struct {
	scorer *ai.Scorer
	out    io.Writer
}

func (c *computer) Input(g *game.Game) (string, error) {
	m, err := c.scorer.Choose(g.Board)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(c.out, "%s's move: %s\n", c.scorer.Side(), m)
	return m.String(), nil
}

func (c *computer) Promote(p *chess.Piece) (chess.Kind, error) {
	return c.scorer.Promote(p), nil
}
