// Package ai selects moves for a computer player using a single-ply
// look-ahead heuristic.
package ai

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Config controls a Scorer.
type Config struct {
	// Trace receives per-move scores and the best-move set. Nil disables it.
	Trace io.Writer

	// Rand breaks ties between equally scored moves. Nil uses a
	// time-seeded source.
	Rand *rand.Rand
}

// Scorer scores and chooses moves for one side.
type Scorer struct {
	side  chess.Side
	trace io.Writer
	rng   *rand.Rand
}

// NewScorer creates a scorer playing side.
func NewScorer(side chess.Side, cfg Config) *Scorer {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // G404: move choice is not security sensitive
	}
	return &Scorer{side: side, trace: cfg.Trace, rng: rng}
}

// Side returns the side the scorer plays.
func (s *Scorer) Side() chess.Side {
	return s.side
}

// Score evaluates moving piece to dest on b with a one-ply look-ahead.
//
// A piece under attack earns its value for moving; a capture earns the
// captured value. The look-ahead board then overrides or adjusts that sum:
// leaving the own king in check scores -KingValue; mating the opponent adds
// KingValue; a safe check adds KingValue/2 while an unsafe one becomes the
// trade value; stalemating the opponent scores just above self-check; and
// landing on an attacked square becomes the trade value, or -value if the
// piece was attacked before the move too. An aimless king move that scores
// zero is marked down to -1.
func (s *Scorer) Score(b *chess.Board, piece *chess.Piece, dest chess.Position) (int, error) {
	score := 0
	side := piece.Side
	opponent := side.Opposite()

	attackedBefore := engine.IsAttacked(b, piece.Pos, side)
	if attackedBefore {
		score += piece.Value()
	}

	captureValue := 0
	if target := b.Get(dest); target != nil && target.Side != side {
		captureValue = target.Value()
		score += captureValue
	}

	look, err := engine.Simulate(b, piece, dest)
	if err != nil {
		return 0, err
	}

	switch {
	case engine.InCheck(look, side):
		score = -chess.KingValue
	case engine.InCheck(look, opponent):
		switch {
		case engine.IsMate(look, opponent):
			score += chess.KingValue
		case engine.IsAttacked(look, dest, side):
			score = captureValue - piece.Value()
		default:
			score += chess.KingValue / 2
		}
	case engine.IsMate(look, opponent):
		// Opponent not in check but without a move: stalemate.
		score = -chess.KingValue + 1
	case engine.IsAttacked(look, dest, side):
		if attackedBefore {
			score = -piece.Value()
		} else {
			score = captureValue - piece.Value()
		}
	}

	if piece.Kind == chess.King && score == 0 {
		score = -1
	}
	return score, nil
}

// Best scores every candidate move of the scorer's side and returns the
// highest score together with all moves achieving it, in board scan order.
// It returns errors.ErrNoMoves when the side has no candidate move.
func (s *Scorer) Best(b *chess.Board) ([]chess.Move, int, error) {
	var best []chess.Move
	bestScore := 0

	for _, piece := range b.Pieces(s.side) {
		s.tracef("%c%v", piece.Letter(), piece.Pos)
		for _, dest := range chess.CandidateDestinations(piece, b) {
			score, err := s.Score(b, piece, dest)
			if err != nil {
				continue
			}
			s.tracef(" %v[%d]", dest, score)

			switch {
			case best == nil || score > bestScore:
				best = []chess.Move{{From: piece.Pos, To: dest}}
				bestScore = score
			case score == bestScore:
				best = append(best, chess.Move{From: piece.Pos, To: dest})
			}
		}
		s.tracef("\n")
	}

	if best == nil {
		return nil, 0, fmt.Errorf("%s: %w", s.side, errors.ErrNoMoves)
	}
	s.tracef("best_moves=%v score=%d\n", best, bestScore)
	return best, bestScore, nil
}

// Choose picks uniformly at random among the best-scoring moves.
func (s *Scorer) Choose(b *chess.Board) (chess.Move, error) {
	best, _, err := s.Best(b)
	if err != nil {
		return chess.Move{From: chess.NoPosition, To: chess.NoPosition}, err
	}
	return best[s.rng.Intn(len(best))], nil
}

// Promote always chooses a queen.
func (s *Scorer) Promote(*chess.Piece) chess.Kind {
	return chess.Queen
}

func (s *Scorer) tracef(format string, args ...interface{}) {
	if s.trace != nil {
		fmt.Fprintf(s.trace, format, args...)
	}
}
