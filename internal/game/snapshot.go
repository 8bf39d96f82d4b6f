package game

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// PieceRecord is the stored form of a piece.
type PieceRecord struct {
	Kind   string `json:"kind"`
	Side   string `json:"side"`
	Square string `json:"square,omitempty"` // empty for captured pieces
	Moved  bool   `json:"moved,omitempty"`
}

// Snapshot is the stored form of a game.
type Snapshot struct {
	ToMove string        `json:"toMove"`
	Turn   int           `json:"turn"`
	Pieces []PieceRecord `json:"pieces"`

	// Captured pieces keyed by the capturing side.
	Captured map[string][]PieceRecord `json:"captured,omitempty"`
}

// Snapshot captures the game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ToMove: g.ToMove.String(),
		Turn:   g.Turn,
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range g.Board.Pieces(side) {
			s.Pieces = append(s.Pieces, recordOf(p, true))
		}
		for _, p := range g.Board.Captured(side) {
			if s.Captured == nil {
				s.Captured = make(map[string][]PieceRecord)
			}
			s.Captured[side.String()] = append(s.Captured[side.String()], recordOf(p, false))
		}
	}
	return s
}

// Restore rebuilds a game from s. The resulting board must satisfy the
// board invariants (one king per side, one piece per square).
func (s Snapshot) Restore() (*Game, error) {
	toMove, err := parseSide(s.ToMove)
	if err != nil {
		return nil, err
	}
	if s.Turn < 1 {
		return nil, fmt.Errorf("turn %d: %w", s.Turn, errors.ErrInvalidSnapshot)
	}

	b := chess.NewBoard()
	for _, r := range s.Pieces {
		p, err := r.piece()
		if err != nil {
			return nil, err
		}
		pos, err := chess.ParsePosition(r.Square)
		if err != nil {
			return nil, fmt.Errorf("piece %+v: %v: %w", r, err, errors.ErrInvalidSnapshot)
		}
		if b.Get(pos) != nil {
			return nil, fmt.Errorf("square %s occupied twice: %w", r.Square, errors.ErrInvalidSnapshot)
		}
		p.Pos = pos
		b.Place(p)
	}

	for sideName, records := range s.Captured {
		side, err := parseSide(sideName)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			p, err := r.piece()
			if err != nil {
				return nil, err
			}
			p.Pos = chess.NoPosition
			b.Capture(side, p)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidSnapshot)
	}
	return &Game{Board: b, ToMove: toMove, Turn: s.Turn}, nil
}

// Encode writes the game as indented JSON.
func Encode(w io.Writer, g *Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.Snapshot())
}

// Decode reads a game written by Encode.
func Decode(r io.Reader) (*Game, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidSnapshot)
	}
	return s.Restore()
}

func recordOf(p *chess.Piece, onBoard bool) PieceRecord {
	r := PieceRecord{
		Kind:  p.Kind.String(),
		Side:  p.Side.String(),
		Moved: p.Moved,
	}
	if onBoard {
		r.Square = p.Pos.String()
	}
	return r
}

func (r PieceRecord) piece() (*chess.Piece, error) {
	side, err := parseSide(r.Side)
	if err != nil {
		return nil, err
	}
	for k := chess.Pawn; k <= chess.King; k++ {
		if k.String() == r.Kind {
			return &chess.Piece{Kind: k, Side: side, Moved: r.Moved}, nil
		}
	}
	return nil, fmt.Errorf("piece kind %q: %w", r.Kind, errors.ErrInvalidSnapshot)
}

func parseSide(s string) (chess.Side, error) {
	switch s {
	case chess.White.String():
		return chess.White, nil
	case chess.Black.String():
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("side %q: %w", s, errors.ErrInvalidSnapshot)
}
