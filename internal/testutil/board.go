package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
)

// NewBoard builds a board from placements such as "Ke1" or "qd8". An
// uppercase letter is a White piece and a lowercase letter a Black one.
// A trailing "*" marks the piece as having moved ("Pe4*").
// It calls t.Fatal on malformed placements.
func NewBoard(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, pl := range placements {
		b.Place(MustPiece(t, pl))
	}
	return b
}

// MustPiece parses a single placement; see NewBoard.
func MustPiece(t testing.TB, placement string) *chess.Piece {
	t.Helper()
	moved := strings.HasSuffix(placement, "*")
	placement = strings.TrimSuffix(placement, "*")
	if len(placement) != 3 {
		t.Fatalf("placement %q: want letter and square", placement)
	}
	kind := chess.KindFromLetter(placement[0])
	if kind == chess.NoKind {
		t.Fatalf("placement %q: unknown piece letter", placement)
	}
	side := chess.White
	if placement[0] >= 'a' && placement[0] <= 'z' {
		side = chess.Black
	}
	pos := MustPosition(t, placement[1:])
	return &chess.Piece{Kind: kind, Side: side, Pos: pos, Moved: moved}
}

// MustPosition parses an algebraic square, calling t.Fatal on error.
func MustPosition(t testing.TB, square string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(square)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", square, err)
	}
	return pos
}

// MustMove parses long algebraic move text, calling t.Fatal on error.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// Layout returns the board's pieces as placement strings in scan order,
// White first. It is the inverse of NewBoard and is convenient for diffs.
func Layout(b *chess.Board) []string {
	var out []string
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.Pieces(side) {
			s := string(p.Letter()) + p.Pos.String()
			if p.Moved {
				s += "*"
			}
			out = append(out, s)
		}
	}
	return out
}
