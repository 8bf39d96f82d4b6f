package chess

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/errors"
)

// ParsePosition converts an algebraic square such as "c3" into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrMalformedInput)
	}
	p := Position{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !p.Valid() {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrMalformedInput)
	}
	return p, nil
}

// String returns the algebraic form of p, or "-" when p is off the board.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// ParseMove converts long algebraic text such as "e2e4" into a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{From: NoPosition, To: NoPosition},
			fmt.Errorf("move %q: %w", s, errors.ErrMalformedInput)
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{From: NoPosition, To: NoPosition}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{From: NoPosition, To: NoPosition}, err
	}
	return Move{From: from, To: to}, nil
}

// IsMoveText reports whether s has the shape of a move ("e2e4").
func IsMoveText(s string) bool {
	_, err := ParseMove(s)
	return err == nil
}

// String returns the long algebraic form of m, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
