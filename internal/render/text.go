// Package render draws boards as text or SVG.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
)

const (
	fileLabels = "     a   b   c   d   e   f   g   h"
	divider    = "   +---+---+---+---+---+---+---+---+"
)

// Text writes b as an ASCII grid, rank 8 at the top. White pieces are
// uppercase letters and Black pieces lowercase.
func Text(w io.Writer, b *chess.Board) error {
	var sb strings.Builder
	sb.WriteString("\n" + fileLabels + "\n" + divider + "\n")

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, " %d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			if p := b.Get(chess.Position{File: file, Rank: rank}); p != nil {
				fmt.Fprintf(&sb, "| %c ", p.Letter())
			} else {
				sb.WriteString("|   ")
			}
		}
		fmt.Fprintf(&sb, "| %d\n%s\n", rank+1, divider)
	}

	sb.WriteString(fileLabels + "\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Captured returns a one-line summary of the pieces side has taken, e.g.
// "White has captured: p n". It returns "" when there are none.
func Captured(b *chess.Board, side chess.Side) string {
	taken := b.Captured(side)
	if len(taken) == 0 {
		return ""
	}
	letters := make([]string, len(taken))
	for i, p := range taken {
		letters[i] = string(p.Letter())
	}
	return side.String() + " has captured: " + strings.Join(letters, " ")
}
