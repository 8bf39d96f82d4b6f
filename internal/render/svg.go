package render

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-go/internal/chess"
)

// SquareSize is the edge length of one square in SVG output, in pixels.
const SquareSize = 60

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	labelStyle  = "font-family:sans-serif;font-size:12px;fill:#333333"
	pieceStyle  = "font-family:serif;font-size:44px;text-anchor:middle;dominant-baseline:central"
)

// Unicode glyphs indexed by kind, White then Black.
var glyphs = [2][7]string{
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// SVG writes b as an SVG image with rank 8 at the top and file labels
// along the bottom edge.
func SVG(w io.Writer, b *chess.Board) {
	margin := SquareSize / 3
	size := chess.BoardSize * SquareSize

	canvas := svg.New(w)
	canvas.Start(size+margin, size+margin)

	for rank := 0; rank < chess.BoardSize; rank++ {
		y := (chess.BoardSize - 1 - rank) * SquareSize
		for file := 0; file < chess.BoardSize; file++ {
			x := margin + file*SquareSize
			style := darkSquare
			if (file+rank)%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, SquareSize, SquareSize, style)

			if p := b.Get(chess.Position{File: file, Rank: rank}); p != nil {
				canvas.Text(x+SquareSize/2, y+SquareSize/2, glyphs[p.Side][p.Kind], pieceStyle)
			}
		}
		canvas.Text(margin/4, y+SquareSize/2, fmt.Sprint(rank+1), labelStyle)
	}
	for file := 0; file < chess.BoardSize; file++ {
		canvas.Text(margin+file*SquareSize+SquareSize/2, size+margin-4, string(rune(chess.FileBase+file)), labelStyle)
	}

	canvas.End()
}

// WriteSVGFile renders b into the named file, replacing it.
func WriteSVGFile(path string, b *chess.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	SVG(f, b)
	return f.Close()
}
