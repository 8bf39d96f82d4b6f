package engine

import "github.com/lgbarn/chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can deliver mate:
// bare kings, a single minor piece against a bare king, or one bishop each
// on the same colour squares.
func HasInsufficientMaterial(b *chess.Board) bool {
	var minors [2][]*chess.Piece

	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.Pieces(side) {
			switch p.Kind {
			case chess.King:
				// Kings don't count for material
			case chess.Knight, chess.Bishop:
				minors[side] = append(minors[side], p)
			default:
				// Any pawn, rook, or queen means sufficient material
				return false
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]

	// K vs K
	if len(white) == 0 && len(black) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(white)+len(black) == 1 {
		return true
	}

	// K+B vs K+B (same colour bishops)
	if len(white) == 1 && len(black) == 1 &&
		white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop {
		return isLightSquare(white[0].Pos) == isLightSquare(black[0].Pos)
	}

	return false
}

// isLightSquare reports whether pos is a light square (h1 is light).
func isLightSquare(pos chess.Position) bool {
	return (pos.File+pos.Rank)%2 == 1
}
