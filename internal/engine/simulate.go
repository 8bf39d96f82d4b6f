package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Simulate returns an independent copy of b with piece moved to dest. The
// move is executed in simulation mode, so a king may be moved into check;
// the caller inspects the result. b itself is never modified.
func Simulate(b *chess.Board, piece *chess.Piece, dest chess.Position) (*chess.Board, error) {
	look := b.Copy()
	if err := ExecuteMove(look, chess.Move{From: piece.Pos, To: dest}, piece.Side, true); err != nil {
		return nil, err
	}
	return look, nil
}
