// Package chess provides core chess types: sides, pieces, positions, the
// board, and per-piece move generation.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	Black Side = iota
	White
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Valid reports whether s is White or Black.
func (s Side) Valid() bool {
	return s == White || s == Black
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// KingValue is the scoring magnitude of a king. It is never summed into
// material counts.
const KingValue = 1000

var kindValues = [...]int{0, 1, 3, 3, 5, 9, KingValue}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the point value of a kind.
func (k Kind) Value() int {
	if k >= 0 && int(k) < len(kindValues) {
		return kindValues[k]
	}
	return 0
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Position addresses a square by zero-based file (a=0) and rank (1=0).
type Position struct {
	File int
	Rank int
}

// NoPosition is the off-board sentinel. It is never stored on a board.
var NoPosition = Position{File: -1, Rank: -1}

// Valid reports whether p lies on the board.
func (p Position) Valid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Offset returns the position shifted by the given deltas. The result may
// be off the board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// Piece is a chess piece on a board.
type Piece struct {
	Kind  Kind
	Side  Side
	Pos   Position
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, side Side, pos Position) *Piece {
	return &Piece{Kind: kind, Side: side, Pos: pos}
}

// Value returns the point value of the piece.
func (p *Piece) Value() int {
	return p.Kind.Value()
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Side == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight".
func (p *Piece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

// Move is a source-destination square pair.
type Move struct {
	From Position
	To   Position
}

// Valid reports whether both squares lie on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}
