package types

// Piece is one of the twelve piece kinds, paired (white, black), plus the
// NoPiece sentinel. The pairing is load-bearing: for any piece p, p^1 is
// its color mirror, p&1 is the color bit (0 white, 1 black), and a "base"
// constant (the even index of a pair) plus a Color yields the piece of that
// color - base+color.
type Piece int8

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteRook
	BlackRook
	WhiteBishop
	BlackBishop
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing
	NoPiece // 12
	PieceLength = 12
)

// Base piece-type indices - the white (even) member of each pair. Used as
// base+color to select the correctly-colored piece.
const (
	PawnBase   Piece = WhitePawn
	KnightBase Piece = WhiteKnight
	RookBase   Piece = WhiteRook
	BishopBase Piece = WhiteBishop
	QueenBase  Piece = WhiteQueen
	KingBase   Piece = WhiteKing
)

var pieceChars = [...]byte{'P', 'p', 'N', 'n', 'R', 'r', 'B', 'b', 'Q', 'q', 'K', 'k', '-'}

// MakePiece returns the piece of the given base kind (an even Base
// constant) and color.
func MakePiece(base Piece, c Color) Piece {
	return base + Piece(c)
}

// ColorOf returns the color of p. Undefined for NoPiece.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// Mirror returns the same piece kind of the opposite color.
func (p Piece) Mirror() Piece {
	return p ^ 1
}

// Base returns the white (even) member of p's pair - its color-independent
// piece kind.
func (p Piece) Base() Piece {
	return p &^ 1
}

// IsValid reports whether p is one of the 12 real piece kinds.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < NoPiece
}

// IsSlider reports whether p is a bishop, rook or queen.
func (p Piece) IsSlider() bool {
	b := p.Base()
	return b == BishopBase || b == RookBase || b == QueenBase
}

// String returns the single FEN character for p ('P'.."k"), or "-" for NoPiece.
func (p Piece) String() string {
	if p < WhitePawn || p > NoPiece {
		return "-"
	}
	return string(pieceChars[p])
}

// PieceFromChar returns the piece for a FEN character, or NoPiece if c is
// not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	for i, pc := range pieceChars {
		if pc == c {
			return Piece(i)
		}
	}
	return NoPiece
}

// Value is a centipawn score, used for material, piece-square, and search.
type Value int32

// Common sentinel and bound values for Value.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 30000
	ValueNone  Value = 30001
	ValueCheckmate Value = 29000
)
