package types

import (
	"strings"
)

// MoveKind identifies what apply_move must do beyond the plain from/to
// relocation - captures, castling, promotions and en-passant each need
// their own bookkeeping.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Double
	Cap
	WKingside
	WQueenside
	BKingside
	BQueenside
	Promo
	NPromoCap
	RPromoCap
	BPromoCap
	QPromoCap
	Ep

	MoveKindLength
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Double:
		return "double"
	case Cap:
		return "cap"
	case WKingside:
		return "O-O"
	case WQueenside:
		return "O-O-O"
	case BKingside:
		return "O-O"
	case BQueenside:
		return "O-O-O"
	case Promo:
		return "promo"
	case NPromoCap:
		return "n-promo-cap"
	case RPromoCap:
		return "r-promo-cap"
	case BPromoCap:
		return "b-promo-cap"
	case QPromoCap:
		return "q-promo-cap"
	case Ep:
		return "ep"
	default:
		return "?"
	}
}

// IsCapture reports whether a move of this kind removes an enemy piece.
func (k MoveKind) IsCapture() bool {
	switch k {
	case Cap, Ep, NPromoCap, RPromoCap, BPromoCap, QPromoCap:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether a move of this kind turns a pawn into
// something else.
func (k MoveKind) IsPromotion() bool {
	switch k {
	case Promo, NPromoCap, RPromoCap, BPromoCap, QPromoCap:
		return true
	default:
		return false
	}
}

// PromotionBase returns the colorless base piece a cap-promo kind promotes
// to (KnightBase, RookBase, BishopBase or QueenBase). Only meaningful when
// k.IsPromotion() and k is one of the *PromoCap kinds - plain Promo carries
// its promotion piece in the move's extra field instead, since any of the
// four pieces is possible there too.
func (k MoveKind) PromotionBase() Piece {
	switch k {
	case NPromoCap:
		return KnightBase
	case RPromoCap:
		return RookBase
	case BPromoCap:
		return BishopBase
	case QPromoCap:
		return QueenBase
	default:
		return NoPiece
	}
}

// Move packs from, to, the moving piece, a kind-dependent "extra" piece
// (captured piece for captures, promotion piece for promotions, unused
// otherwise) and the move kind into a single integer. MoveNone (all zero
// bits, i.e. from=to=SqA1, kind=Quiet, piece=WhitePawn) is never produced
// by the move generator since from != to always holds for a real move, so
// it's safe to use as a sentinel.
type Move uint32

// MoveNone is the null-move sentinel returned where no move applies.
const MoveNone Move = 0

const (
	toShift    = 0
	fromShift  = 6
	pieceShift = 12
	extraShift = 16
	kindShift  = 20

	sqFieldMask    Move = 0x3F
	pieceFieldMask Move = 0xF
)

// NewMove packs from, to, the moving piece, the kind-dependent extra piece
// and the move kind into a Move.
func NewMove(from, to Square, piece, extra Piece, kind MoveKind) Move {
	return Move(to)&sqFieldMask |
		(Move(from)&sqFieldMask)<<fromShift |
		(Move(piece)&pieceFieldMask)<<pieceShift |
		(Move(extra)&pieceFieldMask)<<extraShift |
		Move(kind)<<kindShift
}

// To returns the move's destination square.
func (m Move) To() Square { return Square(m & sqFieldMask) }

// From returns the move's origin square.
func (m Move) From() Square { return Square((m >> fromShift) & sqFieldMask) }

// Piece returns the piece making the move.
func (m Move) Piece() Piece { return Piece((m >> pieceShift) & pieceFieldMask) }

// Extra returns the move's kind-dependent extra piece: the captured piece
// for captures, the promotion piece for plain (non-capturing) promotions,
// NoPiece otherwise.
func (m Move) Extra() Piece { return Piece((m >> extraShift) & pieceFieldMask) }

// Kind returns the move's MoveKind.
func (m Move) Kind() MoveKind { return MoveKind(m >> kindShift) }

// IsCapture reports whether m removes an enemy piece.
func (m Move) IsCapture() bool { return m.Kind().IsCapture() }

// IsPromotion reports whether m turns a pawn into something else.
func (m Move) IsPromotion() bool { return m.Kind().IsPromotion() }

// IsCastle reports whether m is one of the four castling kinds.
func (m Move) IsCastle() bool {
	switch m.Kind() {
	case WKingside, WQueenside, BKingside, BQueenside:
		return true
	default:
		return false
	}
}

// PromotionPiece returns the piece a promotion move turns the pawn into,
// colored for side c. Undefined unless m.IsPromotion().
func (m Move) PromotionPiece(c Color) Piece {
	if base := m.Kind().PromotionBase(); base != NoPiece {
		return MakePiece(base, c)
	}
	return m.Extra()
}

// IsValid reports whether m is non-null and carries valid squares/piece.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Piece().IsValid()
}

// UCI returns the move in UCI long-algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionPiece(m.Piece().ColorOf()).String()))
	}
	return sb.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return m.UCI()
}
