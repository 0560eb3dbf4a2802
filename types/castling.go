package types

import "strings"

// CastlingRights packs the four castling permissions into 4 bits, indexable
// directly by zobrist's 16-entry castling-key table.
//
//	CastlingNone     CastlingRights = 0000
//	CastlingBQ                     = 0001
//	CastlingBK                     = 0010
//	CastlingWQ                     = 0100
//	CastlingWK                     = 1000
//
// A bit may only be set while the corresponding king and rook have never
// moved and never been captured - apply_move clears bits as that stops
// being true, never sets them.
type CastlingRights uint8

const (
	CastlingBQ CastlingRights = 1 << iota
	CastlingBK
	CastlingWQ
	CastlingWK

	CastlingNone  CastlingRights = 0
	CastlingWhite                = CastlingWK | CastlingWQ
	CastlingBlack                = CastlingBK | CastlingBQ
	CastlingAny                  = CastlingWhite | CastlingBlack

	CastlingRightsLength int = 16
)

// Has reports whether every bit set in rhs is also set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given right(s) from cr.
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the given right(s) on cr.
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// KingsideFor returns the kingside right for c.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return CastlingWK
	}
	return CastlingBK
}

// QueensideFor returns the queenside right for c.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return CastlingWQ
	}
	return CastlingBQ
}

// ForColor returns the subset of cr belonging to c.
func ForColor(cr CastlingRights, c Color) CastlingRights {
	if c == White {
		return cr & CastlingWhite
	}
	return cr & CastlingBlack
}

// String renders cr as a FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWK) {
		sb.WriteByte('K')
	}
	if cr.Has(CastlingWQ) {
		sb.WriteByte('Q')
	}
	if cr.Has(CastlingBK) {
		sb.WriteByte('k')
	}
	if cr.Has(CastlingBQ) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// CastlingFromChar returns the right for a FEN castling-field character, or
// CastlingNone if c isn't one of "KQkq".
func CastlingFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return CastlingWK
	case 'Q':
		return CastlingWQ
	case 'k':
		return CastlingBK
	case 'q':
		return CastlingBQ
	default:
		return CastlingNone
	}
}
