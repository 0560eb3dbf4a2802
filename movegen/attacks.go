package movegen

import (
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

func rayDirection(from, to types.Square) (types.Direction, bool) {
	df := int(to.FileOf()) - int(from.FileOf())
	dr := int(to.RankOf()) - int(from.RankOf())
	switch {
	case df == 0 && dr > 0:
		return types.North, true
	case df == 0 && dr < 0:
		return types.South, true
	case dr == 0 && df > 0:
		return types.East, true
	case dr == 0 && df < 0:
		return types.West, true
	case df == dr && df > 0:
		return types.Northeast, true
	case df == dr && df < 0:
		return types.Southwest, true
	case df == -dr && df > 0:
		return types.Southeast, true
	case df == -dr && df < 0:
		return types.Northwest, true
	default:
		return 0, false
	}
}

// between returns the squares strictly between a and b, assuming they lie
// on a common rank, file or diagonal. Returns an empty bitboard otherwise.
func between(a, b types.Square) types.Bitboard {
	dir, ok := rayDirection(a, b)
	if !ok {
		return types.BbZero
	}
	var bb types.Bitboard
	for sq := a.To(dir); sq != types.SqNone && sq != b; sq = sq.To(dir) {
		bb = bb.Push(sq)
	}
	return bb
}

// attackersOfWithOcc is AttackersOf with the blocking occupancy supplied
// by the caller instead of read from pos, so a king can be excluded from
// the board before testing whether a square it might flee to is safe.
func attackersOfWithOcc(pos *position.Position, sq types.Square, attacker types.Color, occ types.Bitboard) types.Bitboard {
	pawns := pos.Pieces(types.MakePiece(types.PawnBase, attacker))
	knights := pos.Pieces(types.MakePiece(types.KnightBase, attacker))
	king := pos.Pieces(types.MakePiece(types.KingBase, attacker))
	rooksQueens := pos.Pieces(types.MakePiece(types.RookBase, attacker)) | pos.Pieces(types.MakePiece(types.QueenBase, attacker))
	bishopsQueens := pos.Pieces(types.MakePiece(types.BishopBase, attacker)) | pos.Pieces(types.MakePiece(types.QueenBase, attacker))

	return (types.PawnAttacks(attacker.Flip(), sq) & pawns) |
		(types.KnightAttacks(sq) & knights) |
		(types.KingAttacks(sq) & king) |
		(types.RookAttacks(occ, sq) & rooksQueens) |
		(types.BishopAttacks(occ, sq) & bishopsQueens)
}

// pinned returns the set of side's own pieces that are pinned against its
// king: for every enemy slider an x-ray ray reaches (through exactly one
// own blocker), that blocker is pinned.
func pinned(pos *position.Position, side types.Color) types.Bitboard {
	kingSq := pos.KingSquare(side)
	occ := pos.All()
	own := pos.Occupied(side)
	enemy := side.Flip()

	enemyRooksQueens := pos.Pieces(types.MakePiece(types.RookBase, enemy)) | pos.Pieces(types.MakePiece(types.QueenBase, enemy))
	enemyBishopsQueens := pos.Pieces(types.MakePiece(types.BishopBase, enemy)) | pos.Pieces(types.MakePiece(types.QueenBase, enemy))

	var result types.Bitboard

	pinners := types.RookXray(occ, own, kingSq) & enemyRooksQueens
	for pinners != 0 {
		sq := pinners.PopLsb()
		result |= between(kingSq, sq) & own
	}
	pinners = types.BishopXray(occ, own, kingSq) & enemyBishopsQueens
	for pinners != 0 {
		sq := pinners.PopLsb()
		result |= between(kingSq, sq) & own
	}
	return result
}
