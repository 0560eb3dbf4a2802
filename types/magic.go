package types

// Magic bitboards for rook and bishop attack lookup: precomputed mask +
// multiplier pairs such that ((blockers & mask) * magic) >> shift is a
// collision-free index into a per-square attack table. See
// https://www.chessprogramming.org/Magic_Bitboards - this implementation
// follows the same "fancy" approach and Carry-Rippler subset enumeration
// Stockfish uses, adapted to this package's Piece/Square/Bitboard types.

// Magic holds one square's precomputed attack lookup.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Shift   uint
	Attacks []Bitboard
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	return uint(occ >> m.Shift)
}

var (
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
)

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// slidingAttack walks each direction from sq until it runs off the board or
// hits an occupied square (inclusive of that blocker). Only used to build
// the precomputed tables, never during search.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = attack.Push(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// magicSeeds are per-rank seeds for the magic search PRNG, following the
// teacher's (Stockfish-derived) choice of seeds that converge quickly.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func dirsFor(kind Piece) [4]Direction {
	if kind == RookBase {
		return rookDirs
	}
	return bishopDirs
}

// initMagics computes masks, magic multipliers, and attack tables for every
// square for the given slider kind (RookBase or BishopBase). Magics are
// found by repeated trial against a fixed-seed PRNG, so a given build
// always derives the same tables - there's nothing to ship or read back,
// and nothing non-deterministic about the result.
func initMagics(kind Piece, magics *[SqLength]Magic) {
	dirs := dirsFor(kind)

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ rankBb(sq.RankOf())) | ((FileABb | FileHBb) &^ fileBb(sq.FileOf()))
		m := &magics[sq]
		m.Mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		size := 0
		b := Bitboard(0)
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		m.Attacks = make([]Bitboard, size)
		rng := NewPrnG(magicSeeds[sq.RankOf()])

		for i := 0; i < size; {
			for {
				m.Magic = Bitboard(rng.SparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() >= 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// AttacksBb returns the attack set of a rook, bishop or queen (kind must be
// RookBase, BishopBase or QueenBase) standing on sq given full-board
// occupancy occ. Knight and king use KnightAttacks/KingAttacks instead.
func AttacksBb(kind Piece, sq Square, occ Bitboard) Bitboard {
	switch kind {
	case RookBase:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occ)]
	case BishopBase:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occ)]
	case QueenBase:
		mr := &rookMagics[sq]
		mb := &bishopMagics[sq]
		return mr.Attacks[mr.index(occ)] | mb.Attacks[mb.index(occ)]
	default:
		return BbZero
	}
}

// RookAttacks returns the rook attack set from sq given occupancy occ.
func RookAttacks(occ Bitboard, sq Square) Bitboard { return AttacksBb(RookBase, sq, occ) }

// BishopAttacks returns the bishop attack set from sq given occupancy occ.
func BishopAttacks(occ Bitboard, sq Square) Bitboard { return AttacksBb(BishopBase, sq, occ) }

// QueenAttacks returns the queen attack set from sq given occupancy occ.
func QueenAttacks(occ Bitboard, sq Square) Bitboard { return AttacksBb(QueenBase, sq, occ) }

// RookXray returns the squares "behind" the first own-color blocker on each
// rook ray from sq - attacks recomputed with that blocker removed, XOR'd
// with the normal attack set. Used for pin detection.
func RookXray(occ, ownOcc Bitboard, sq Square) Bitboard {
	attacks := RookAttacks(occ, sq)
	blockers := attacks & ownOcc
	return attacks ^ RookAttacks(occ^blockers, sq)
}

// BishopXray is RookXray's bishop counterpart.
func BishopXray(occ, ownOcc Bitboard, sq Square) Bitboard {
	attacks := BishopAttacks(occ, sq)
	blockers := attacks & ownOcc
	return attacks ^ BishopAttacks(occ^blockers, sq)
}
