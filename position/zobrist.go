package position

import "github.com/georgib0y/chesscore/types"

// zobristKeys holds the random keys folded into a Position's hash: one per
// piece-square slot, one per castling-rights value, one per en-passant
// file, and one for side-to-move. Filled once at package init() by a
// fixed-seed PRNG, then never mutated - every Position shares this table.
type zobristKeys struct {
	pieces     [types.PieceLength][types.SqLength]uint64
	castling   [types.CastlingRightsLength]uint64
	epFile     [8]uint64
	sideToMove uint64
}

var zobrist zobristKeys

// zobristSeed is fixed so that a hash computed on one run matches a hash
// computed on any other run of the same position - nothing here needs to
// be unpredictable, only collision-resistant and reproducible.
const zobristSeed uint64 = 1070372

func initZobrist() {
	r := types.NewPrnG(zobristSeed)
	for pc := types.WhitePawn; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			zobrist.pieces[pc][sq] = r.Rand64()
		}
	}
	for cr := 0; cr < types.CastlingRightsLength; cr++ {
		zobrist.castling[cr] = r.Rand64()
	}
	for f := types.FileA; f <= types.FileH; f++ {
		zobrist.epFile[f] = r.Rand64()
	}
	zobrist.sideToMove = r.Rand64()
}

func init() {
	initZobrist()
}

// hashPosition computes a Position's Zobrist key from scratch: every
// occupied square's piece-square key, the side-to-move key iff black is to
// move, the castling-rights key, and the ep-file key (absent contributes
// zero). Used both for a freshly parsed Position and as the correctness
// gate apply_move's incremental update is checked against.
func hashPosition(p *Position) uint64 {
	var h uint64
	for pc := types.WhitePawn; pc < types.PieceLength; pc++ {
		bb := p.pieces[pc]
		for bb != 0 {
			sq := bb.PopLsb()
			h ^= zobrist.pieces[pc][sq]
		}
	}
	if p.sideToMove == types.Black {
		h ^= zobrist.sideToMove
	}
	h ^= zobrist.castling[p.castling]
	if p.ep != types.SqNone {
		h ^= zobrist.epFile[p.ep.FileOf()]
	}
	return h
}
