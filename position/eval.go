package position

import (
	"github.com/georgib0y/chesscore/config"
	"github.com/georgib0y/chesscore/types"
)

// Material values in centipawns, indexed by a piece's color-independent
// base kind.
var materialValue = [types.PieceLength]types.Value{
	types.WhitePawn:   100,
	types.WhiteKnight: 325,
	types.WhiteRook:   500,
	types.WhiteBishop: 325,
	types.WhiteQueen:  1000,
	types.WhiteKing:   20000,
}

// materialSigned returns p's material value, negated for black so it can
// be folded directly into a white-positive accumulator.
func materialSigned(p types.Piece) types.Value {
	v := materialValue[p.Base()]
	if p.ColorOf() == types.Black {
		return -v
	}
	return v
}

// Piece-square tables, white-oriented literal layout (rank 8 first, as
// conventionally printed) - white's value for sq is table[sq^56] (rank
// flipped, file kept); black's table is the same literal array read at sq
// directly and negated, i.e. white's table flipped vertically and negated.
var (
	pawnMid = [64]types.Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -30, -30, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEnd = [64]types.Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		90, 90, 90, 90, 90, 90, 90, 90,
		40, 50, 50, 60, 60, 50, 50, 40,
		20, 30, 30, 40, 40, 30, 30, 20,
		10, 10, 20, 20, 20, 10, 10, 10,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightMid = [64]types.Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -25, -20, -30, -30, -20, -25, -50,
	}
	knightEnd = [64]types.Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -20, -30, -30, -20, -40, -50,
	}
	bishopMid = [64]types.Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -40, -10, -10, -40, -10, -20,
	}
	bishopEnd = [64]types.Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookMid = [64]types.Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-15, -10, 15, 15, 15, 15, -10, -15,
	}
	rookEnd = [64]types.Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenMid = [64]types.Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	queenEnd = [64]types.Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMid = [64]types.Value{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -30, -30, -30, -20, -10,
		0, 0, -20, -20, -20, -20, 0, 0,
		20, 50, 0, -20, -20, 0, 50, 20,
	}
	kingEnd = [64]types.Value{
		-50, -30, -30, -20, -20, -30, -30, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

var pstMidTable [types.PieceLength][64]types.Value
var pstEndTable [types.PieceLength][64]types.Value

func buildPst(white, black *[64]types.Value, lit [64]types.Value) {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		white[sq] = lit[sq^56]
		black[sq] = -lit[sq]
	}
}

func initPst() {
	type entry struct {
		base     types.Piece
		mid, end [64]types.Value
	}
	for _, e := range []entry{
		{types.PawnBase, pawnMid, pawnEnd},
		{types.KnightBase, knightMid, knightEnd},
		{types.BishopBase, bishopMid, bishopEnd},
		{types.RookBase, rookMid, rookEnd},
		{types.QueenBase, queenMid, queenEnd},
		{types.KingBase, kingMid, kingEnd},
	} {
		white := types.MakePiece(e.base, types.White)
		black := types.MakePiece(e.base, types.Black)
		buildPst(&pstMidTable[white], &pstMidTable[black], e.mid)
		buildPst(&pstEndTable[white], &pstEndTable[black], e.end)
	}
}

func init() {
	initPst()
}

// pstMid returns the midgame piece-square value of p standing on sq.
func pstMid(p types.Piece, sq types.Square) types.Value { return pstMidTable[p][sq] }

// pstEnd returns the endgame piece-square value of p standing on sq.
func pstEnd(p types.Piece, sq types.Square) types.Value { return pstEndTable[p][sq] }

// MaterialValue returns the unsigned centipawn value of a piece kind,
// looked up from either a colored piece or its base.
func MaterialValue(p types.Piece) types.Value { return materialValue[p.Base()] }

// recomputeEval rebuilds the midgame/endgame accumulators from scratch by
// summing every piece currently on the board - the eval side of the
// perft-with-recompute-assert correctness gate, paired with
// recomputeHash. Never on the hot path.
func recomputeEval(p *Position) (mg, eg types.Value) {
	for pc := types.WhitePawn; pc < types.PieceLength; pc++ {
		bb := p.pieces[pc]
		for bb != 0 {
			sq := bb.PopLsb()
			mg += materialSigned(pc) + pstMid(pc, sq)
			eg += materialSigned(pc) + pstEnd(pc, sq)
		}
	}
	return
}

// Evaluate returns the midgame accumulator from the side-to-move's
// perspective, plus a flat tempo bonus for having the move. The endgame
// term is tracked in EgVal but not blended in here - see the accompanying
// design notes for why.
func Evaluate(p *Position) types.Value {
	tempo := types.Value(config.Settings.Eval.Tempo)
	if p.sideToMove == types.Black {
		return -p.mgVal + tempo
	}
	return p.mgVal + tempo
}

// IsEndgame reports whether fewer than five non-pawn pieces remain on the
// board.
func IsEndgame(p *Position) bool {
	nonPawns := p.util[occAll] &^ (p.pieces[types.WhitePawn] | p.pieces[types.BlackPawn])
	return nonPawns.PopCount() < 5
}
