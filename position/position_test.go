package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgib0y/chesscore/types"
)

// assertInvariants checks the structural invariants every Position must
// satisfy after construction or Apply: disjoint occupancies, disjoint
// piece bitboards, exactly one king per side, and a hash consistent with
// a from-scratch recomputation.
func assertInvariants(t *testing.T, p *Position) {
	t.Helper()
	assert.Zero(t, p.util[types.White]&p.util[types.Black], "white/black occupancy overlap")
	assert.Equal(t, p.util[types.White]|p.util[types.Black], p.util[occAll])

	for a := types.WhitePawn; a < types.PieceLength; a++ {
		for b := a + 1; b < types.PieceLength; b++ {
			assert.Zero(t, p.pieces[a]&p.pieces[b], "%s/%s bitboards overlap", a, b)
		}
	}

	assert.Equal(t, 1, p.pieces[types.WhiteKing].PopCount())
	assert.Equal(t, 1, p.pieces[types.BlackKing].PopCount())

	assert.Equal(t, hashPosition(p), p.Hash())

	if p.ep != types.SqNone {
		r := p.ep.RankOf()
		assert.True(t, r == types.Rank3 || r == types.Rank6, "ep square %s has unexpected rank", p.ep)
	}
}

func TestStartposInvariants(t *testing.T) {
	pos, err := FromFEN(StartFEN)
	require.NoError(t, err)
	assertInvariants(t, &pos)
}

// TestApplyMaintainsInvariants plays a short fixed sequence of moves from
// each of three positions and checks every invariant after each one,
// including across double pawn pushes, a capture, castling on both sides,
// and a capture-promotion in a promotion-laden middlegame position.
func TestApplyMaintainsInvariants(t *testing.T) {
	games := map[string][]types.Move{
		StartFEN: {
			types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.NoPiece, types.Double),
			types.NewMove(types.SqD7, types.SqD5, types.BlackPawn, types.NoPiece, types.Double),
			types.NewMove(types.SqE4, types.SqD5, types.WhitePawn, types.BlackPawn, types.Cap),
		},
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": {
			types.NewMove(types.SqE1, types.SqG1, types.WhiteKing, types.NoPiece, types.WKingside),
			types.NewMove(types.SqE8, types.SqC8, types.BlackKing, types.NoPiece, types.BQueenside),
		},
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1": {
			types.NewMove(types.SqC4, types.SqC5, types.WhitePawn, types.NoPiece, types.Quiet),
			types.NewMove(types.SqB2, types.SqA1, types.BlackPawn, types.WhiteRook, types.QPromoCap),
		},
	}
	for fen, moves := range games {
		pos, err := FromFEN(fen)
		require.NoError(t, err, fen)
		assertInvariants(t, &pos)
		for _, m := range moves {
			pos = pos.Apply(m)
			assertInvariants(t, &pos)
		}
	}
}

func TestApplyDoublePushSetsEpFile(t *testing.T) {
	pos, err := FromFEN(StartFEN)
	require.NoError(t, err)

	m := types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.NoPiece, types.Double)
	child := pos.Apply(m)
	assertInvariants(t, &child)
	assert.Equal(t, types.SqE3, child.EpSquare())
	assert.Equal(t, types.Black, child.SideToMove())
	assert.Equal(t, 0, child.Halfmove())
}

func TestApplyCastlingMovesRookToo(t *testing.T) {
	pos, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE1, types.SqG1, types.WhiteKing, types.NoPiece, types.WKingside)
	child := pos.Apply(m)
	assertInvariants(t, &child)
	assert.Equal(t, types.WhiteKing, child.PieceAt(types.SqG1))
	assert.Equal(t, types.WhiteRook, child.PieceAt(types.SqF1))
	assert.Equal(t, types.NoPiece, child.PieceAt(types.SqE1))
	assert.Equal(t, types.NoPiece, child.PieceAt(types.SqH1))
	assert.False(t, child.Castling().Has(types.CastlingWK))
	assert.False(t, child.Castling().Has(types.CastlingWQ))
}

func TestApplyEnPassantRemovesVictim(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE5, types.SqD6, types.WhitePawn, types.NoPiece, types.Ep)
	child := pos.Apply(m)
	assertInvariants(t, &child)
	assert.Equal(t, types.WhitePawn, child.PieceAt(types.SqD6))
	assert.Equal(t, types.NoPiece, child.PieceAt(types.SqD5))
	assert.Equal(t, types.NoPiece, child.PieceAt(types.SqE5))
}

func TestApplyCaptureClearsHalfmove(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/8/3p4/4B3/8/4K3 w - - 12 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE3, types.SqD4, types.WhiteBishop, types.BlackPawn, types.Cap)
	child := pos.Apply(m)
	assertInvariants(t, &child)
	assert.Equal(t, 0, child.Halfmove())
}

func TestApplyKingMoveClearsBothCastlingRights(t *testing.T) {
	pos, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE1, types.SqE2, types.WhiteKing, types.NoPiece, types.Quiet)
	child := pos.Apply(m)
	assertInvariants(t, &child)
	assert.False(t, child.Castling().Has(types.CastlingWK))
	assert.False(t, child.Castling().Has(types.CastlingWQ))
	assert.True(t, child.Castling().Has(types.CastlingBK))
	assert.True(t, child.Castling().Has(types.CastlingBQ))
}

func TestInCheck(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.InCheck())

	pos2, err := FromFEN(StartFEN)
	require.NoError(t, err)
	assert.False(t, pos2.InCheck())
}
