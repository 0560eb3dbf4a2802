package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgib0y/chesscore/movegen"
	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

func TestMoveToUCI(t *testing.T) {
	m := types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.NoPiece, types.Double)
	assert.Equal(t, "e2e4", MoveToUCI(m))
}

func TestMoveFromUCIRoundTrip(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)

	list := movegen.Generate(&pos)
	checked := pos.InCheck()
	for _, m := range list.Moves() {
		child := pos.Apply(m)
		if !movegen.Legal(&child, m, checked) {
			continue
		}
		s := MoveToUCI(m)
		got := MoveFromUCI(&pos, s)
		require.NotEqual(t, types.MoveNone, got, "round-trip failed for %s", s)
		assert.Equal(t, s, MoveToUCI(got))
	}
}

func TestMoveFromUCIRejectsMalformedInput(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)

	assert.Equal(t, types.MoveNone, MoveFromUCI(&pos, "e2e9"))
	assert.Equal(t, types.MoveNone, MoveFromUCI(&pos, "e2e4q"))
	assert.Equal(t, types.MoveNone, MoveFromUCI(&pos, "notamove"))
	assert.Equal(t, types.MoveNone, MoveFromUCI(&pos, ""))
}

func TestMoveFromUCIRejectsIllegalMove(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	// e2e5 is pseudo-legal-shaped but no pawn can reach e5 from e2 in one move
	assert.Equal(t, types.MoveNone, MoveFromUCI(&pos, "e2e5"))
}

func TestMoveFromUCIPromotion(t *testing.T) {
	pos, err := position.FromFEN("8/4P3/8/8/4k3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	got := MoveFromUCI(&pos, "e7e8q")
	require.NotEqual(t, types.MoveNone, got)
	assert.Equal(t, types.WhiteQueen, got.PromotionPiece(types.White))
	assert.Equal(t, "e7e8q", MoveToUCI(got))
}
