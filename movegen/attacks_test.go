package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgib0y/chesscore/position"
	"github.com/georgib0y/chesscore/types"
)

func TestBetweenStraightAndDiagonal(t *testing.T) {
	assert.Equal(t, (types.SqB1.Bb() | types.SqC1.Bb() | types.SqD1.Bb()), between(types.SqA1, types.SqE1))
	assert.Equal(t, (types.SqB2.Bb() | types.SqC3.Bb() | types.SqD4.Bb()), between(types.SqA1, types.SqE5))
	assert.Equal(t, types.BbZero, between(types.SqA1, types.SqB3), "not on a common rank/file/diagonal")
	assert.Equal(t, types.BbZero, between(types.SqA1, types.SqB1), "adjacent squares have nothing between them")
}

func TestPinnedDetectsAbsolutePin(t *testing.T) {
	// white king e1, white rook e4, black rook e8: the rook on e4 is
	// absolutely pinned along the e-file.
	pos, err := position.FromFEN("4r3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	pin := pinned(&pos, types.White)
	assert.True(t, pin.Has(types.SqE4))
	assert.Equal(t, 1, pin.PopCount())
}

func TestPinnedIgnoresNonAlignedPieces(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, types.BbZero, pinned(&pos, types.White))
}
