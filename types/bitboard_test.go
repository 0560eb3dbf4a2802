package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardHasPushPop(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(SqE4))

	b = b.Push(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())

	b = b.Pop(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardLsbMsb(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.Msb())

	b = SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqB1.Bb() | SqG5.Bb()
	first := b.PopLsb()
	assert.Equal(t, SqB1, first)
	assert.Equal(t, 1, b.PopCount())

	second := b.PopLsb()
	assert.Equal(t, SqG5, second)
	assert.Equal(t, 0, b.PopCount())
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestFileAndRankBitboards(t *testing.T) {
	assert.Equal(t, 8, FileABb.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
	assert.True(t, FileABb.Has(SqA1))
	assert.True(t, FileABb.Has(SqA8))
	assert.False(t, FileABb.Has(SqB1))
	assert.True(t, Rank1Bb.Has(SqA1))
	assert.True(t, Rank1Bb.Has(SqH1))
	assert.False(t, Rank1Bb.Has(SqA2))
}
