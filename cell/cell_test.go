package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, uint64(0x0), Encode(false, false))
	assert.Equal(t, uint64(0x1), Encode(true, false))
	assert.Equal(t, uint64(0x2), Encode(false, true))
	assert.Equal(t, uint64(0x3), Encode(true, true))
}

func TestAlive(t *testing.T) {
	assert.False(t, Alive(Encode(false, false)))
	assert.False(t, Alive(Encode(false, true)))
	assert.True(t, Alive(Encode(true, false)))
	assert.True(t, Alive(Encode(true, true)))
}

func TestShift(t *testing.T) {
	// Cell 0 is leftmost and occupies the most significant field.
	assert.Equal(t, uint(60), Shift(0))
	assert.Equal(t, uint(56), Shift(1))
	assert.Equal(t, uint(0), Shift(PerGroup-1))
}

func TestMasks(t *testing.T) {
	assert.Equal(t, uint64(0x1111111111111111), AliveMask)
	assert.Equal(t, uint64(0x2222222222222222), HistoryMask)
	assert.Zero(t, AliveMask&HistoryMask)
}

func TestAliveAndStaleBits(t *testing.T) {
	// Field values 0..3 cycle through the (alive, previous) combinations.
	group := uint64(0x3210321032103210)

	assert.Equal(t, uint64(0x1010101010101010), AliveBits(group))
	assert.Equal(t, uint64(0x1100110011001100), StaleBits(group))
}

func TestCommit(t *testing.T) {
	var (
		curr = uint64(0x1011101110111011)
		next = uint64(0x0110011001100110)
	)

	committed := Commit(next, curr)

	// Bit 0 carries the next generation, bit 1 preserves the current one.
	assert.Equal(t, next, AliveBits(committed))
	assert.Equal(t, AliveBits(curr), StaleBits(committed))

	// Stray high bits in the inputs must not leak through.
	dirty := Commit(next|0xCCCCCCCCCCCCCCCC, curr|0xCCCCCCCCCCCCCCCC)
	assert.Equal(t, committed, dirty)
}
