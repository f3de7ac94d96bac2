package rules

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sawwave/nybblelife/cell"
)

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{neighbors: 0, alive: true, want: false},  // underpopulation
		{neighbors: 1, alive: true, want: false},  // underpopulation
		{neighbors: 2, alive: true, want: true},   // survival
		{neighbors: 3, alive: true, want: true},   // survival
		{neighbors: 4, alive: true, want: false},  // overpopulation
		{neighbors: 8, alive: true, want: false},  // overpopulation
		{neighbors: 2, alive: false, want: false}, // stays dead
		{neighbors: 3, alive: false, want: true},  // reproduction
		{neighbors: 4, alive: false, want: false}, // stays dead
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d_alive=%v", tt.neighbors, tt.alive), func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyConwayRules(tt.neighbors, tt.alive))
		})
	}
}

// TestNextStateBitsExhaustive checks the branchless evaluator against the
// reference rule for every neighbor count and both alive states, with the
// same value replicated across all 16 fields.
func TestNextStateBitsExhaustive(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		for _, alive := range []bool{false, true} {
			var aliveBit uint64
			if alive {
				aliveBit = 1
			}

			var (
				blockSums = (uint64(neighbors) + aliveBit) * cell.AliveMask
				aliveWord = aliveBit * cell.AliveMask
				got       = NextStateBits(blockSums, aliveWord)
				want      uint64
			)
			if ApplyConwayRules(neighbors, alive) {
				want = cell.AliveMask
			}
			assert.Equalf(t, want, got, "neighbors=%d alive=%v", neighbors, alive)
		}
	}
}

// TestNextStateBitsMixedFields exercises groups whose 16 cells carry
// independent counts and alive flags, so cross-field contamination in the
// folding shifts would surface.
func TestNextStateBitsMixedFields(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 500; iter++ {
		var (
			blockSums, aliveWord uint64
			wantAlive            [cell.PerGroup]bool
		)
		for i := 0; i < cell.PerGroup; i++ {
			var (
				neighbors = rng.Intn(9)
				aliveBit  = uint64(rng.Intn(2))
				shift     = cell.Shift(i)
			)
			blockSums |= (uint64(neighbors) + aliveBit) << shift
			aliveWord |= aliveBit << shift
			wantAlive[i] = ApplyConwayRules(neighbors, aliveBit == 1)
		}

		got := NextStateBits(blockSums, aliveWord)
		require.Zero(t, got&^cell.AliveMask, "result must only carry bit 0 per field")
		for i := 0; i < cell.PerGroup; i++ {
			assert.Equalf(t, wantAlive[i], cell.Alive(got>>cell.Shift(i)), "iter=%d field=%d", iter, i)
		}
	}
}
