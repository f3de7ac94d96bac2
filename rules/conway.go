package rules

import (
	"github.com/Sawwave/nybblelife/cell"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

This is the reference form of the rule; NextStateBits must stay equivalent
to it for every neighbor count 0..8 and both alive states.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// foldMask flips bits 2-3 of every field so that a field holding 3 becomes
// 0xF, the only value the folding ANDs collapse to a set result bit.
const foldMask uint64 = 0xCCCCCCCCCCCCCCCC

// NextStateBits evaluates the rule for all 16 cells of a group at once,
// with no branch or comparison per cell.
//
// blockSums holds, per field, the number of live cells in the cell's 3x3
// block including the cell itself (0..9). alive holds the cell's committed
// alive bit. Subtracting alive leaves the true 8-neighbor count; fields
// never borrow from each other because each block sum includes the bit
// being subtracted.
//
// Per cell the rule "three neighbors, or two neighbors and alive" collapses
// to (neighbors | alive) == 3: OR-ing the alive flag turns a count of 2
// into 3 exactly when the cell may survive, and no other count can reach 3.
// XOR with 0xC maps 3 to 0xF, then two folding ANDs reduce 0xF to a single
// set bit at position 0 of the field.
func NextStateBits(blockSums, alive uint64) uint64 {
	n := blockSums - alive
	n |= alive
	n ^= foldMask
	n &= n >> 2
	n &= n >> 1
	return n & cell.AliveMask
}
