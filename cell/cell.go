// Package cell defines the packed board representation: each cell occupies a
// 4-bit field, sixteen fields pack into one 64-bit group. Bit 0 of a field
// holds the most recently committed alive state, bit 1 holds the state one
// generation older, bits 2-3 stay zero so neighbor counts can be summed in
// place without overflowing into the next field.
package cell

const (
	// FieldBits is the width of one cell's field within a group.
	FieldBits = 4
	// GroupBits is the width of a group word.
	GroupBits = 64
	// PerGroup is the number of cells packed into one group.
	PerGroup = GroupBits / FieldBits

	// AliveMask isolates bit 0 of every field: the committed alive state.
	AliveMask uint64 = 0x1111111111111111
	// HistoryMask isolates bit 1 of every field: the previous generation.
	HistoryMask uint64 = AliveMask << 1
)

// Shift returns the bit offset of cell i within a group. Cell 0 is the
// leftmost cell of the group and occupies the most significant field.
func Shift(i int) uint {
	return uint((PerGroup - 1 - i) * FieldBits)
}

// Encode packs one cell's state into a 4-bit field
func Encode(alive, previousAlive bool) uint64 {
	var field uint64
	if alive {
		field |= 1
	}
	if previousAlive {
		field |= 1 << 1
	}
	return field
}

// Alive reports whether a 4-bit field holds a live cell
func Alive(field uint64) bool {
	return field&1 != 0
}

// AliveBits returns the committed alive bit of every cell in a group
func AliveBits(group uint64) uint64 {
	return group & AliveMask
}

// StaleBits returns the previous-generation alive bit of every cell in a
// group. This is the read used against a row that has already advanced in
// the current sweep: bit 1 still holds the value the row had when its own
// neighbors were summed.
func StaleBits(group uint64) uint64 {
	return (group >> 1) & AliveMask
}

// Commit merges a group's freshly computed state with the state it held
// going into this sweep: bit 0 takes the next generation, bit 1 keeps the
// current one so the row below can still recover it via StaleBits.
func Commit(next, curr uint64) uint64 {
	return ((curr & AliveMask) << 1) | (next & AliveMask)
}
