package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Sawwave/nybblelife/cell"
	"github.com/Sawwave/nybblelife/rules"
)

// carryShift moves a group's outermost field to the opposite end of the
// word, carrying column sums across a group boundary.
const carryShift = cell.GroupBits - cell.FieldBits

// Advance computes the next generation in place, sweeping rows top to
// bottom. Each row above the one being swept has already advanced, so its
// pre-sweep state is read through the stale history bit.
func (b *Board) Advance() {
	for row := 1; row <= b.height; row++ {
		b.runRow(row, b.rowGroups(row-1), 1, b.rowGroups(row+1))
	}
}

// colSums builds one group's vertical sums: per field, the count 0..3 of
// live cells among the cell above, the cell itself, and the cell below.
// The two zero high bits of every field absorb the carries, so three
// masked adds never spill into the neighboring field.
func colSums(top, mid, bot uint64, topShift uint) (sums, alive uint64) {
	alive = cell.AliveBits(mid)
	sums = alive + ((top >> topShift) & cell.AliveMask) + cell.AliveBits(bot)
	return sums, alive
}

// runRow sweeps one interior row left to right. top and bot supply the
// neighbor rows' groups; topShift is 1 when top has already advanced this
// sweep (stale read) and 0 when top holds plain alive bits, as with a
// border snapshot. bot is always read unshifted.
//
// The three column-sum words in flight (previous, current, next group) form
// a pipeline that advances one group per step, so each group's vertical
// sums are computed once and reused by both horizontal neighbors. The
// commit trails the read position by one group; the sentinel group at the
// end of the row both supplies the last real group's dead right neighbors
// and drains the lag, so no flush step is needed after the loop.
func (b *Board) runRow(row int, top []uint64, topShift uint, bot []uint64) {
	mid := b.rowGroups(row)

	nextSums, nextVals := colSums(top[0], mid[0], bot[0], topShift)

	var prevSums, currSums, currVals uint64
	for g := 1; g < b.groupsPerRow; g++ {
		prevSums, currSums = currSums, nextSums
		currVals = nextVals
		nextSums, nextVals = colSums(top[g], mid[g], bot[g], topShift)

		// Shift by one field to align each cell with its horizontal
		// neighbor's column sum; the outermost field of the adjacent
		// group's sums carries in at the open end.
		var (
			left  = (currSums >> cell.FieldBits) | (prevSums << carryShift)
			right = (currSums << cell.FieldBits) | (nextSums >> carryShift)
		)

		state := rules.NextStateBits(currSums+left+right, currVals)
		mid[g-1] = cell.Commit(state, currVals) & b.colMask[g-1]
	}
}

// band is one worker's contiguous range of buffer rows [lo, hi), plus
// pre-sweep snapshots of the rows bordering it where those rows belong to
// another worker. Ghost rows never change and need no snapshot.
type band struct {
	lo, hi   int
	top, bot []uint64
}

// AdvanceParallel computes the next generation using up to workers
// goroutines, one per contiguous band of rows. Before any worker writes,
// the alive bits of every band-border row are snapshotted; a band's first
// row reads its top neighbor from the snapshot and its last row reads its
// bottom neighbor likewise, while interior rows use the same stale-read
// sweep as Advance. Every read is then either band-local or pre-sweep, so
// the result is byte-identical to Advance for any worker count, and group
// writes are single-word stores so no neighbor can observe a torn group.
//
// workers <= 0 selects runtime.NumCPU().
func (b *Board) AdvanceParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > b.height {
		workers = b.height
	}
	if workers <= 1 {
		b.Advance()
		return
	}

	rowsPerWorker := (b.height + workers - 1) / workers // Ceiling division

	bands := make([]band, 0, workers)
	for lo := 1; lo <= b.height; lo += rowsPerWorker {
		bands = append(bands, band{lo: lo, hi: min(lo+rowsPerWorker, b.height+1)})
	}

	// Snapshot border rows before any band starts writing.
	for i := range bands {
		if bands[i].lo > 1 {
			bands[i].top = b.borders.snapshot(b.rowGroups(bands[i].lo - 1))
		}
		if bands[i].hi <= b.height {
			bands[i].bot = b.borders.snapshot(b.rowGroups(bands[i].hi))
		}
	}

	var eg errgroup.Group
	for i := range bands {
		bd := bands[i]
		eg.Go(func() error {
			for row := bd.lo; row < bd.hi; row++ {
				top, topShift := b.rowGroups(row-1), uint(1)
				if row == bd.lo && bd.top != nil {
					top, topShift = bd.top, 0
				}
				bot := b.rowGroups(row + 1)
				if row == bd.hi-1 && bd.bot != nil {
					bot = bd.bot
				}
				b.runRow(row, top, topShift, bot)
			}
			return nil
		})
	}
	// Workers never fail; Wait is the generation barrier.
	_ = eg.Wait()

	for i := range bands {
		b.borders.release(bands[i].top)
		b.borders.release(bands[i].bot)
	}
}
