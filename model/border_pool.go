package model

import (
	"sync"

	"github.com/Sawwave/nybblelife/cell"
)

// borderPool recycles the border-snapshot slices AdvanceParallel takes at
// band boundaries, so steady-state generations allocate nothing.
type borderPool struct {
	pool sync.Pool
}

func (p *borderPool) init(groupsPerRow int) {
	p.pool = sync.Pool{
		New: func() interface{} {
			return make([]uint64, groupsPerRow)
		},
	}
}

// snapshot copies the committed alive bits of one row into a pooled slice.
func (p *borderPool) snapshot(row []uint64) []uint64 {
	out := p.pool.Get().([]uint64)
	for i, g := range row {
		out[i] = cell.AliveBits(g)
	}
	return out
}

// release returns a snapshot to the pool; nil is accepted and ignored.
func (p *borderPool) release(snap []uint64) {
	if snap == nil {
		return
	}
	p.pool.Put(snap)
}
