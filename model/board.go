package model

import (
	"crypto/md5"
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/Sawwave/nybblelife/cell"
)

// Board is the packed game surface: a flat buffer of 64-bit groups, each
// holding 16 cells of one row. One all-zero ghost row sits above and below
// the interior, and every row ends with one all-zero sentinel group, so the
// sweep never needs a bounds check to find a dead neighbor. Ghost rows and
// sentinels are never written after allocation.
type Board struct {
	width, height int
	groupsPerRow  int // real groups plus the trailing sentinel
	realGroups    int
	groups        []uint64 // (height+2) * groupsPerRow, zero-filled

	// colMask zeroes, at commit time, the fields of a partial trailing
	// group that lie past width-1. Full groups carry an all-ones mask.
	colMask []uint64

	borders borderPool
	history []string // recent board hashes for cycle detection
}

// NewBoard allocates a zeroed board for a width x height interior.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewBoard] dimensions must be positive, got %dx%d", width, height)
	}

	var (
		realGroups   = (width + cell.PerGroup - 1) / cell.PerGroup
		groupsPerRow = realGroups + 1
	)

	b := &Board{
		width:        width,
		height:       height,
		groupsPerRow: groupsPerRow,
		realGroups:   realGroups,
		groups:       make([]uint64, (height+2)*groupsPerRow),
		colMask:      make([]uint64, groupsPerRow),
	}
	b.borders.init(groupsPerRow)

	for g := 0; g < realGroups; g++ {
		b.colMask[g] = ^uint64(0)
	}
	if tail := width % cell.PerGroup; tail != 0 {
		// Leftmost cells occupy the most significant fields, so the
		// valid region of a partial group is a prefix of high fields.
		b.colMask[realGroups-1] = ^uint64(0) << uint((cell.PerGroup-tail)*cell.FieldBits)
	}
	// The sentinel is never written; its mask stays zero.

	return b, nil
}

// GetWidth returns the width of the board interior
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board interior
func (b *Board) GetHeight() int {
	return b.height
}

// rowGroups returns the group slice of one buffer row. Buffer row 0 is the
// top ghost row; interior rows are 1..height.
func (b *Board) rowGroups(row int) []uint64 {
	start := row * b.groupsPerRow
	return b.groups[start : start+b.groupsPerRow]
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(x, y int, alive bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	var (
		idx   = (y+1)*b.groupsPerRow + x/cell.PerGroup
		shift = cell.Shift(x % cell.PerGroup)
	)
	if alive {
		b.groups[idx] |= 1 << shift
	} else {
		b.groups[idx] &^= 1 << shift
	}
}

// Get returns the committed state of a cell
func (b *Board) Get(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}

	var (
		idx   = (y+1)*b.groupsPerRow + x/cell.PerGroup
		shift = cell.Shift(x % cell.PerGroup)
	)
	return cell.Alive(b.groups[idx] >> shift)
}

// Clear clears all interior cells
func (b *Board) Clear() {
	for row := 1; row <= b.height; row++ {
		groups := b.rowGroups(row)
		for g := range groups {
			groups[g] = 0
		}
	}
	b.history = nil
}

// Seed populates the interior from a height x width boolean grid, replacing
// any prior state. Ghost rows and sentinel groups stay zero.
func (b *Board) Seed(grid [][]bool) error {
	if len(grid) != b.height {
		return errors.Errorf("[Seed] grid has %d rows, board wants %d", len(grid), b.height)
	}
	for y, row := range grid {
		if len(row) != b.width {
			return errors.Errorf("[Seed] grid row %d has %d cells, board wants %d", y, len(row), b.width)
		}
	}

	b.Clear()
	for y, row := range grid {
		for x, alive := range row {
			b.Set(x, y, alive)
		}
	}
	return nil
}

// Cells copies the committed interior state out as a boolean grid.
func (b *Board) Cells() [][]bool {
	grid := make([][]bool, b.height)
	for y := range grid {
		grid[y] = make([]bool, b.width)
		for x := range grid[y] {
			grid[y][x] = b.Get(x, y)
		}
	}
	return grid
}

// Clone returns an independent copy of the board state.
func (b *Board) Clone() *Board {
	clone, err := NewBoard(b.width, b.height)
	if err != nil {
		// Dimensions were already validated when b was built.
		panic(err)
	}
	copy(clone.groups, b.groups)
	return clone
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for row := 1; row <= b.height; row++ {
		for _, g := range b.rowGroups(row) {
			count += bits.OnesCount64(cell.AliveBits(g))
		}
	}
	return
}

// Hash returns an MD5 hash of the committed interior state
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, 8)
	for row := 1; row <= b.height; row++ {
		for _, g := range b.rowGroups(row) {
			v := cell.AliveBits(g)
			for i := range buf {
				buf[i] = byte(v >> (8 * i))
			}
			h.Write(buf)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (b *Board) UpdateHistory() {
	b.history = append(b.history, b.Hash())

	// Keep only last 5 states to detect cycles
	if len(b.history) > 5 {
		b.history = b.history[1:]
	}
}

// IsStagnant checks if the board is stuck in a cycle or static state
func (b *Board) IsStagnant() bool {
	if len(b.history) < 3 {
		return false
	}

	currentHash := b.Hash()
	for i := 1; i <= 3; i++ {
		if b.history[len(b.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// Randomize fills the interior with random living cells
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, rng.Float64() < density)
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (b *Board) InjectRandomLife(rng *rand.Rand, count int) {
	for i := 0; i < count; i++ {
		b.Set(rng.Intn(b.width), rng.Intn(b.height), true)
	}
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, alive := range row {
			b.Set(startX+x, startY+y, alive)
		}
	}
}

// AddOscillator adds a blinker oscillator pattern
func (b *Board) AddOscillator(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}

// AddBlock adds a 2x2 still-life block at the specified position
func (b *Board) AddBlock(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX, startY+1, true)
	b.Set(startX+1, startY+1, true)
}

// ResetWithInterestingPatterns clears the board and adds various interesting patterns
func (b *Board) ResetWithInterestingPatterns(rng *rand.Rand, density float64) {
	b.Clear()
	b.Randomize(rng, density)

	if b.width >= 10 && b.height >= 10 {
		b.AddGlider(5, 5)
		if b.width >= 20 && b.height >= 15 {
			b.AddGlider(b.width-8, 5)
		}

		b.AddOscillator(b.width/4, b.height/4)
		if b.width >= 30 {
			b.AddOscillator(3*b.width/4, 3*b.height/4)
		}
	}
}
