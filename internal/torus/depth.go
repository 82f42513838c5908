package torus

import (
	"math"
	"sync/atomic"
)

// depthBuffer keeps, per cell, the closest sample seen so far in one frame.
// Cells are row-major. Each cell packs the sample's reciprocal depth (as
// float32 bits) above its illumination level plus one, so a zero cell is
// background and a larger key is always at least as close. Offering a key
// only ever raises a cell, which keeps compositing closest-wins even when
// several goroutines plot into the same buffer.
type depthBuffer struct {
	size  int
	cells []atomic.Uint64
}

func newDepthBuffer(size int) *depthBuffer {
	return &depthBuffer{
		size:  size,
		cells: make([]atomic.Uint64, size*size),
	}
}

func (d *depthBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < d.size && y >= 0 && y < d.size
}

// offer stores key at (x, y) if it beats the current entry and reports
// whether it did.
func (d *depthBuffer) offer(x, y int, key uint64) bool {
	cell := &d.cells[y*d.size+x]
	for {
		cur := cell.Load()
		if key <= cur {
			return false
		}
		if cell.CompareAndSwap(cur, key) {
			return true
		}
	}
}

func (d *depthBuffer) load(x, y int) uint64 {
	return d.cells[y*d.size+x].Load()
}

// depthKey packs a reciprocal depth and an illumination level. ooz must be
// positive, which holds whenever K2 > R1+R2. Depth is kept at float32
// precision: samples whose ooz round to the same float32 (relative gap
// under about 6e-8) compare as a tie, and the brighter level wins.
func depthKey(ooz float64, level int) uint64 {
	return uint64(math.Float32bits(float32(ooz)))<<32 | uint64(level+1)
}

// keyDepth returns the reciprocal depth stored in key, 0 for background.
func keyDepth(key uint64) float64 {
	return float64(math.Float32frombits(uint32(key >> 32)))
}

// keyLevel returns the illumination level stored in key, -1 for background.
func keyLevel(key uint64) int {
	return int(uint32(key)) - 1
}
