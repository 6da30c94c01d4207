// Package life implements Conway's Game of Life on a bounded (non-wrapping)
// lattice.
package life

import "backdrop/internal/core"

// Step returns the next generation of cur as a freshly allocated lattice.
func Step(cur *core.Lattice) *core.Lattice {
	nxt := core.NewLattice(cur.W, cur.H)
	StepInto(nxt, cur)
	return nxt
}

// StepInto writes the next generation of src into dst. Both lattices must
// share dimensions; a mismatched dst is left untouched.
func StepInto(dst, src *core.Lattice) {
	if dst.W != src.W || dst.H != src.H {
		return
	}
	w, h := src.W, src.H
	in := src.Cells()
	out := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := Neighbors(src, x, y)
			idx := y*w + x
			alive := in[idx] != 0
			out[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = 1
			}
		}
	}
}

// Neighbors counts live cells in the Moore neighbourhood of (x, y). Cells past
// the edge count as dead.
func Neighbors(l *core.Lattice, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= l.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= l.W {
				continue
			}
			if l.Cells()[ny*l.W+nx] != 0 {
				n++
			}
		}
	}
	return n
}

// Pair holds the current and next buffers of one evolving grid.
type Pair struct {
	cur *core.Lattice
	nxt *core.Lattice
}

// NewPair allocates two all-dead buffers of the given size.
func NewPair(w, h int) *Pair {
	return &Pair{cur: core.NewLattice(w, h), nxt: core.NewLattice(w, h)}
}

// Current exposes the live generation. The pointer is only valid until the
// next Swap or Advance.
func (p *Pair) Current() *core.Lattice { return p.cur }

// Next exposes the scratch buffer the next generation is written into.
func (p *Pair) Next() *core.Lattice { return p.nxt }

// Size returns the grid dimensions.
func (p *Pair) Size() core.Size { return p.cur.Size() }

// Swap exchanges the current and next buffers without copying.
func (p *Pair) Swap() { p.cur, p.nxt = p.nxt, p.cur }

// Advance computes one generation into the scratch buffer and swaps.
func (p *Pair) Advance() {
	StepInto(p.nxt, p.cur)
	p.Swap()
}
