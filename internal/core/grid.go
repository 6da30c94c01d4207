package core

// Lattice stores a 2D grid of alive/dead cells in row-major order. Unlike a
// toroidal board, coordinates outside the grid simply do not exist: reads
// report dead and writes are dropped.
type Lattice struct {
	W, H int
	data []uint8
}

// NewLattice allocates an all-dead lattice. Negative dimensions are treated
// as zero; a zero-sized lattice is valid and holds no cells.
func NewLattice(w, h int) *Lattice {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Lattice{W: w, H: h, data: make([]uint8, w*h)}
}

// Size reports the lattice dimensions.
func (l *Lattice) Size() Size { return Size{W: l.W, H: l.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (l *Lattice) Cells() []uint8 { return l.data }

// Index returns the linear slice index for coordinates (x, y).
func (l *Lattice) Index(x, y int) int { return y*l.W + x }

// In reports whether (x, y) lies inside the lattice.
func (l *Lattice) In(x, y int) bool {
	return x >= 0 && x < l.W && y >= 0 && y < l.H
}

// At reports whether the cell at (x, y) is alive. Out-of-range cells are dead.
func (l *Lattice) At(x, y int) bool {
	if !l.In(x, y) {
		return false
	}
	return l.data[y*l.W+x] != 0
}

// Set marks the cell at (x, y) alive or dead. Out-of-range writes are ignored.
func (l *Lattice) Set(x, y int, alive bool) {
	if !l.In(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.data[y*l.W+x] = v
}

// Alive counts the live cells.
func (l *Lattice) Alive() int {
	n := 0
	for _, c := range l.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (l *Lattice) Clear() {
	for i := range l.data {
		l.data[i] = 0
	}
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{W: l.W, H: l.H, data: make([]uint8, len(l.data))}
	copy(c.data, l.data)
	return c
}

// Equal reports whether both lattices have the same size and cells.
func (l *Lattice) Equal(o *Lattice) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.W != o.W || l.H != o.H {
		return false
	}
	for i := range l.data {
		if (l.data[i] != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}
