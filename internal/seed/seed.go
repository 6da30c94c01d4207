// Package seed provides the initial fill for freshly allocated background
// lattices.
package seed

import (
	"github.com/aquilax/go-perlin"

	"backdrop/internal/core"
)

// DefaultDensity is the fraction of cells that start alive.
const DefaultDensity = 0.2

// Filler populates a lattice with its starting generation.
type Filler interface {
	Fill(l *core.Lattice)
}

// Random sets each cell alive independently with probability Density.
type Random struct {
	Density float64
	RNG     *core.RNG
}

// NewRandom returns a Random filler seeded from the clock.
func NewRandom(density float64) *Random {
	return &Random{Density: density, RNG: core.NewTimeRNG()}
}

// Fill implements Filler.
func (r *Random) Fill(l *core.Lattice) {
	core.FillChance(r.RNG, l.Cells(), r.Density)
}

// Noise biases the per-cell probability with 2D Perlin noise so live cells
// start out in loose clusters instead of uniform static. The mean density
// stays close to Density.
type Noise struct {
	Density float64
	Scale   float64
	RNG     *core.RNG

	alpha, beta float64
	octaves     int32
}

// NewNoise returns a Noise filler seeded from the clock.
func NewNoise(density float64) *Noise {
	return &Noise{
		Density: density,
		Scale:   0.08,
		RNG:     core.NewTimeRNG(),
		alpha:   2,
		beta:    2,
		octaves: 3,
	}
}

// Fill implements Filler. Each call draws a fresh noise field.
func (n *Noise) Fill(l *core.Lattice) {
	field := perlin.NewPerlin(n.alpha, n.beta, n.octaves, n.RNG.Int64())
	cells := l.Cells()
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			v := field.Noise2D(float64(x)*n.Scale, float64(y)*n.Scale)
			p := n.Density * clamp(1+2*v, 0, 2)
			cells[y*l.W+x] = 0
			if n.RNG.Chance(p) {
				cells[y*l.W+x] = 1
			}
		}
	}
}

// ByName resolves the -seed flag.
func ByName(name string, density float64) Filler {
	if name == "noise" {
		return NewNoise(density)
	}
	return NewRandom(density)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
