// Package fade implements the pointer trail accent model: cells stamped at
// the pointer that age each tick and disappear when their lifetime runs out.
package fade

import "backdrop/internal/core"

const (
	// DefaultMaxAge is the lifetime of a trail cell in ticks.
	DefaultMaxAge = 15

	// Fresh is the age up to which a cell ignores re-spawns, so a lingering
	// pointer cannot keep resetting it forever.
	Fresh = 5
)

// Cell is one trail entry.
type Cell struct {
	Age    int
	MaxAge int
}

// Alpha returns the remaining opacity fraction, 1 at spawn falling linearly
// to 0 at MaxAge.
func (c Cell) Alpha() float64 {
	if c.MaxAge <= 0 {
		return 0
	}
	a := 1 - float64(c.Age)/float64(c.MaxAge)
	if a < 0 {
		return 0
	}
	return a
}

// Expired reports whether the cell has reached its lifetime.
func (c Cell) Expired() bool { return c.Age >= c.MaxAge }

// Trail is the sparse set of live trail cells keyed by grid coordinate.
type Trail map[core.Point]Cell

// Advance returns a new trail with every cell one tick older and expired
// cells dropped. The input is left untouched.
func Advance(t Trail) Trail {
	next := make(Trail, len(t))
	for p, c := range t {
		c.Age++
		if c.Expired() {
			continue
		}
		next[p] = c
	}
	return next
}

// Spawn places a fresh cell at p unless a cell there is still within the
// freshness window. It reports whether the trail changed.
func (t Trail) Spawn(p core.Point, maxAge int) bool {
	if c, ok := t[p]; ok && c.Age <= Fresh {
		return false
	}
	t[p] = Cell{Age: 0, MaxAge: maxAge}
	return true
}
