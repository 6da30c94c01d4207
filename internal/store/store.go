// Package store owns the evolving lattices: the background Life grid and the
// accent grid in whichever model is active.
package store

import (
	"backdrop/internal/core"
	"backdrop/internal/seed"
	"backdrop/internal/sims/fade"
	"backdrop/internal/sims/life"
)

// Role names one of the double-buffered grids.
type Role uint8

const (
	// Background is the always-on Life grid.
	Background Role = iota
	// Accent is the accent Life grid, present only in ModeLife.
	Accent
)

// Store holds the lattices for one surface. Lattices are never resized in
// place; a new size means a fresh Allocate.
type Store struct {
	filler seed.Filler
	mode   core.AccentMode
	size   core.Size

	background *life.Pair
	accent     *life.Pair
	trail      fade.Trail
}

// New returns an empty store that fills backgrounds with filler.
func New(filler seed.Filler, mode core.AccentMode) *Store {
	if filler == nil {
		filler = seed.NewRandom(seed.DefaultDensity)
	}
	s := &Store{filler: filler, mode: mode}
	s.Allocate(core.Size{})
	return s
}

// Allocate discards all state and builds fresh lattices of the given size.
// The background is filled by the store's filler; the accent model starts
// empty.
func (s *Store) Allocate(size core.Size) {
	if size.W < 0 {
		size.W = 0
	}
	if size.H < 0 {
		size.H = 0
	}
	s.size = size
	s.background = life.NewPair(size.W, size.H)
	s.filler.Fill(s.background.Current())
	s.resetAccent()
}

// SetMode switches the accent model and discards prior accent state, even
// when the mode is unchanged.
func (s *Store) SetMode(mode core.AccentMode) {
	s.mode = mode
	s.resetAccent()
}

func (s *Store) resetAccent() {
	s.accent = nil
	s.trail = nil
	switch s.mode {
	case core.ModeLife:
		s.accent = life.NewPair(s.size.W, s.size.H)
	default:
		s.trail = fade.Trail{}
	}
}

// Swap exchanges the current and next buffers of a role. Swapping the accent
// role outside ModeLife is a no-op.
func (s *Store) Swap(role Role) {
	if p := s.pair(role); p != nil {
		p.Swap()
	}
}

// Step advances one role by a generation.
func (s *Store) Step(role Role) {
	if p := s.pair(role); p != nil {
		p.Advance()
	}
}

// AdvanceTrail ages the fade trail by one tick.
func (s *Store) AdvanceTrail() {
	if s.trail != nil {
		s.trail = fade.Advance(s.trail)
	}
}

func (s *Store) pair(role Role) *life.Pair {
	if role == Accent {
		return s.accent
	}
	return s.background
}

// Mode reports the active accent model.
func (s *Store) Mode() core.AccentMode { return s.mode }

// Size reports the current grid dimensions.
func (s *Store) Size() core.Size { return s.size }

// Background returns the current background generation.
func (s *Store) Background() *core.Lattice { return s.background.Current() }

// AccentLattice returns the current accent generation, or nil in ModeFade.
func (s *Store) AccentLattice() *core.Lattice {
	if s.accent == nil {
		return nil
	}
	return s.accent.Current()
}

// Trail returns the fade trail, or nil in ModeLife.
func (s *Store) Trail() fade.Trail { return s.trail }

// Next exposes the scratch buffer of a role, or nil if the role has none.
func (s *Store) Next(role Role) *core.Lattice {
	if p := s.pair(role); p != nil {
		return p.Next()
	}
	return nil
}
