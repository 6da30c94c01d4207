package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Empty reports whether the size holds no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// AccentMode selects how the accent grid evolves.
type AccentMode uint8

const (
	// ModeFade spawns pointer-stamped cells that age out.
	ModeFade AccentMode = iota
	// ModeLife runs a second Game of Life seeded by pointer stamps.
	ModeLife
)

// String returns the flag spelling of the mode.
func (m AccentMode) String() string {
	switch m {
	case ModeLife:
		return "life"
	case ModeFade:
		return "fade"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Toggled returns the other mode.
func (m AccentMode) Toggled() AccentMode {
	if m == ModeLife {
		return ModeFade
	}
	return ModeLife
}

// ParseAccentMode maps a flag value onto a mode.
func ParseAccentMode(s string) (AccentMode, error) {
	switch s {
	case "life":
		return ModeLife, nil
	case "fade":
		return ModeFade, nil
	}
	return ModeFade, fmt.Errorf("unknown accent mode %q", s)
}
