// Package inject turns pointer positions into accent cells.
package inject

import (
	"math"

	"backdrop/internal/core"
	"backdrop/internal/sims/fade"
)

// DefaultRadius is the fade spawn radius in cells.
const DefaultRadius = 3

// Glider is stamped into the accent Life grid, centred on the pointer cell.
var Glider = []core.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Pointer is a position in host display space.
type Pointer struct {
	X, Y float64
}

// Rect is the on-screen placement of the raster surface in display space.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Target is the accent state an injection writes into. Exactly one of Accent
// and Trail is used, depending on the mode.
type Target struct {
	Grid   core.Size
	Accent *core.Lattice
	Trail  fade.Trail
}

// Injector stamps spawn patterns at pointer positions.
type Injector struct {
	CellSize int
	Radius   int
	MaxAge   int
	Pattern  []core.Point
}

// New returns an injector with the stock radius, lifetime and glider.
func New(cellSize int) *Injector {
	return &Injector{
		CellSize: cellSize,
		Radius:   DefaultRadius,
		MaxAge:   fade.DefaultMaxAge,
		Pattern:  Glider,
	}
}

// Raster maps a display-space pointer into raster pixel space, undoing the
// surface offset and any scaling between raster resolution and displayed size.
func Raster(p Pointer, rect Rect, raster core.Size) (float64, float64) {
	sx, sy := 1.0, 1.0
	if rect.Width > 0 {
		sx = float64(raster.W) / rect.Width
	}
	if rect.Height > 0 {
		sy = float64(raster.H) / rect.Height
	}
	return (p.X - rect.Left) * sx, (p.Y - rect.Top) * sy
}

// Cell maps a display-space pointer onto grid coordinates. The result may lie
// outside the grid.
func (in *Injector) Cell(p Pointer, rect Rect, raster core.Size) core.Point {
	cs := float64(in.cellSize())
	rx, ry := Raster(p, rect, raster)
	return core.Point{X: int(math.Floor(rx / cs)), Y: int(math.Floor(ry / cs))}
}

// Inject stamps the spawn pattern for mode at the pointer. Anything falling
// outside the grid is clipped.
func (in *Injector) Inject(p Pointer, rect Rect, raster core.Size, mode core.AccentMode, t Target) {
	at := in.Cell(p, rect, raster)
	switch mode {
	case core.ModeFade:
		in.Fade(at, t)
	case core.ModeLife:
		in.Life(at, t)
	}
}

// Fade spawns trail cells on the disc of Radius around at.
func (in *Injector) Fade(at core.Point, t Target) {
	if t.Trail == nil {
		return
	}
	r := in.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := core.Point{X: at.X + dx, Y: at.Y + dy}
			if p.X < 0 || p.X >= t.Grid.W || p.Y < 0 || p.Y >= t.Grid.H {
				continue
			}
			t.Trail.Spawn(p, in.MaxAge)
		}
	}
}

// Life sets the pattern cells alive around at. It never kills cells.
func (in *Injector) Life(at core.Point, t Target) {
	if t.Accent == nil {
		return
	}
	for _, d := range in.Pattern {
		t.Accent.Set(at.X+d.X, at.Y+d.Y, true)
	}
}

func (in *Injector) cellSize() int {
	if in.CellSize <= 0 {
		return 1
	}
	return in.CellSize
}
