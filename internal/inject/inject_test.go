package inject

import (
	"testing"

	"backdrop/internal/core"
	"backdrop/internal/sims/fade"
)

func TestFadeDisc(t *testing.T) {
	in := New(8)
	grid := core.Size{W: 20, H: 20}
	trail := fade.Trail{}
	in.Fade(core.Point{X: 5, Y: 5}, Target{Grid: grid, Trail: trail})

	want := 0
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			dx, dy := x-5, y-5
			c, ok := trail[core.Point{X: x, Y: y}]
			inside := dx*dx+dy*dy <= 9
			if inside != ok {
				t.Fatalf("(%d,%d) present=%v, want %v", x, y, ok, inside)
			}
			if ok {
				want++
				if c.Age != 0 || c.MaxAge != fade.DefaultMaxAge {
					t.Fatalf("(%d,%d) = %+v", x, y, c)
				}
			}
		}
	}
	if want != 29 {
		t.Fatalf("disc holds %d cells, want 29", want)
	}
}

func TestFadeClipsAtEdges(t *testing.T) {
	in := New(8)
	trail := fade.Trail{}
	in.Fade(core.Point{X: 0, Y: 0}, Target{Grid: core.Size{W: 4, H: 4}, Trail: trail})
	for p := range trail {
		if p.X < 0 || p.Y < 0 || p.X >= 4 || p.Y >= 4 {
			t.Fatalf("cell %v outside grid", p)
		}
	}
	if _, ok := trail[core.Point{X: 3, Y: 0}]; !ok {
		t.Fatal("in-range cell on the radius missing")
	}

	empty := fade.Trail{}
	in.Fade(core.Point{X: -10, Y: 50}, Target{Grid: core.Size{W: 4, H: 4}, Trail: empty})
	if len(empty) != 0 {
		t.Fatal("far out-of-range pointer spawned cells")
	}
}

func TestFadeReinjectFreshness(t *testing.T) {
	in := New(8)
	grid := core.Size{W: 10, H: 10}
	at := core.Point{X: 5, Y: 5}
	fresh := core.Point{X: 5, Y: 6}
	stale := core.Point{X: 6, Y: 5}
	trail := fade.Trail{
		fresh: {Age: 5, MaxAge: fade.DefaultMaxAge},
		stale: {Age: 6, MaxAge: fade.DefaultMaxAge},
	}
	in.Fade(at, Target{Grid: grid, Trail: trail})
	if trail[fresh].Age != 5 {
		t.Fatalf("fresh cell reset to age %d", trail[fresh].Age)
	}
	if trail[stale].Age != 0 {
		t.Fatalf("stale cell kept age %d", trail[stale].Age)
	}
}

func TestLifeStampsGliderAndNeverClears(t *testing.T) {
	in := New(8)
	accent := core.NewLattice(6, 6)
	accent.Set(0, 0, true)
	in.Life(core.Point{X: 2, Y: 2}, Target{Grid: accent.Size(), Accent: accent})

	for _, d := range Glider {
		if !accent.At(2+d.X, 2+d.Y) {
			t.Fatalf("pattern cell %v not set", d)
		}
	}
	if !accent.At(0, 0) {
		t.Fatal("injection cleared an existing cell")
	}
	if accent.Alive() != len(Glider)+1 {
		t.Fatalf("alive = %d, want %d", accent.Alive(), len(Glider)+1)
	}
}

func TestLifeClipsAtEdges(t *testing.T) {
	in := New(8)
	accent := core.NewLattice(3, 3)
	in.Life(core.Point{X: 2, Y: 2}, Target{Grid: accent.Size(), Accent: accent})
	// Only the top glider cell lands inside a 3x3 grid from the corner.
	if !accent.At(2, 1) {
		t.Fatal("in-range glider cell missing")
	}
	if accent.Alive() != 1 {
		t.Fatalf("alive = %d, want 1", accent.Alive())
	}
}

func TestCellMapping(t *testing.T) {
	in := New(8)
	raster := core.Size{W: 800, H: 600}

	// Unscaled surface offset by a 200px side panel.
	rect := Rect{Left: 200, Top: 0, Width: 800, Height: 600}
	if got := in.Cell(Pointer{X: 243, Y: 17}, rect, raster); got != (core.Point{X: 5, Y: 2}) {
		t.Fatalf("offset mapping = %v", got)
	}

	// Surface displayed at half size, scrolled up by 100px.
	rect = Rect{Left: 0, Top: -100, Width: 400, Height: 300}
	if got := in.Cell(Pointer{X: 20, Y: -96}, rect, raster); got != (core.Point{X: 5, Y: 1}) {
		t.Fatalf("scaled mapping = %v", got)
	}

	// Pointer left of the surface floors to a negative cell.
	rect = Rect{Left: 200, Width: 800, Height: 600}
	if got := in.Cell(Pointer{X: 199, Y: 0}, rect, raster); got.X != -1 {
		t.Fatalf("left of surface = %v", got)
	}
}

func TestInjectDispatchesOnMode(t *testing.T) {
	in := New(8)
	raster := core.Size{W: 80, H: 80}
	rect := Rect{Width: 80, Height: 80}
	grid := core.Size{W: 10, H: 10}

	trail := fade.Trail{}
	in.Inject(Pointer{X: 44, Y: 44}, rect, raster, core.ModeFade, Target{Grid: grid, Trail: trail})
	if _, ok := trail[core.Point{X: 5, Y: 5}]; !ok {
		t.Fatal("fade inject missed the pointer cell")
	}

	accent := core.NewLattice(10, 10)
	in.Inject(Pointer{X: 44, Y: 44}, rect, raster, core.ModeLife, Target{Grid: grid, Accent: accent})
	if accent.Alive() != len(Glider) {
		t.Fatalf("life inject set %d cells", accent.Alive())
	}
}
