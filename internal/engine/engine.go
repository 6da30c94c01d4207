// Package engine drives the background and accent grids frame by frame.
package engine

import (
	"errors"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/inject"
	"backdrop/internal/seed"
	"backdrop/internal/sims/fade"
	"backdrop/internal/store"
	"backdrop/internal/surface"
)

// ErrNoSurface is returned when there is nothing to draw on. Frontends treat
// it as "stay quiet" rather than a failure.
var ErrNoSurface = errors.New("engine: no surface")

// View is what a Renderer needs to draw one frame. The lattices and trail are
// only valid for the duration of the Render call.
type View struct {
	Raster   core.Size
	Grid     core.Size
	CellSize int

	Background *core.Lattice
	Mode       core.AccentMode
	Accent     *core.Lattice
	Trail      fade.Trail

	BackgroundOpacity float64
	AccentOpacity     float64
}

// Renderer paints a frame.
type Renderer interface {
	Render(v View)
}

// Engine owns the accent mode, the tick gates and the pending pointer.
type Engine struct {
	cfg      Config
	surface  *surface.Adapter
	store    *store.Store
	injector *inject.Injector
	renderer Renderer

	bgTick     *core.Interval
	accentTick *core.Interval

	pointer      inject.Pointer
	pointerMoved bool
	running      bool

	frames      int
	generations int
	accentGens  int
}

// New builds an engine on adapter, allocating grids for its current size.
// A nil adapter yields ErrNoSurface. A nil filler falls back to uniform
// random seeding; a nil renderer runs the simulation without drawing.
func New(cfg Config, adapter *surface.Adapter, filler seed.Filler, r Renderer) (*Engine, error) {
	if adapter == nil {
		return nil, ErrNoSurface
	}
	cfg = cfg.Validate()
	if filler == nil {
		filler = seed.NewRandom(cfg.Density)
	}
	in := inject.New(cfg.CellSize)
	in.Radius = cfg.Radius
	in.MaxAge = cfg.FadeLife

	e := &Engine{
		cfg:        cfg,
		surface:    adapter,
		store:      store.New(filler, cfg.Mode),
		injector:   in,
		renderer:   r,
		bgTick:     core.NewInterval(cfg.Interval),
		accentTick: core.NewInterval(cfg.Interval),
		running:    true,
	}
	e.store.Allocate(adapter.Grid())
	return e, nil
}

// Frame runs one frame: pending surface work, background tick, accent tick,
// pointer injection, render. A stopped or detached engine does nothing.
func (e *Engine) Frame(now time.Time) {
	if !e.running || e.surface.Detached() {
		return
	}
	if e.surface.Poll(now) {
		e.reallocate()
	}

	if e.bgTick.Ready(now) {
		e.store.Step(store.Background)
		e.generations++
	}

	switch e.store.Mode() {
	case core.ModeLife:
		if e.accentTick.Ready(now) {
			e.store.Step(store.Accent)
			e.accentGens++
		}
	case core.ModeFade:
		if e.cfg.FadeEveryFrame || e.accentTick.Ready(now) {
			e.store.AdvanceTrail()
			e.accentGens++
		}
	}

	if e.pointerMoved {
		e.injector.Inject(e.pointer, e.surface.Rect(), e.surface.Raster(), e.store.Mode(), e.target())
		e.pointerMoved = false
	}

	e.frames++
	if e.renderer != nil {
		e.renderer.Render(e.View())
	}
}

// PointerMoved records the latest pointer position in display space. The
// position is consumed by the next frame; earlier moves are dropped.
func (e *Engine) PointerMoved(x, y float64) {
	e.pointer = inject.Pointer{X: x, Y: y}
	e.pointerMoved = true
}

// Toggle flips the accent mode and discards all accent state.
func (e *Engine) Toggle() {
	e.SetMode(e.store.Mode().Toggled())
}

// SetMode switches to mode and discards all accent state.
func (e *Engine) SetMode(mode core.AccentMode) {
	e.store.SetMode(mode)
	e.accentTick.Reset()
}

// Mode reports the active accent mode.
func (e *Engine) Mode() core.AccentMode { return e.store.Mode() }

// Remeasure re-reads the layout immediately and reallocates on a size change.
func (e *Engine) Remeasure() {
	if e.surface.Detached() {
		return
	}
	if e.surface.Remeasure() {
		e.reallocate()
	}
}

// OnResize schedules a debounced remeasure after a viewport resize.
func (e *Engine) OnResize(now time.Time) { e.surface.OnResize(now) }

// OnScroll schedules a debounced check for document growth.
func (e *Engine) OnScroll(now time.Time) { e.surface.OnScroll(now) }

// OnBreakpoint schedules a debounced remeasure after a layout change.
func (e *Engine) OnBreakpoint(now time.Time) { e.surface.OnBreakpoint(now) }

// Stop pauses the frame loop. Frames are ignored until Start.
func (e *Engine) Stop() { e.running = false }

// Start resumes a stopped frame loop.
func (e *Engine) Start() { e.running = true }

// Running reports whether frames are being processed.
func (e *Engine) Running() bool { return e.running }

// View snapshots the drawable state.
func (e *Engine) View() View {
	return View{
		Raster:            e.surface.Raster(),
		Grid:              e.store.Size(),
		CellSize:          e.cfg.CellSize,
		Background:        e.store.Background(),
		Mode:              e.store.Mode(),
		Accent:            e.store.AccentLattice(),
		Trail:             e.store.Trail(),
		BackgroundOpacity: e.cfg.BackgroundOpacity,
		AccentOpacity:     e.cfg.AccentOpacity,
	}
}

// Store exposes the grid store.
func (e *Engine) Store() *store.Store { return e.store }

// Surface exposes the surface adapter.
func (e *Engine) Surface() *surface.Adapter { return e.surface }

func (e *Engine) reallocate() {
	e.store.Allocate(e.surface.Grid())
}

func (e *Engine) target() inject.Target {
	return inject.Target{
		Grid:   e.store.Size(),
		Accent: e.store.AccentLattice(),
		Trail:  e.store.Trail(),
	}
}
