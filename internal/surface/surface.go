// Package surface tracks the host drawing area and turns it into grid
// dimensions.
package surface

import (
	"time"

	"backdrop/internal/core"
	"backdrop/internal/inject"
)

// DefaultDebounce is the quiet period applied to resize, scroll and
// breakpoint bursts.
const DefaultDebounce = 100 * time.Millisecond

// Layout is implemented by the host that owns the page or window.
type Layout interface {
	// Viewport returns the visible host area in display pixels.
	Viewport() (w, h int)
	// DocumentHeight returns the full content height, which may exceed the
	// viewport.
	DocumentHeight() int
	// Panel returns the width of the side panel and whether it is pinned to
	// the left edge. A panel that is not pinned takes no horizontal space.
	Panel() (width int, fixed bool)
}

// Scroller is optionally implemented by layouts whose content scrolls
// vertically under a fixed pointer.
type Scroller interface {
	ScrollY() int
}

// Metrics is one measurement of the drawing area in raster pixels.
type Metrics struct {
	Width  int
	Height int
	Left   int
}

// Adapter measures the layout and debounces remeasure requests.
type Adapter struct {
	layout   Layout
	cellSize int

	metrics   Metrics
	docHeight int
	detached  bool

	resize     *core.Debounce
	scroll     *core.Debounce
	breakpoint *core.Debounce
}

// New returns an adapter bound to layout and takes an initial measurement.
func New(layout Layout, cellSize int, debounce time.Duration) *Adapter {
	if cellSize <= 0 {
		cellSize = 1
	}
	a := &Adapter{
		layout:     layout,
		cellSize:   cellSize,
		resize:     core.NewDebounce(debounce),
		scroll:     core.NewDebounce(debounce),
		breakpoint: core.NewDebounce(debounce),
	}
	a.Remeasure()
	return a
}

// Measure computes the drawing area without storing it.
func (a *Adapter) Measure() Metrics {
	vw, vh := a.layout.Viewport()
	m := Metrics{Width: vw, Height: max(vh, a.layout.DocumentHeight())}
	if pw, fixed := a.layout.Panel(); fixed && pw > 0 {
		m.Width -= pw
		m.Left = pw
	}
	if m.Width < 0 {
		m.Width = 0
	}
	if m.Height < 0 {
		m.Height = 0
	}
	return m
}

// Remeasure stores a fresh measurement and reports whether the pixel
// dimensions changed.
func (a *Adapter) Remeasure() bool {
	m := a.Measure()
	changed := m.Width != a.metrics.Width || m.Height != a.metrics.Height
	a.metrics = m
	a.docHeight = a.layout.DocumentHeight()
	return changed
}

// Metrics returns the last stored measurement.
func (a *Adapter) Metrics() Metrics { return a.metrics }

// CellSize returns the pixel edge of one grid cell.
func (a *Adapter) CellSize() int { return a.cellSize }

// Grid returns the grid dimensions for the stored measurement.
func (a *Adapter) Grid() core.Size {
	return core.Size{W: a.metrics.Width / a.cellSize, H: a.metrics.Height / a.cellSize}
}

// Raster returns the raster surface size in pixels.
func (a *Adapter) Raster() core.Size {
	return core.Size{W: a.metrics.Width, H: a.metrics.Height}
}

// Rect returns where the raster sits in display space. Content scrolled up
// moves the surface's top edge above the viewport.
func (a *Adapter) Rect() inject.Rect {
	r := inject.Rect{
		Left:   float64(a.metrics.Left),
		Width:  float64(a.metrics.Width),
		Height: float64(a.metrics.Height),
	}
	if s, ok := a.layout.(Scroller); ok {
		r.Top = -float64(s.ScrollY())
	}
	return r
}

// OnResize records a viewport resize.
func (a *Adapter) OnResize(now time.Time) { a.resize.Trigger(now) }

// OnScroll records a scroll that may have grown the document.
func (a *Adapter) OnScroll(now time.Time) { a.scroll.Trigger(now) }

// OnBreakpoint records a layout breakpoint crossing.
func (a *Adapter) OnBreakpoint(now time.Time) { a.breakpoint.Trigger(now) }

// Detach marks the mount point as gone. Pending and future requests become
// no-ops.
func (a *Adapter) Detach() {
	a.detached = true
	a.resize.Cancel()
	a.scroll.Cancel()
	a.breakpoint.Cancel()
}

// Detached reports whether the mount point has been removed.
func (a *Adapter) Detached() bool { return a.detached }

// Poll runs any debounced request whose quiet period has elapsed and reports
// whether the pixel dimensions changed. Scrolls only trigger a remeasure when
// the document grew.
func (a *Adapter) Poll(now time.Time) bool {
	if a.detached {
		return false
	}
	full := a.resize.Due(now)
	if a.breakpoint.Due(now) {
		full = true
	}
	if a.scroll.Due(now) && a.layout.DocumentHeight() > a.docHeight {
		full = true
	}
	if !full {
		return false
	}
	return a.Remeasure()
}
