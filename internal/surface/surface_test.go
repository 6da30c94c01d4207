package surface

import (
	"testing"
	"time"

	"backdrop/internal/core"
)

type fakeLayout struct {
	vw, vh  int
	doc     int
	panel   int
	fixed   bool
	scrollY int
}

func (f *fakeLayout) Viewport() (int, int) { return f.vw, f.vh }
func (f *fakeLayout) DocumentHeight() int { return f.doc }
func (f *fakeLayout) Panel() (int, bool) { return f.panel, f.fixed }
func (f *fakeLayout) ScrollY() int { return f.scrollY }

func TestMeasureFixedPanel(t *testing.T) {
	l := &fakeLayout{vw: 1400, vh: 900, doc: 2000, panel: 300, fixed: true}
	a := New(l, 8, DefaultDebounce)
	m := a.Metrics()
	if m != (Metrics{Width: 1100, Height: 2000, Left: 300}) {
		t.Fatalf("metrics = %+v", m)
	}
	if a.Grid() != (core.Size{W: 137, H: 250}) {
		t.Fatalf("grid = %+v", a.Grid())
	}
}

func TestMeasureRelativePanel(t *testing.T) {
	l := &fakeLayout{vw: 700, vh: 900, doc: 400, panel: 300, fixed: false}
	a := New(l, 8, DefaultDebounce)
	if m := a.Metrics(); m != (Metrics{Width: 700, Height: 900}) {
		t.Fatalf("metrics = %+v", m)
	}
}

func TestRectFollowsScroll(t *testing.T) {
	l := &fakeLayout{vw: 800, vh: 600, doc: 600, panel: 200, fixed: true, scrollY: 150}
	r := New(l, 8, DefaultDebounce).Rect()
	if r.Left != 200 || r.Top != -150 || r.Width != 600 || r.Height != 600 {
		t.Fatalf("rect = %+v", r)
	}
}

func TestResizeIsDebounced(t *testing.T) {
	l := &fakeLayout{vw: 800, vh: 600, doc: 600}
	a := New(l, 8, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	l.vw = 640
	a.OnResize(t0)
	a.OnResize(t0.Add(50 * time.Millisecond))
	if a.Poll(t0.Add(120 * time.Millisecond)) {
		t.Fatal("fired before the burst went quiet")
	}
	if !a.Poll(t0.Add(150 * time.Millisecond)) {
		t.Fatal("resize never fired")
	}
	if a.Metrics().Width != 640 {
		t.Fatalf("width = %d", a.Metrics().Width)
	}
	if a.Poll(t0.Add(time.Second)) {
		t.Fatal("fired twice for one burst")
	}
}

func TestResizeWithoutChangeReportsFalse(t *testing.T) {
	l := &fakeLayout{vw: 800, vh: 600, doc: 600}
	a := New(l, 8, 0)
	now := time.Unix(10, 0)
	a.OnResize(now)
	if a.Poll(now) {
		t.Fatal("unchanged dimensions reported as a change")
	}
}

func TestScrollOnlyGrows(t *testing.T) {
	l := &fakeLayout{vw: 800, vh: 600, doc: 1000}
	a := New(l, 8, 0)
	now := time.Unix(10, 0)

	l.doc = 900
	a.OnScroll(now)
	if a.Poll(now) || a.Metrics().Height != 1000 {
		t.Fatal("shrinking document triggered a remeasure")
	}

	l.doc = 1500
	a.OnScroll(now)
	if !a.Poll(now) || a.Metrics().Height != 1500 {
		t.Fatalf("growing document ignored, height=%d", a.Metrics().Height)
	}
}

func TestBreakpointRemeasures(t *testing.T) {
	l := &fakeLayout{vw: 1400, vh: 800, doc: 800, panel: 300, fixed: true}
	a := New(l, 8, 0)
	now := time.Unix(10, 0)

	l.fixed = false
	a.OnBreakpoint(now)
	if !a.Poll(now) {
		t.Fatal("breakpoint crossing not applied")
	}
	if m := a.Metrics(); m.Width != 1400 || m.Left != 0 {
		t.Fatalf("metrics = %+v", m)
	}
}

func TestDetachedPollIsNoop(t *testing.T) {
	l := &fakeLayout{vw: 800, vh: 600, doc: 600}
	a := New(l, 8, 0)
	now := time.Unix(10, 0)
	a.OnResize(now)
	a.Detach()
	l.vw = 100
	if a.Poll(now) {
		t.Fatal("detached adapter remeasured")
	}
	a.OnScroll(now)
	if a.Poll(now) || a.Metrics().Width != 800 {
		t.Fatal("detached adapter reacted to scroll")
	}
}
