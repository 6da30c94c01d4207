package app

// WindowLayout describes a desktop window with an optional side panel pinned
// to its left edge. Below the breakpoint the panel is not pinned and the
// surface takes the whole width.
type WindowLayout struct {
	width, height int
	panel         int
	breakpoint    int
	hidden        bool
}

// NewWindowLayout returns a layout for a window of the given size.
func NewWindowLayout(w, h, panel, breakpoint int) *WindowLayout {
	return &WindowLayout{width: w, height: h, panel: panel, breakpoint: breakpoint}
}

// Viewport implements surface.Layout.
func (l *WindowLayout) Viewport() (int, int) { return l.width, l.height }

// DocumentHeight implements surface.Layout. A window has no content below
// the fold.
func (l *WindowLayout) DocumentHeight() int { return l.height }

// Panel implements surface.Layout.
func (l *WindowLayout) Panel() (int, bool) {
	if l.hidden || l.panel <= 0 {
		return 0, false
	}
	return l.panel, l.width > l.breakpoint
}

// Pinned reports whether the panel currently occupies the left edge.
func (l *WindowLayout) Pinned() bool {
	_, fixed := l.Panel()
	return fixed
}

// Resize records a new window size. It reports whether the size changed and
// whether the panel crossed the breakpoint.
func (l *WindowLayout) Resize(w, h int) (resized, crossed bool) {
	if w == l.width && h == l.height {
		return false, false
	}
	before := l.Pinned()
	l.width, l.height = w, h
	return true, before != l.Pinned()
}

// ToggleHidden shows or hides the panel.
func (l *WindowLayout) ToggleHidden() { l.hidden = !l.hidden }
