package term

// Layout reports the terminal as the host surface: one character cell per
// raster pixel, no side panel and no content below the fold.
type Layout struct {
	w, h int
}

// Viewport implements surface.Layout.
func (l *Layout) Viewport() (int, int) { return l.w, l.h }

// DocumentHeight implements surface.Layout.
func (l *Layout) DocumentHeight() int { return l.h }

// Panel implements surface.Layout.
func (l *Layout) Panel() (int, bool) { return 0, false }

// Resize records a new terminal size and reports whether it changed.
func (l *Layout) Resize(w, h int) bool {
	if w == l.w && h == l.h {
		return false
	}
	l.w, l.h = w, h
	return true
}
