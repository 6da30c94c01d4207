// Package term runs the background in a terminal.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"backdrop/internal/engine"
	"backdrop/internal/seed"
	"backdrop/internal/surface"
)

// FrameInterval is the frame period of the terminal loop (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// App wires a tcell screen to the engine.
type App struct {
	screen tcell.Screen
	layout *Layout
	engine *engine.Engine
}

// New binds an initialised screen to a fresh engine. A nil screen yields
// engine.ErrNoSurface.
func New(screen tcell.Screen, cfg engine.Config, filler seed.Filler) (*App, error) {
	if screen == nil {
		return nil, engine.ErrNoSurface
	}
	cfg = cfg.Validate()
	w, h := screen.Size()
	layout := &Layout{w: w, h: h}
	eng, err := engine.New(cfg, surface.New(layout, cfg.CellSize, cfg.Debounce), filler, NewRenderer(screen))
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &App{screen: screen, layout: layout, engine: eng}, nil
}

// Engine exposes the running engine.
func (a *App) Engine() *engine.Engine { return a.engine }

// Handle applies one input event. It returns false when the user asked to
// quit.
func (a *App) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			a.engine.Toggle()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if a.engine.Running() {
				a.engine.Stop()
			} else {
				a.engine.Start()
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.engine.PointerMoved(float64(x), float64(y))
	case *tcell.EventResize:
		if a.layout.Resize(ev.Size()) {
			a.engine.OnResize(now)
			a.screen.Sync()
		}
	}
	return true
}

// Run drives the frame loop until ctx is cancelled or the user quits. Input
// events and frames are handled on the calling goroutine.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !a.Handle(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			a.engine.Frame(now)
		}
	}
}
