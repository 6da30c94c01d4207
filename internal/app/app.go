//go:build ebiten

package app

import (
	"fmt"
	"image"
	"time"

	"backdrop/internal/engine"
	"backdrop/internal/render"
	"backdrop/internal/surface"
	"backdrop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the background engine to the ebiten.Game interface.
type Game struct {
	layout  *WindowLayout
	engine  *engine.Engine
	painter *render.GridPainter
	hud     *ui.HUD

	cursor image.Point
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	ec, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	layout := NewWindowLayout(cfg.Width, cfg.Height, cfg.Panel, cfg.Breakpoint)
	painter := render.NewGridPainter()
	eng, err := engine.New(ec, surface.New(layout, ec.CellSize, ec.Debounce), cfg.Filler(), painter)
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	return &Game{
		layout:  layout,
		engine:  eng,
		painter: painter,
		hud:     ui.NewHUD(eng, cfg.Panel),
		cursor:  image.Pt(-1, -1),
	}, nil
}

// Update handles input and advances the engine by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || g.panelClicked() {
		g.engine.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Stop()
		} else {
			g.engine.Start()
		}
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.layout.ToggleHidden()
		g.engine.OnBreakpoint(now)
	}

	if x, y := ebiten.CursorPosition(); x != g.cursor.X || y != g.cursor.Y {
		g.cursor = image.Pt(x, y)
		g.engine.PointerMoved(float64(x), float64(y))
	}

	g.engine.Frame(now)
	return nil
}

// Draw renders the last frame and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.engine.Surface().Metrics().Left)
	if g.layout.Pinned() {
		g.hud.Draw(screen)
	}
}

// Layout tracks the window size; the logical screen matches it one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	resized, crossed := g.layout.Resize(outsideWidth, outsideHeight)
	now := time.Now()
	if resized {
		g.engine.OnResize(now)
	}
	if crossed {
		g.engine.OnBreakpoint(now)
	}
	return outsideWidth, outsideHeight
}

// panelClicked reports a left click on the pinned panel, which acts as the
// mode toggle.
func (g *Game) panelClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || !g.layout.Pinned() {
		return false
	}
	x, _ := ebiten.CursorPosition()
	return x < g.engine.Surface().Metrics().Left
}
