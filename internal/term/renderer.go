package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"backdrop/internal/engine"
	"backdrop/internal/render"
)

var backdrop = color.RGBA{A: 255}

// Renderer rasterises frames and copies each pixel into a terminal cell as a
// background colour.
type Renderer struct {
	screen tcell.Screen
	raster *render.Raster
}

// NewRenderer returns a renderer drawing to screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, raster: render.NewRaster()}
}

// Render implements engine.Renderer.
func (r *Renderer) Render(v engine.View) {
	r.raster.Render(v)
	w, h := r.raster.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := r.raster.Over(x, y, backdrop)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	r.screen.Show()
}
