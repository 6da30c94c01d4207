//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"backdrop/internal/engine"
)

// GridPainter uploads rasterised frames into an ebiten image.
type GridPainter struct {
	raster *Raster
	img    *ebiten.Image
}

// NewGridPainter allocates a painter; the image is sized by the first frame.
func NewGridPainter() *GridPainter {
	return &GridPainter{raster: NewRaster()}
}

// Render implements engine.Renderer.
func (gp *GridPainter) Render(v engine.View) {
	gp.raster.Render(v)
	w, h := gp.raster.Size()
	if w == 0 || h == 0 {
		return
	}
	if gp.img == nil || gp.img.Bounds().Dx() != w || gp.img.Bounds().Dy() != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(w, h)
	}
	gp.img.WritePixels(gp.raster.Pixels())
}

// Draw blits the last rendered frame at the given horizontal offset.
func (gp *GridPainter) Draw(dst *ebiten.Image, offsetX int) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.raster.Size() }
