package render

import (
	"image"
	"image/color"

	"backdrop/internal/engine"
)

// Raster paints frames into an in-memory premultiplied RGBA buffer. It
// reallocates itself whenever the frame's raster size changes.
type Raster struct {
	img *image.RGBA
}

// NewRaster returns an empty raster; the buffer is sized by the first frame.
func NewRaster() *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

// Render implements engine.Renderer.
func (r *Raster) Render(v engine.View) {
	w, h := v.Raster.W, v.Raster.H
	if b := r.img.Bounds(); b.Dx() != w || b.Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	buf := r.img.Pix
	clearRGBA(buf)
	cs := v.CellSize
	if cs <= 0 {
		cs = 1
	}

	if bg := v.Background; bg != nil {
		cells := bg.Cells()
		for y := 0; y < bg.H; y++ {
			for x := 0; x < bg.W; x++ {
				if cells[y*bg.W+x] != 0 {
					fillRectRGBA(buf, w, h, x*cs, y*cs, cs, cs, BackgroundColor, v.BackgroundOpacity)
				}
			}
		}
	}

	if acc := v.Accent; acc != nil {
		cells := acc.Cells()
		for y := 0; y < acc.H; y++ {
			for x := 0; x < acc.W; x++ {
				if cells[y*acc.W+x] != 0 {
					fillRectRGBA(buf, w, h, x*cs, y*cs, cs, cs, AccentColor, v.AccentOpacity)
				}
			}
		}
	}
	for p, c := range v.Trail {
		fillRectRGBA(buf, w, h, p.X*cs, p.Y*cs, cs, cs, AccentColor, v.AccentOpacity*c.Alpha())
	}
}

// Image exposes the painted frame.
func (r *Raster) Image() *image.RGBA { return r.img }

// Pixels exposes the premultiplied RGBA bytes of the painted frame.
func (r *Raster) Pixels() []byte { return r.img.Pix }

// Size returns the dimensions of the painted frame.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Over returns the pixel at (x, y) composited over an opaque backdrop.
func (r *Raster) Over(x, y int, backdrop color.RGBA) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(r.img.Bounds())) {
		return backdrop
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	inv := 255 - int(p[3])
	return color.RGBA{
		R: uint8(int(p[0]) + int(backdrop.R)*inv/255),
		G: uint8(int(p[1]) + int(backdrop.G)*inv/255),
		B: uint8(int(p[2]) + int(backdrop.B)*inv/255),
		A: 255,
	}
}
