package render

import "image/color"

var (
	// BackgroundColor is the tint of background Life cells before opacity.
	BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// AccentColor is the tint of accent cells before opacity.
	AccentColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// clearRGBA resets buf to transparent black.
func clearRGBA(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// fillRectRGBA composites c at the given opacity over a w*h rectangle of a
// premultiplied RGBA buffer with the given row stride in pixels. The rectangle
// is clipped to the buffer.
func fillRectRGBA(buf []byte, stride, height, x0, y0, w, h int, c color.NRGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	x1, y1 := min(x0+w, stride), min(y0+h, height)
	x0, y0 = max(x0, 0), max(y0, 0)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	a := float64(c.A) / 255 * opacity
	sr := float64(c.R) * a
	sg := float64(c.G) * a
	sb := float64(c.B) * a
	sa := 255 * a
	inv := 1 - a
	for y := y0; y < y1; y++ {
		base := (y*stride + x0) * 4
		for x := x0; x < x1; x++ {
			buf[base+0] = uint8(sr + float64(buf[base+0])*inv + 0.5)
			buf[base+1] = uint8(sg + float64(buf[base+1])*inv + 0.5)
			buf[base+2] = uint8(sb + float64(buf[base+2])*inv + 0.5)
			buf[base+3] = uint8(sa + float64(buf[base+3])*inv + 0.5)
			base += 4
		}
	}
}
