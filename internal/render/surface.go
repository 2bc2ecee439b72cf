// Package render holds the drawing contract shared by every component and
// backend, and a display list that decouples a component's frame callback
// from the backend's paint pass.
package render

import (
	"image/color"
	"math"
)

// Surface is a 2-D drawing target in viewport units. Colors are
// non-premultiplied; the alpha channel carries the stroke or fill opacity.
type Surface interface {
	Clear()
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	Text(x, y float64, s string, c color.NRGBA)
}

// WithAlpha returns c with its alpha set from an opacity in [0, 1].
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(alpha) * 255))
	return c
}

// Opacity returns the alpha channel of c as a value in [0, 1].
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
