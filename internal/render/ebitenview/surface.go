package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface draws onto an ebiten image.
type Surface struct {
	Dst *ebiten.Image
}

func (s *Surface) Clear() { s.Dst.Clear() }

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.Dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	vector.StrokeLine(s.Dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Text takes the top-left corner; the face draws from the baseline.
func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	text.Draw(s.Dst, str, basicfont.Face7x13, int(x), int(y)+basicfont.Face7x13.Ascent, c)
}
