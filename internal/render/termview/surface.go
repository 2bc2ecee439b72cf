// Package termview runs the page in a terminal. Each cell stands for a
// CellWidth x CellHeight block of viewport units; shapes are rasterised into
// cells and blended over the page background.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

const (
	dotRune  = '•'
	lineRune = '·'
)

type cell struct {
	glyph rune
	fg    colorful.Color
	bg    colorful.Color
}

// Surface rasterises drawing calls into a grid of terminal cells.
type Surface struct {
	cols, rows int
	cells      []cell
	background colorful.Color
}

// NewSurface returns a cleared surface of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{background: toColorful(config.Background)}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the grid and clears it.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

// Size returns the grid size in cells.
func (s *Surface) Size() (int, int) { return s.cols, s.rows }

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{glyph: ' ', fg: s.background, bg: s.background}
	}
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / config.CellWidth)), int(math.Floor(y / config.CellHeight))
}

// FillCircle marks a dot for circles smaller than a cell and tints the
// background of every covered cell for larger ones.
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	fg, alpha := toColorful(c), render.Opacity(c)

	if r < config.CellWidth {
		col, row := toCell(cx, cy)
		if p := s.at(col, row); p != nil {
			p.glyph = dotRune
			p.fg = p.bg.BlendRgb(fg, alpha)
		}
		return
	}

	c0, r0 := toCell(cx-r, cy-r)
	c1, r1 := toCell(cx+r, cy+r)
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			x := (float64(col) + 0.5) * config.CellWidth
			y := (float64(row) + 0.5) * config.CellHeight
			if math.Hypot(x-cx, y-cy) > r {
				continue
			}
			p := s.at(col, row)
			p.bg = p.bg.BlendRgb(fg, alpha)
			if p.glyph == ' ' {
				p.fg = p.bg
			}
		}
	}
}

// StrokeLine walks the cells between the endpoints. Width is ignored; a
// cell is the thinnest mark a terminal can make.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c color.NRGBA) {
	fg, alpha := toColorful(c), render.Opacity(c)

	dx := (x1 - x0) / config.CellWidth
	dy := (y1 - y0) / config.CellHeight
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p := s.at(toCell(x0+(x1-x0)*t, y0+(y1-y0)*t))
		if p == nil || p.glyph == dotRune {
			continue
		}
		if p.glyph == ' ' {
			p.glyph = lineRune
			p.fg = p.bg
		}
		p.fg = p.fg.BlendRgb(fg, alpha)
	}
}

// Text writes one rune per cell starting at the cell holding (x, y).
func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	fg, alpha := toColorful(c), render.Opacity(c)
	col, row := toCell(x, y)
	for _, ch := range str {
		if p := s.at(col, row); p != nil {
			p.glyph = ch
			p.fg = p.bg.BlendRgb(fg, alpha)
		}
		col++
	}
}

// Cell returns the glyph and foreground colour at col, row.
func (s *Surface) Cell(col, row int) (rune, color.RGBA) {
	p := s.at(col, row)
	if p == nil {
		return 0, color.RGBA{}
	}
	r, g, b := p.fg.RGB255()
	return p.glyph, color.RGBA{r, g, b, 0xff}
}

// Show copies the grid onto screen.
func (s *Surface) Show(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			p := &s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Foreground(toTcell(p.fg)).Background(toTcell(p.bg))
			screen.SetContent(col, row, p.glyph, nil, style)
		}
	}
	screen.Show()
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
