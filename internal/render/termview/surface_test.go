package termview

import (
	"image/color"
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

func TestSmallCircleIsDot(t *testing.T) {
	s := NewSurface(10, 5)
	s.FillCircle(3.5*config.CellWidth, 2.5*config.CellHeight, 1.5, render.WithAlpha(config.Cyan, 0.4))

	glyph, fg := s.Cell(3, 2)
	if glyph != dotRune {
		t.Fatalf("glyph = %q, want %q", glyph, dotRune)
	}
	if fg.B <= fg.R {
		t.Errorf("dot colour %+v is not tinted cyan", fg)
	}
	if g, _ := s.Cell(4, 2); g != ' ' {
		t.Errorf("neighbour glyph = %q, want blank", g)
	}
}

func TestLineMarksCellsBetweenEndpoints(t *testing.T) {
	s := NewSurface(20, 3)
	y := 1.5 * config.CellHeight
	s.StrokeLine(0.5*config.CellWidth, y, 9.5*config.CellWidth, y, 0.5, render.WithAlpha(config.Cyan, 0.15))

	for col := 0; col <= 9; col++ {
		if g, _ := s.Cell(col, 1); g != lineRune {
			t.Errorf("col %d glyph = %q, want %q", col, g, lineRune)
		}
	}
	if g, _ := s.Cell(10, 1); g != ' ' {
		t.Errorf("line ran past its end: %q", g)
	}
}

func TestLineDoesNotOverwriteDot(t *testing.T) {
	s := NewSurface(10, 1)
	y := 0.5 * config.CellHeight
	s.FillCircle(0.5*config.CellWidth, y, 1, render.WithAlpha(config.Cyan, 0.4))
	s.StrokeLine(0.5*config.CellWidth, y, 5.5*config.CellWidth, y, 0.5, render.WithAlpha(config.Cyan, 0.1))

	if g, _ := s.Cell(0, 0); g != dotRune {
		t.Errorf("dot replaced by %q", g)
	}
}

func TestLargeCircleTintsBackground(t *testing.T) {
	s := NewSurface(40, 20)
	cx, cy := 20*config.CellWidth, 10*config.CellHeight
	s.FillCircle(cx, cy, 5*config.CellHeight, render.WithAlpha(config.Purple, 0.5))

	centre := s.at(20, 10)
	if centre.glyph != ' ' {
		t.Errorf("large circle drew glyph %q", centre.glyph)
	}
	if centre.bg == s.background {
		t.Error("background not tinted inside the circle")
	}
	if corner := s.at(0, 0); corner.bg != s.background {
		t.Error("background tinted outside the circle")
	}
}

func TestTextAndClipping(t *testing.T) {
	s := NewSurface(5, 2)
	s.Text(3*config.CellWidth, config.CellHeight, "hello", color.NRGBA{255, 255, 255, 255})

	if g, _ := s.Cell(3, 1); g != 'h' {
		t.Errorf("cell (3,1) = %q, want h", g)
	}
	if g, _ := s.Cell(4, 1); g != 'e' {
		t.Errorf("cell (4,1) = %q, want e", g)
	}
	// off-grid writes are dropped
	s.Text(-100, -100, "x", color.NRGBA{A: 255})
	s.FillCircle(1e6, 1e6, 1, color.NRGBA{A: 255})
}

func TestClearResets(t *testing.T) {
	s := NewSurface(4, 4)
	s.Text(0, 0, "ab", config.White)
	s.Clear()
	if g, _ := s.Cell(0, 0); g != ' ' {
		t.Errorf("glyph after Clear = %q", g)
	}
}
