package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpCircle OpKind = iota
	OpLine
	OpText
)

// Op is one recorded drawing call. Unused fields are zero.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	R      float64 // circle radius
	Width  float64 // line width
	Text   string
	Color  color.NRGBA
}

// Recorder is a Surface that keeps the calls since the last Clear. A
// component draws into it from its frame callback; the backend replays it
// when painting.
type Recorder struct {
	ops []Op
}

func (r *Recorder) Clear() { r.ops = r.ops[:0] }

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X0: cx, Y0: cy, R: rad, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, X0: x, Y0: y, Text: s, Color: c})
}

// Ops returns the recorded calls. The slice is reused after the next Clear.
func (r *Recorder) Ops() []Op { return r.ops }

// Len reports how many calls are recorded.
func (r *Recorder) Len() int { return len(r.ops) }

// Replay issues every recorded call on dst, in order. dst is not cleared.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpCircle:
			dst.FillCircle(op.X0, op.Y0, op.R, op.Color)
		case OpLine:
			dst.StrokeLine(op.X0, op.Y0, op.X1, op.Y1, op.Width, op.Color)
		case OpText:
			dst.Text(op.X0, op.Y0, op.Text, op.Color)
		}
	}
}

// Composite replays layers back to front onto dst.
func Composite(dst Surface, layers ...*Recorder) {
	for _, l := range layers {
		if l != nil {
			l.Replay(dst)
		}
	}
}
