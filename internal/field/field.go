package field

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

// Particle struct: a drifting point drawn as a disk
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, units per frame
	Radius float64
}

// Field struct: fixed set of particles bounded by the viewport
type Field struct {
	Width, Height float64
	Particles     []*Particle
	fill          color.NRGBA
	edge          color.NRGBA
}

// New seeds n particles uniformly inside width x height
func New(width, height float64, n int, rng *rand.Rand) *Field {
	f := &Field{
		Width:     width,
		Height:    height,
		Particles: make([]*Particle, n),
		fill:      render.WithAlpha(config.Cyan, config.FillAlpha),
		edge:      config.Cyan,
	}

	for i := range f.Particles {
		f.Particles[i] = &Particle{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			VX:     (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			VY:     (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			Radius: config.MinRadius + rng.Float64()*(config.MaxRadius-config.MinRadius),
		}
	}

	return f
}

// Resize moves the reflection boundaries. Particles keep their positions,
// so some may sit outside smaller bounds until they reflect back.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

// advance moves p one frame and flips any velocity component whose
// coordinate left [0, bound]. Position is never clamped.
func (f *Field) advance(p *Particle) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > f.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > f.Height {
		p.VY = -p.VY
	}
}

// Step advances every particle one frame and redraws the field onto s.
//
// Particle i is moved before its edges are drawn, so an edge from i to a
// later j uses j's position from the previous frame. The pair loop is
// O(n²); fine for the fixed small count, it would need a spatial index to
// scale.
func (f *Field) Step(s render.Surface) {
	s.Clear()

	for i, p := range f.Particles {
		f.advance(p)
		s.FillCircle(p.X, p.Y, p.Radius, f.fill)

		for _, q := range f.Particles[i+1:] {
			if alpha, ok := Connection(p, q); ok {
				s.StrokeLine(p.X, p.Y, q.X, q.Y, config.EdgeWidth, render.WithAlpha(f.edge, alpha))
			}
		}
	}
}

// Update advances every particle one frame without drawing.
func (f *Field) Update() {
	for _, p := range f.Particles {
		f.advance(p)
	}
}

// Distance returns the Euclidean distance between two particles.
func Distance(a, b *Particle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// EdgeAlpha maps a distance to edge opacity: EdgeAlpha at 0, falling
// linearly to 0 at ConnectDistance and beyond.
func EdgeAlpha(dist float64) float64 {
	if dist >= config.ConnectDistance {
		return 0
	}
	alpha := config.EdgeAlpha * (1 - dist/config.ConnectDistance)
	return math.Min(math.Max(alpha, 0), config.EdgeAlpha)
}

// Connection reports whether a and b are joined by an edge, and its opacity.
func Connection(a, b *Particle) (float64, bool) {
	dist := Distance(a, b)
	if dist >= config.ConnectDistance {
		return 0, false
	}
	return EdgeAlpha(dist), true
}
