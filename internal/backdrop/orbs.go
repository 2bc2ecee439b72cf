// Package backdrop draws the soft glow orbs that sit over the particle
// field and breathe on a slow, noise-perturbed pulse.
package backdrop

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

const (
	gradientAlpha = 0x33 / 255.0 // color stop at the centre
	gradientStop  = 0.7          // fades out at 70% of the radius
	noiseAmount   = 0.25
	noiseRate     = 0.35 // noise units per second
)

// Orbs animates the configured glow orbs.
type Orbs struct {
	orbs  []config.Orb
	noise *perlin.Perlin
	tps   float64

	width, height float64
	surface       render.Surface

	cancelFrame  host.Cancel
	cancelResize host.Cancel
	mounted      bool
}

// New returns unmounted orbs pulsing at tps frames per second.
func New(orbs []config.Orb, rng *rand.Rand, tps int) *Orbs {
	return &Orbs{
		orbs:  orbs,
		noise: perlin.NewPerlin(2, 2, 3, rng.Int63()),
		tps:   float64(tps),
	}
}

// Pulse returns the orb's opacity and scale at t seconds. Opacity moves
// between OrbMinAlpha and OrbMaxAlpha, scale between 1 and OrbMaxScale.
func (o *Orbs) Pulse(i int, t float64) (alpha, scale float64) {
	orb := o.orbs[i]
	period := config.OrbPeriodSec + orb.Delay

	// ease-in-out, alternating direction every period
	phase := math.Mod(t/period, 2)
	if phase > 1 {
		phase = 2 - phase
	}
	eased := (1 - math.Cos(phase*math.Pi)) / 2

	n := o.noise.Noise1D(t*noiseRate + float64(i)*7.3)
	p := clamp01(eased + n*noiseAmount)

	alpha = config.OrbMinAlpha + p*(config.OrbMaxAlpha-config.OrbMinAlpha)
	scale = 1 + p*(config.OrbMaxScale-1)
	return alpha, scale
}

// Centre returns the orb's centre for a viewport of width x height.
func Centre(orb config.Orb, width, height float64) (float64, float64) {
	x, y := orb.X, orb.Y
	if orb.RelX {
		x *= width
	}
	if orb.RelY {
		y *= height
	}
	return x + orb.Size/2, y + orb.Size/2
}

// Draw paints every orb at t seconds onto s.
func (o *Orbs) Draw(s render.Surface, t float64) {
	s.Clear()
	for i, orb := range o.orbs {
		alpha, scale := o.Pulse(i, t)
		cx, cy := Centre(orb, o.width, o.height)
		outer := orb.Size / 2 * scale * gradientStop

		c := config.Cyan
		if orb.Purple {
			c = config.Purple
		}
		// Stacked rings approximate the blurred radial gradient; the centre
		// accumulates every ring.
		ringAlpha := gradientAlpha * alpha / config.OrbRings
		for k := config.OrbRings; k >= 1; k-- {
			r := outer * float64(k) / config.OrbRings
			s.FillCircle(cx, cy, r, render.WithAlpha(c, ringAlpha))
		}
	}
}

// Mount starts the pulse loop on ctx. A nil surface leaves the orbs idle.
func (o *Orbs) Mount(ctx *host.Context, s render.Surface) {
	if o.mounted || s == nil || ctx == nil || ctx.Closed() {
		return
	}
	o.surface = s
	o.width, o.height = ctx.Viewport.Size()
	o.mounted = true

	o.cancelResize = ctx.Viewport.Subscribe(func(w, h float64) {
		o.width, o.height = w, h
	})

	o.cancelFrame = ctx.Frames.Every(func(n uint64) {
		o.Draw(o.surface, float64(n)/o.tps)
	})
}

// Unmount stops the pulse loop.
func (o *Orbs) Unmount() {
	if !o.mounted {
		return
	}
	o.mounted = false
	o.cancelFrame()
	o.cancelResize()
	o.surface = nil
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

