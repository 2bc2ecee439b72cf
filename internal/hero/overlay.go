// Package hero draws the text that sits above the particle field: a badge,
// the headline and tagline that spring into view once loaded, and a row of
// count-up stats.
package hero

import (
	"image/color"

	"github.com/charmbracelet/harmonica"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

const statSpacing = 180.0

// Overlay is the hero text layer.
type Overlay struct {
	stats    []config.Stat
	counters []*Counter

	spring   harmonica.Spring
	opacity  float64
	velocity float64

	delayFrames uint64
	startFrame  uint64

	width, height float64
	surface       render.Surface
	cancelFrame   host.Cancel
	cancelResize  host.Cancel
	mounted       bool
}

// NewOverlay returns an unmounted overlay animating at tps frames per second.
func NewOverlay(stats []config.Stat, tps int) *Overlay {
	return &Overlay{
		stats:       stats,
		spring:      harmonica.NewSpring(harmonica.FPS(tps), config.RevealSpringFreq, config.RevealSpringDamping),
		delayFrames: uint64(config.RevealDelayMillis * tps / 1000),
	}
}

// Revealed reports whether the load delay has passed.
func (o *Overlay) Revealed() bool { return o.counters != nil }

// Opacity is the current reveal progress in [0, 1].
func (o *Overlay) Opacity() float64 { return clamp01(o.opacity) }

// Offset is the current downward slide of the text.
func (o *Overlay) Offset() float64 {
	return config.RevealOffset * (1 - o.Opacity())
}

// Counters returns the stat counters, nil until revealed.
func (o *Overlay) Counters() []*Counter { return o.counters }

// Advance moves the reveal and counters forward by one frame, n frames
// after mount.
func (o *Overlay) Advance(n uint64) {
	if n < o.delayFrames {
		return
	}
	if o.counters == nil {
		o.counters = make([]*Counter, len(o.stats))
		for i, s := range o.stats {
			o.counters[i] = NewCounter(s.Value, s.Suffix, config.CounterDurationMs)
		}
	}
	o.opacity, o.velocity = o.spring.Update(o.opacity, o.velocity, 1)
	for _, c := range o.counters {
		c.Tick()
	}
}

// Draw paints the overlay onto s.
func (o *Overlay) Draw(s render.Surface) {
	s.Clear()
	if !o.Revealed() {
		return
	}
	alpha := o.Opacity()
	cy := o.height/2 + o.Offset()

	o.centred(s, cy-110, config.Badge, render.WithAlpha(config.Cyan, alpha))
	o.centred(s, cy-70, config.Headline, render.WithAlpha(config.White, alpha))
	o.centred(s, cy-40, config.Tagline, render.WithAlpha(config.White, 0.6*alpha))

	left := o.width/2 - statSpacing*float64(len(o.counters)-1)/2
	for i, c := range o.counters {
		x := left + statSpacing*float64(i)
		o.centredAt(s, x, cy+20, c.String(), render.WithAlpha(config.Cyan, alpha))
		o.centredAt(s, x, cy+40, o.stats[i].Label, render.WithAlpha(config.White, 0.5*alpha))
	}
}

func (o *Overlay) centred(s render.Surface, y float64, text string, c color.NRGBA) {
	o.centredAt(s, o.width/2, y, text, c)
}

func (o *Overlay) centredAt(s render.Surface, x, y float64, text string, c color.NRGBA) {
	s.Text(x-float64(len(text)*config.GlyphWidth)/2, y, text, c)
}

// Mount starts the overlay on ctx. A nil surface leaves it idle.
func (o *Overlay) Mount(ctx *host.Context, s render.Surface) {
	if o.mounted || s == nil || ctx == nil || ctx.Closed() {
		return
	}
	o.surface = s
	o.width, o.height = ctx.Viewport.Size()
	o.mounted = true
	o.startFrame = ctx.Frames.Frame()

	o.cancelResize = ctx.Viewport.Subscribe(func(w, h float64) {
		o.width, o.height = w, h
	})
	o.cancelFrame = ctx.Frames.Every(func(n uint64) {
		o.Advance(n - o.startFrame)
		o.Draw(o.surface)
	})
}

// Unmount stops the overlay.
func (o *Overlay) Unmount() {
	if !o.mounted {
		return
	}
	o.mounted = false
	o.cancelFrame()
	o.cancelResize()
	o.surface = nil
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
