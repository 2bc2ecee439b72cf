package field

import (
	"log"
	"math/rand"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

// Canvas binds a Field to one surface and the host's frame loop for the
// lifetime of a mount.
type Canvas struct {
	rng     *rand.Rand
	surface render.Surface
	field   *Field

	cancelFrame  host.Cancel
	cancelResize host.Cancel
	mounted      bool
}

// NewCanvas returns an unmounted canvas. rng seeds every future mount.
func NewCanvas(rng *rand.Rand) *Canvas {
	return &Canvas{rng: rng}
}

// Mount seeds a fresh field at the current viewport size and starts the
// frame loop. Without a surface nothing starts; the animation is decorative
// and its absence is not an error.
func (c *Canvas) Mount(ctx *host.Context, s render.Surface) {
	if c.mounted {
		return
	}
	if s == nil || ctx == nil || ctx.Closed() {
		log.Printf("field: no drawing surface, animation disabled")
		return
	}

	w, h := ctx.Viewport.Size()
	c.surface = s
	c.field = New(w, h, config.ParticleCount, c.rng)
	c.mounted = true

	c.cancelResize = ctx.Viewport.Subscribe(c.field.Resize)

	c.cancelFrame = ctx.Frames.Every(func(uint64) {
		c.field.Step(c.surface)
	})
}

// Unmount stops the frame loop and detaches the resize listener.
func (c *Canvas) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.cancelFrame()
	c.cancelResize()
	c.cancelFrame, c.cancelResize = nil, nil
	c.field = nil
	c.surface = nil
}

// Mounted reports whether the frame loop is running.
func (c *Canvas) Mounted() bool { return c.mounted }

// Field returns the live field, or nil when unmounted.
func (c *Canvas) Field() *Field { return c.field }
