package hero

import (
	"strings"
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

func TestOverlayHiddenUntilDelay(t *testing.T) {
	o := NewOverlay(config.Stats, 60)
	var rec render.Recorder

	for n := uint64(1); n < 6; n++ {
		o.Advance(n)
		o.Draw(&rec)
		if o.Revealed() || rec.Len() != 0 {
			t.Fatalf("frame %d: revealed before the load delay", n)
		}
	}
	o.Advance(6)
	if !o.Revealed() {
		t.Fatal("not revealed at frame 6")
	}
}

func TestOverlaySpringsIn(t *testing.T) {
	o := NewOverlay(config.Stats, 60)
	prev := -1.0
	for n := uint64(1); n <= 240; n++ {
		o.Advance(n)
		if o.Opacity() < prev-1e-9 {
			t.Fatalf("frame %d: opacity fell from %v to %v", n, prev, o.Opacity())
		}
		prev = o.Opacity()
	}
	if o.Opacity() < 0.99 {
		t.Errorf("opacity = %v after 4s, want ~1", o.Opacity())
	}
	if o.Offset() > 0.3 {
		t.Errorf("offset = %v after 4s, want ~0", o.Offset())
	}
	for i, c := range o.Counters() {
		if !c.Done() {
			t.Errorf("counter %d still running after 4s", i)
		}
	}
}

func TestOverlayDrawsStats(t *testing.T) {
	o := NewOverlay(config.Stats, 60)
	o.width, o.height = 1280, 800
	for n := uint64(1); n <= 200; n++ {
		o.Advance(n)
	}
	var rec render.Recorder
	o.Draw(&rec)

	var texts []string
	for _, op := range rec.Ops() {
		if op.Kind != render.OpText {
			t.Fatalf("unexpected op %v", op.Kind)
		}
		texts = append(texts, op.Text)
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{config.Headline, "500+", "15M+", "99.9%", "12+", "Years Experience"} {
		if !strings.Contains(joined, want) {
			t.Errorf("overlay missing %q in %q", want, joined)
		}
	}
}

func TestOverlayLifecycle(t *testing.T) {
	ctx := host.New(1280, 800)
	for i := 0; i < 3; i++ {
		ctx.Tick()
	}
	o := NewOverlay(config.Stats, 60)
	o.Mount(ctx, &render.Recorder{})

	for i := 0; i < 5; i++ {
		ctx.Tick()
	}
	if o.Revealed() {
		t.Error("delay not measured from mount")
	}
	ctx.Tick()
	if !o.Revealed() {
		t.Error("not revealed six frames after mount")
	}

	o.Unmount()
	if ctx.Frames.Pending() != 0 || ctx.Viewport.Listeners() != 0 {
		t.Errorf("pending=%d listeners=%d after Unmount", ctx.Frames.Pending(), ctx.Viewport.Listeners())
	}
}
