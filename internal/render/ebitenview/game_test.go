package ebitenview

import (
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

func TestLayoutForwardsResize(t *testing.T) {
	ctx := host.New(800, 600)
	g := New(ctx, &render.Recorder{})
	var gotW, gotH float64
	ctx.Viewport.Subscribe(func(w, h float64) { gotW, gotH = w, h })

	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("Layout() = %dx%d, want 800x600", w, h)
	}
	if ctx.Viewport.Flush() {
		t.Error("unchanged layout reported a resize")
	}

	g.Layout(1024, 768)
	ctx.Tick()
	if gotW != 1024 || gotH != 768 {
		t.Errorf("listener saw %vx%v, want 1024x768", gotW, gotH)
	}
}
