package termview

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

// View drives a host context from a tcell screen.
type View struct {
	screen  tcell.Screen
	ctx     *host.Context
	surface *Surface
	layers  []*render.Recorder
}

// ViewportSize converts a terminal size to viewport units.
func ViewportSize(cols, rows int) (float64, float64) {
	return float64(cols) * config.CellWidth, float64(rows) * config.CellHeight
}

// New wraps an initialised screen.
func New(screen tcell.Screen, ctx *host.Context, layers ...*render.Recorder) *View {
	cols, rows := screen.Size()
	return &View{
		screen:  screen,
		ctx:     ctx,
		surface: NewSurface(cols, rows),
		layers:  layers,
	}
}

// Paint composites every layer and shows the result.
func (v *View) Paint() {
	v.surface.Clear()
	render.Composite(v.surface, v.layers...)
	v.surface.Show(v.screen)
}

// Handle processes one terminal event and reports whether to keep running.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.surface.Resize(cols, rows)
		v.ctx.Viewport.Resize(ViewportSize(cols, rows))
		v.screen.Sync()
		log.Printf("termview: resized to %dx%d cells", cols, rows)
	}
	return true
}

// Run ticks and paints at tps until a quit key or the screen goes away.
func (v *View) Run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || ev == nil || !v.Handle(ev) {
				return
			}

		case <-ticker.C:
			v.ctx.Tick()
			v.Paint()
		}
	}
}

// OpenScreen creates and initialises the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}
