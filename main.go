package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/olivierh59500/particle-field-go/internal/backdrop"
	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/hero"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
	"github.com/olivierh59500/particle-field-go/internal/render/ebitenview"
	"github.com/olivierh59500/particle-field-go/internal/render/termview"
)

// page holds the mounted components and their layers, back to front.
type page struct {
	canvas  *field.Canvas
	orbs    *backdrop.Orbs
	overlay *hero.Overlay
	layers  []*render.Recorder
}

func newPage(cfg config.Config, rng *rand.Rand) *page {
	return &page{
		canvas:  field.NewCanvas(rng),
		orbs:    backdrop.New(config.Orbs, rng, cfg.TPS),
		overlay: hero.NewOverlay(config.Stats, cfg.TPS),
		layers:  []*render.Recorder{{}, {}, {}},
	}
}

func (p *page) mount(ctx *host.Context) {
	p.canvas.Mount(ctx, p.layers[0])
	p.orbs.Mount(ctx, p.layers[1])
	p.overlay.Mount(ctx, p.layers[2])
}

func (p *page) unmount() {
	p.overlay.Unmount()
	p.orbs.Unmount()
	p.canvas.Unmount()
}

func parseFlags(args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	fs := flag.NewFlagSet("particle-field", flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "render backend: window or term")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-based")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "frames per second")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to "+logDir)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := newPage(cfg, rand.New(rand.NewSource(seed)))
	log.Printf("starting %s backend, seed %d", cfg.Backend, seed)

	switch cfg.Backend {
	case config.BackendTerminal:
		screen, err := termview.OpenScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()

		ctx := host.New(termview.ViewportSize(screen.Size()))
		defer ctx.Close()
		p.mount(ctx)
		defer p.unmount()

		termview.New(screen, ctx, p.layers...).Run(cfg.TPS)
		return nil

	default:
		ctx := host.New(float64(cfg.Width), float64(cfg.Height))
		defer ctx.Close()
		p.mount(ctx)
		defer p.unmount()

		return ebitenview.Run(cfg, ebitenview.New(ctx, p.layers...))
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(1)
	}
}
