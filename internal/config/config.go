package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Particle field
const (
	ParticleCount   = 80
	MaxSpeed        = 0.25 // per axis, per frame
	MinRadius       = 0.5
	MaxRadius       = 2.5
	ConnectDistance = 150.0
	FillAlpha       = 0.4
	EdgeAlpha       = 0.15
	EdgeWidth       = 0.5
)

// Window and frame loop
const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "InfosecData"
	TPS          = 60
	FrameMillis  = 16
)

// Text face glyph size in viewport units
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// Terminal cell size in viewport units, one glyph wide
const (
	CellWidth  = float64(GlyphWidth)
	CellHeight = 14.0
)

// Palette
var (
	Background = color.NRGBA{0x08, 0x0a, 0x14, 0xff}
	Cyan       = color.NRGBA{0x00, 0xd4, 0xff, 0xff}
	Purple     = color.NRGBA{0x7b, 0x2f, 0xf7, 0xff}
	White      = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Backend names accepted by Config.Backend
const (
	BackendWindow   = "window"
	BackendTerminal = "term"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings chosen at startup.
type Config struct {
	Backend string
	Width   int
	Height  int
	Seed    int64 // 0 seeds from the clock
	TPS     int
	Debug   bool
}

// DefaultConfig returns the default runtime configuration.
func DefaultConfig() Config {
	return Config{
		Backend: BackendWindow,
		Width:   WindowWidth,
		Height:  WindowHeight,
		TPS:     TPS,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}
