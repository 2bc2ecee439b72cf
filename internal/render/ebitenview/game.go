// Package ebitenview runs the page in an ebiten window. Update drives the
// host frame loop; Draw composites the component layers.
package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/host"
	"github.com/olivierh59500/particle-field-go/internal/render"
)

// Game adapts a host context and its layers to ebiten.Game.
type Game struct {
	ctx           *host.Context
	layers        []*render.Recorder
	width, height int
}

// New returns a game painting layers back to front.
func New(ctx *host.Context, layers ...*render.Recorder) *Game {
	w, h := ctx.Viewport.Size()
	return &Game{
		ctx:    ctx,
		layers: layers,
		width:  int(w),
		height: int(h),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.ctx.Tick()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	render.Composite(&Surface{Dst: screen}, g.layers...)
}

// Layout follows the window size so the field always covers it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctx.Viewport.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(cfg config.Config, g *Game) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
