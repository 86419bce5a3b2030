// exo-window runs exo in a desktop window instead of the terminal. Keys are
// polled every tick, so holds and releases are exact.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/taigrr/exo/internal/config"
	"github.com/taigrr/exo/internal/logger"
	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/render"
	"github.com/taigrr/exo/pkg/world"
	"go.uber.org/zap"
)

const windowScale = 3

func main() {
	cmd := &cobra.Command{
		Use:          "exo-window",
		Short:        "Fly exo in a desktop window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	config.BindFlags(cmd.Flags())

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Logging.Level, cfg.Logging.File, true)
	defer logger.Sync()

	w, err := world.New(cfg, world.NewRand(cfg.Scene.Seed), log)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	g := &game{
		world: w,
		r:     w.NewRasterizer(render.NewFramebuffer(cfg.Render.Width, cfg.Render.Height)),
		img:   ebiten.NewImage(cfg.Render.Width, cfg.Render.Height),
		dt:    1 / float64(cfg.Terminal.FPS),
	}

	ebiten.SetWindowTitle("exo")
	ebiten.SetWindowSize(cfg.Render.Width*windowScale, cfg.Render.Height*windowScale)
	ebiten.SetTPS(cfg.Terminal.FPS)
	log.Info("window opened", zap.Int("width", cfg.Render.Width), zap.Int("height", cfg.Render.Height))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	world *world.World
	r     *render.Rasterizer
	img   *ebiten.Image
	dt    float64
}

// keyFor maps a thrust key letter to its ebiten key.
var keyFor = map[string]ebiten.Key{
	"a": ebiten.KeyA, "d": ebiten.KeyD, "r": ebiten.KeyR, "f": ebiten.KeyF,
	"w": ebiten.KeyW, "s": ebiten.KeyS, "j": ebiten.KeyJ, "l": ebiten.KeyL,
	"k": ebiten.KeyK, "i": ebiten.KeyI, "u": ebiten.KeyU, "o": ebiten.KeyO,
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ship := g.world.Ship
	for t := range flight.NumThrust {
		v := 0.0
		if ebiten.IsKeyPressed(keyFor[world.ThrustKeys[t]]) {
			v = ship.Stats.Rated(t)
		}
		ship.SetControl(t, v)
	}
	ship.Brake = ebiten.IsKeyPressed(ebiten.KeySpace)
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ship.Boost()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		world.ToggleJump(ship)
	}

	g.world.Update(g.dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.Draw(g.r, g.dt)
	g.img.WritePixels(g.r.Framebuffer().ToImage().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.r.Width(), g.r.Height()
}
