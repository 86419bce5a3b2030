// exo is an arcade space-flight sim drawn by a software rasterizer.
//
// Controls:
//
//	W/S     - Forward / back thrust
//	A/D     - Strafe left / right
//	R/F     - Strafe up / down
//	I/K     - Pitch down / up
//	J/L     - Yaw left / right
//	U/O     - Roll counter-clockwise / clockwise
//	Space   - Brake assist
//	Tab     - Boost
//	G       - Charge jump (again to cancel, or to drop out of a jump)
//	Esc     - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/exo/internal/config"
	"github.com/taigrr/exo/internal/logger"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "exo",
		Short: "Fly a wireframe ship through an asteroid field in your terminal",
		Long: `exo renders a six-degree-of-freedom space flight sim entirely on the CPU
and presents it with half-block characters. Settings come from exo.yaml,
the user config directory, or flags.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runPlay,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newPlayCmd(), newSnapshotCmd(), newConfigCmd())
	return root
}

// setup loads the configuration for cmd and initializes logging. Console
// logging is only enabled for commands that do not own the screen.
func setup(cmd *cobra.Command, console bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log := logger.Init(cfg.Logging.Level, cfg.Logging.File, console)
	log.Debug("config loaded",
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.Uint64("seed", cfg.Scene.Seed),
	)
	return cfg, log, nil
}
