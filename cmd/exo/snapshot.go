package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/exo/internal/config"
	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/render"
	"github.com/taigrr/exo/pkg/world"
	"go.uber.org/zap"
)

// snapshotDt is the fixed tick used for headless runs.
const snapshotDt = 1.0 / 60

func newSnapshotCmd() *cobra.Command {
	var (
		frames int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fly forward headless and save the last frame as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd, true)
			if err != nil {
				return err
			}
			stats, err := snapshot(cfg, log, frames, out)
			if err != nil {
				return err
			}
			cmd.Printf("wrote %s (%dx%d, %d objects, %d culled)\n",
				out, cfg.Render.Width, cfg.Render.Height, stats.Objects, stats.Culled)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 120, "ticks to simulate before rendering")
	cmd.Flags().StringVarP(&out, "out", "o", "exo.png", "output PNG path")
	return cmd
}

// snapshot simulates frames ticks at full forward thrust, renders one frame
// and writes it to out.
func snapshot(cfg *config.Config, log *zap.Logger, frames int, out string) (render.DrawStats, error) {
	if frames < 0 {
		return render.DrawStats{}, fmt.Errorf("frames must not be negative, got %d", frames)
	}

	w, err := world.New(cfg, world.NewRand(cfg.Scene.Seed), log)
	if err != nil {
		return render.DrawStats{}, fmt.Errorf("building world: %w", err)
	}
	r := w.NewRasterizer(render.NewFramebuffer(cfg.Render.Width, cfg.Render.Height))

	w.Ship.SetControl(flight.Front, w.Ship.Stats.MaxThrust)
	for range frames {
		w.Update(snapshotDt)
	}
	w.Draw(r, snapshotDt)

	if err := r.Framebuffer().SavePNG(out); err != nil {
		return render.DrawStats{}, fmt.Errorf("saving snapshot: %w", err)
	}
	log.Info("snapshot saved",
		zap.String("path", out),
		zap.Int("frames", frames),
		zap.Int("objects", r.Stats.Objects),
		zap.Int("culled", r.Stats.Culled),
	)
	return r.Stats, nil
}
