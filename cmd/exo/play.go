package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/exo/pkg/render"
	"github.com/taigrr/exo/pkg/world"
	"go.uber.org/zap"
)

// maxFrameTime caps dt after a stall so the ship does not leap.
const maxFrameTime = 100 * time.Millisecond

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Fly in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}

	w, err := world.New(cfg, world.NewRand(cfg.Scene.Seed), log)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	// Each terminal cell holds two framebuffer rows.
	fb := render.NewFramebuffer(width, height*2)
	r := w.NewRasterizer(fb)
	log.Info("terminal session started", zap.Int("cols", width), zap.Int("rows", height))

	var in holdInput
	ctx := cmd.Context()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)
				r.SetFramebuffer(fb)
			case uv.KeyPressEvent:
				if in.press(keyAction(ev.MatchString), w.Ship) {
					log.Info("quit", zap.Int("jumps", w.Ship.Jumps()))
					return nil
				}
			case uv.KeyReleaseEvent:
				in.release(keyAction(ev.MatchString))
			}

		case now := <-ticker.C:
			elapsed := min(now.Sub(last), maxFrameTime)
			last = now
			dt := elapsed.Seconds()

			in.apply(w.Ship, elapsed)
			w.Update(dt)
			w.Draw(r, dt)

			fb.Draw(term, uv.Rect(0, 0, width, height))
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

// keyAction names the game action for a key event, given its matcher, or ""
// when the key is unbound.
func keyAction(match func(...string) bool) string {
	switch {
	case match("escape", "ctrl+c"):
		return actionQuit
	case match("space"):
		return actionBrake
	case match("tab"):
		return actionBoost
	case match("g"):
		return actionJump
	}
	for _, key := range world.ThrustKeys {
		if match(key) {
			return key
		}
	}
	return ""
}
