package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/exo/internal/config"
	"go.uber.org/zap"
)

func TestSnapshot(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 96, 64
	cfg.Scene.Seed = 3
	cfg.Scene.Asteroids = 10
	out := filepath.Join(t.TempDir(), "frame.png")

	stats, err := snapshot(cfg, zap.NewNop(), 30, out)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if stats.Objects < 1+cfg.Scene.Asteroids {
		t.Errorf("drew %d objects, want at least %d", stats.Objects, 1+cfg.Scene.Asteroids)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 64 {
		t.Errorf("image is %v, want 96x64", b)
	}
}

func TestSnapshotRejectsNegativeFrames(t *testing.T) {
	if _, err := snapshot(config.Default(), zap.NewNop(), -1, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error for negative frames")
	}
}
