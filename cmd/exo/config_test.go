package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/exo/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "exo.yaml")

	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writeDefaultConfig(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second write err = %v, want already exists", err)
	}
	if err := writeDefaultConfig(path, true); err != nil {
		t.Errorf("forced write: %v", err)
	}

	cfg := config.Default()
	if err := config.LoadFile(cfg, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("written config invalid: %v", err)
	}
}
