// Package config handles exo configuration: defaults, a YAML file and
// command-line overrides.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/render"
)

// Config holds all game configuration.
type Config struct {
	Render    RenderConfig   `yaml:"render"`
	Ship      ShipConfig     `yaml:"ship"`
	Camera    CameraConfig   `yaml:"camera"`
	Scene     SceneConfig    `yaml:"scene"`
	Particles ParticleConfig `yaml:"particles"`
	HUD       HUDConfig      `yaml:"hud"`
	Terminal  TerminalConfig `yaml:"terminal"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// RenderConfig holds frame and lens settings.
type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FOV        float64 `yaml:"fov_degrees"`
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
	Backface   string  `yaml:"backface"`
	Fade       float64 `yaml:"fade"`
	ClearColor string  `yaml:"clear_color"`
	Tolerance  int     `yaml:"tolerance"`
	DebugAxes  bool    `yaml:"debug_axes"`
}

// ShipConfig holds the rated ship stats.
type ShipConfig struct {
	flight.Stats `yaml:",inline"`
	Renormalize  bool `yaml:"renormalize"`
}

// CameraConfig holds chase camera settings.
type CameraConfig struct {
	Offset          [3]float64 `yaml:"offset"`
	LookOffset      [3]float64 `yaml:"look_offset"`
	Trail           float64    `yaml:"trail"`
	JumpFOVKick     float64    `yaml:"jump_fov_kick"`
	SpringFrequency float64    `yaml:"spring_frequency"`
	SpringDamping   float64    `yaml:"spring_damping"`
}

// SceneConfig holds scenery generation settings.
type SceneConfig struct {
	// Seed zero picks a seed from the clock.
	Seed             uint64  `yaml:"seed"`
	Stars            int     `yaml:"stars"`
	StarRadius       float64 `yaml:"star_radius"`
	Dust             int     `yaml:"dust"`
	DustMin          float64 `yaml:"dust_min"`
	DustMax          float64 `yaml:"dust_max"`
	Asteroids        int     `yaml:"asteroids"`
	AsteroidMin      float64 `yaml:"asteroid_min"`
	AsteroidMax      float64 `yaml:"asteroid_max"`
	AsteroidScaleMin float64 `yaml:"asteroid_scale_min"`
	AsteroidScaleMax float64 `yaml:"asteroid_scale_max"`
	LODWireframe     float64 `yaml:"lod_wireframe"`
	LODPoint         float64 `yaml:"lod_point"`
	HullMesh         string  `yaml:"hull_mesh"`
	AsteroidMesh     string  `yaml:"asteroid_mesh"`
}

// ParticleConfig holds exhaust settings.
type ParticleConfig struct {
	Lifetime float64 `yaml:"lifetime"`
	Fade     float64 `yaml:"fade"`
	Draws    int     `yaml:"draws"`
	Spread   float64 `yaml:"spread"`
	Color    string  `yaml:"color"`
}

// HUDConfig holds overlay settings.
type HUDConfig struct {
	Enabled bool    `yaml:"enabled"`
	Depth   float64 `yaml:"depth"`
}

// TerminalConfig holds settings for the terminal front-end.
type TerminalConfig struct {
	FPS int `yaml:"fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      320,
			Height:     240,
			FOV:        90,
			Near:       render.DefaultNear,
			Far:        render.DefaultFar,
			Backface:   "outline",
			Fade:       0.9,
			ClearColor: "000000ff",
			Tolerance:  render.DefaultTolerance,
		},
		Ship: ShipConfig{
			Stats:       flight.DefaultStats(),
			Renormalize: true,
		},
		Camera: CameraConfig{
			Offset:          [3]float64{0, 4, 10},
			Trail:           0.85,
			JumpFOVKick:     30,
			SpringFrequency: 4,
			SpringDamping:   1,
		},
		Scene: SceneConfig{
			Stars:            1000,
			StarRadius:       1000,
			Dust:             200,
			DustMin:          70,
			DustMax:          80,
			Asteroids:        100,
			AsteroidMin:      20,
			AsteroidMax:      4000,
			AsteroidScaleMin: 1,
			AsteroidScaleMax: 100,
			LODWireframe:     60,
			LODPoint:         300,
		},
		Particles: ParticleConfig{
			Lifetime: 10,
			Fade:     1,
			Draws:    5,
			Spread:   0.5,
			Color:    "ff00ffff",
		},
		HUD: HUDConfig{
			Enabled: true,
		},
		Terminal: TerminalConfig{
			FPS: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ParseColor parses an RGBA hex string such as "ff00ffff" or "#ff00ff".
// Six digits imply an opaque color.
func ParseColor(s string) (render.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return render.Color(v), nil
}

// ClearRGBA returns the parsed clear color, falling back to black.
func (r RenderConfig) ClearRGBA() render.Color {
	c, err := ParseColor(r.ClearColor)
	if err != nil {
		return render.Black
	}
	return c
}

// RGBA returns the parsed exhaust color, falling back to magenta.
func (p ParticleConfig) RGBA() render.Color {
	c, err := ParseColor(p.Color)
	if err != nil {
		return render.Magenta
	}
	return c
}
