package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// Validate reports the first setting the engine cannot run with.
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return invalid("render.width/height", "must be positive, got %dx%d", r.Width, r.Height)
	case r.FOV <= 0 || r.FOV >= 180:
		return invalid("render.fov_degrees", "must be in (0, 180), got %g", r.FOV)
	case r.Near <= 0:
		return invalid("render.near", "must be positive, got %g", r.Near)
	case r.Far <= r.Near:
		return invalid("render.far", "must exceed near (%g), got %g", r.Near, r.Far)
	case r.Fade < 0 || r.Fade > 1:
		return invalid("render.fade", "must be in [0, 1], got %g", r.Fade)
	case r.Tolerance < 0:
		return invalid("render.tolerance", "must not be negative, got %d", r.Tolerance)
	}
	switch r.Backface {
	case "outline", "skip", "off":
	default:
		return invalid("render.backface", "must be outline, skip or off, got %q", r.Backface)
	}
	if _, err := ParseColor(r.ClearColor); err != nil {
		return invalid("render.clear_color", "%v", err)
	}

	st := c.Ship.Stats
	if st.MaxThrust < 0 || st.AngularThrust < 0 || st.JumpChargeTime < 0 || st.ChargeThrust < 0 {
		return invalid("ship", "thrust ratings and charge time must not be negative")
	}

	if t := c.Camera.Trail; t < 0 || t >= 1 {
		return invalid("camera.trail", "must be in [0, 1), got %g", t)
	}
	if c.Camera.SpringFrequency < 0 || c.Camera.SpringDamping < 0 {
		return invalid("camera.spring", "frequency and damping must not be negative")
	}

	s := c.Scene
	switch {
	case s.Stars < 0 || s.Dust < 0 || s.Asteroids < 0:
		return invalid("scene", "counts must not be negative")
	case s.DustMin < 0 || s.DustMax < s.DustMin:
		return invalid("scene.dust_max", "must be at least dust_min (%g), got %g", s.DustMin, s.DustMax)
	case s.AsteroidMin < 0 || s.AsteroidMax < s.AsteroidMin:
		return invalid("scene.asteroid_max", "must be at least asteroid_min (%g), got %g", s.AsteroidMin, s.AsteroidMax)
	case s.AsteroidScaleMin <= 0 || s.AsteroidScaleMax < s.AsteroidScaleMin:
		return invalid("scene.asteroid_scale", "range [%g, %g) is empty or not positive", s.AsteroidScaleMin, s.AsteroidScaleMax)
	case s.LODWireframe < 0 || s.LODPoint <= s.LODWireframe:
		return invalid("scene.lod_point", "must exceed lod_wireframe (%g), got %g", s.LODWireframe, s.LODPoint)
	}

	p := c.Particles
	switch {
	case p.Draws < 0:
		return invalid("particles.draws", "must not be negative, got %d", p.Draws)
	case p.Lifetime < 0 || p.Fade < 0:
		return invalid("particles", "lifetime and fade must not be negative")
	}
	if _, err := ParseColor(p.Color); err != nil {
		return invalid("particles.color", "%v", err)
	}

	if c.Terminal.FPS <= 0 {
		return invalid("terminal.fps", "must be positive, got %d", c.Terminal.FPS)
	}
	return nil
}
