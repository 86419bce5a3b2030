package config

import (
	"errors"

	"github.com/spf13/pflag"
)

// Flag names shared by every front-end.
const (
	FlagConfig    = "config"
	FlagWidth     = "width"
	FlagHeight    = "height"
	FlagFOV       = "fov"
	FlagFar       = "far"
	FlagBackface  = "backface"
	FlagSeed      = "seed"
	FlagAsteroids = "asteroids"
	FlagStars     = "stars"
	FlagDebugAxes = "debug-axes"
	FlagNoHUD     = "no-hud"
	FlagFPS       = "fps"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// come from Default(); a flag only overrides the file when it is set.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(FlagConfig, "c", "", "path to config file")
	fs.Int(FlagWidth, d.Render.Width, "frame width in pixels")
	fs.Int(FlagHeight, d.Render.Height, "frame height in pixels")
	fs.Float64(FlagFOV, d.Render.FOV, "horizontal field of view in degrees")
	fs.Float64(FlagFar, d.Render.Far, "far clip distance")
	fs.String(FlagBackface, d.Render.Backface, "backface policy: outline, skip or off")
	fs.Uint64(FlagSeed, d.Scene.Seed, "scenery seed (0 picks one from the clock)")
	fs.Int(FlagAsteroids, d.Scene.Asteroids, "number of asteroids")
	fs.Int(FlagStars, d.Scene.Stars, "number of background stars")
	fs.Bool(FlagDebugAxes, d.Render.DebugAxes, "draw world axes and hull bounds at the ship")
	fs.Bool(FlagNoHUD, !d.HUD.Enabled, "hide the HUD overlay")
	fs.Int(FlagFPS, d.Terminal.FPS, "terminal frame rate")
	fs.String(FlagLogLevel, d.Logging.Level, "log level: debug, info, warn, error")
	fs.String(FlagLogFile, d.Logging.File, "log file path (empty disables logging)")
}

// applyFlags overrides cfg with every flag the user changed.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	var errs []error
	set := func(name string, apply func() error) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			errs = append(errs, apply())
		}
	}

	set(FlagWidth, func() (err error) { cfg.Render.Width, err = fs.GetInt(FlagWidth); return })
	set(FlagHeight, func() (err error) { cfg.Render.Height, err = fs.GetInt(FlagHeight); return })
	set(FlagFOV, func() (err error) { cfg.Render.FOV, err = fs.GetFloat64(FlagFOV); return })
	set(FlagFar, func() (err error) { cfg.Render.Far, err = fs.GetFloat64(FlagFar); return })
	set(FlagBackface, func() (err error) { cfg.Render.Backface, err = fs.GetString(FlagBackface); return })
	set(FlagSeed, func() (err error) { cfg.Scene.Seed, err = fs.GetUint64(FlagSeed); return })
	set(FlagAsteroids, func() (err error) { cfg.Scene.Asteroids, err = fs.GetInt(FlagAsteroids); return })
	set(FlagStars, func() (err error) { cfg.Scene.Stars, err = fs.GetInt(FlagStars); return })
	set(FlagDebugAxes, func() (err error) { cfg.Render.DebugAxes, err = fs.GetBool(FlagDebugAxes); return })
	set(FlagNoHUD, func() error {
		off, err := fs.GetBool(FlagNoHUD)
		cfg.HUD.Enabled = !off
		return err
	})
	set(FlagFPS, func() (err error) { cfg.Terminal.FPS, err = fs.GetInt(FlagFPS); return })
	set(FlagLogLevel, func() (err error) { cfg.Logging.Level, err = fs.GetString(FlagLogLevel); return })
	set(FlagLogFile, func() (err error) { cfg.Logging.File, err = fs.GetString(FlagLogFile); return })

	return errors.Join(errs...)
}
