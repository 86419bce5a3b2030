// Package world sequences one frame of the game: ship physics, the chase
// camera, scenery and exhaust updates, then the ordered draw into a
// rasterizer.
package world

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/taigrr/exo/internal/config"
	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/math3d"
	"github.com/taigrr/exo/pkg/models"
	"github.com/taigrr/exo/pkg/render"
	"go.uber.org/zap"
)

// World owns every simulated and drawn entity. Update and Draw must not be
// called concurrently.
type World struct {
	Ship      *flight.Ship
	Camera    *render.Camera
	Follow    *Follow
	Stars     *Stars
	Dust      *Dust
	Exhaust   *Exhaust
	Asteroids *AsteroidField
	Hull      *render.Object
	// Thrusters holds the optional glow object for each channel.
	Thrusters [flight.NumThrust]*render.Object
	HUD       *HUD

	ShowHUD    bool
	DebugAxes  bool
	ClearColor render.Color
	// Fade is the per-frame color multiplier used instead of a clear while
	// jumping.
	Fade float64

	backface  render.BackfacePolicy
	tolerance int
	jumpState flight.JumpState
	log       *zap.Logger
}

// NewRand returns a generator for seed. Seed zero draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New builds a world from cfg. All randomness comes from rng; log may be nil.
func New(cfg *config.Config, rng *rand.Rand, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}

	hullMesh, err := loadMesh(cfg.Scene.HullMesh, models.HullMesh)
	if err != nil {
		return nil, fmt.Errorf("hull mesh: %w", err)
	}
	asteroidMesh, err := loadMesh(cfg.Scene.AsteroidMesh, func() *models.Mesh { return models.Asteroid(rng) })
	if err != nil {
		return nil, fmt.Errorf("asteroid mesh: %w", err)
	}
	// Asteroids spin about their model origin.
	asteroidMesh.Centered()

	ship := flight.NewShip(cfg.Ship.Stats)
	ship.Renormalize = cfg.Ship.Renormalize

	cam := render.NewCamera(cfg.Render.FOV, cfg.Render.Near, cfg.Render.Far)
	follow := NewFollow(cfg.Render.FOV)
	follow.Offset = vec(cfg.Camera.Offset)
	follow.LookOffset = vec(cfg.Camera.LookOffset)
	follow.Trail = cfg.Camera.Trail
	follow.JumpFOVKick = cfg.Camera.JumpFOVKick
	follow.Frequency = cfg.Camera.SpringFrequency
	follow.Damping = cfg.Camera.SpringDamping
	follow.Reset(cam, ship)

	exhaust := NewExhaust(rng, models.ThrusterMounts())
	exhaust.Draws = cfg.Particles.Draws
	exhaust.Spread = cfg.Particles.Spread
	exhaust.Lifetime = cfg.Particles.Lifetime
	exhaust.Fade = cfg.Particles.Fade
	exhaust.Color = cfg.Particles.RGBA()

	w := &World{
		Ship:   ship,
		Camera: cam,
		Follow: follow,
		Stars:  NewStars(rng, cfg.Scene.Stars, cfg.Scene.StarRadius),
		Dust:   NewDust(rng, cfg.Scene.Dust, cfg.Scene.DustMin, cfg.Scene.DustMax),
		Asteroids: NewAsteroidField(rng, asteroidMesh, AsteroidParams{
			Count:        cfg.Scene.Asteroids,
			MinRadius:    cfg.Scene.AsteroidMin,
			MaxRadius:    cfg.Scene.AsteroidMax,
			MinScale:     cfg.Scene.AsteroidScaleMin,
			MaxScale:     cfg.Scene.AsteroidScaleMax,
			LODWireframe: cfg.Scene.LODWireframe,
			LODPoint:     cfg.Scene.LODPoint,
		}),
		Hull: &render.Object{
			Mesh:  hullMesh,
			Model: ship.Model(),
			Color: render.White,
			Fill:  render.Black,
		},
		Exhaust:    exhaust,
		HUD:        NewHUD(cfg.HUD.Depth),
		ShowHUD:    cfg.HUD.Enabled,
		DebugAxes:  cfg.Render.DebugAxes,
		ClearColor: cfg.Render.ClearRGBA(),
		Fade:       cfg.Render.Fade,
		backface:   render.ParseBackfacePolicy(cfg.Render.Backface),
		tolerance:  cfg.Render.Tolerance,
		log:        log,
	}
	w.Thrusters[flight.Front] = &render.Object{
		Mesh:  models.FrontThrusterMesh(),
		Model: ship.Model(),
		Color: render.Magenta,
		Fill:  render.Black,
	}

	log.Debug("world generated",
		zap.Int("stars", len(w.Stars.Offsets)),
		zap.Int("dust", len(w.Dust.Points)),
		zap.Int("asteroids", len(w.Asteroids.Asteroids)),
		zap.Int("hull_polygons", hullMesh.PolygonCount()),
		zap.Int("asteroid_polygons", asteroidMesh.PolygonCount()),
	)
	return w, nil
}

func loadMesh(path string, builtin func() *models.Mesh) (*models.Mesh, error) {
	if path == "" {
		return builtin(), nil
	}
	return models.Load(path)
}

func vec(a [3]float64) math3d.Vec3 {
	return math3d.V3(a[0], a[1], a[2])
}

// NewRasterizer creates a rasterizer for fb looking through the world
// camera, with the configured backface policy and tolerance.
func (w *World) NewRasterizer(fb *render.Framebuffer) *render.Rasterizer {
	r := render.NewRasterizer(w.Camera, fb)
	r.Backface = w.backface
	r.Tolerance = w.tolerance
	return r
}

// Update advances the simulation by dt seconds.
func (w *World) Update(dt float64) {
	w.Ship.Update(dt)
	if state := w.Ship.JumpState(); state != w.jumpState {
		w.log.Debug("jump state changed",
			zap.Stringer("from", w.jumpState),
			zap.Stringer("to", state),
			zap.Float64("speed", w.Ship.Speed()),
		)
		w.jumpState = state
	}

	w.Follow.Update(w.Camera, w.Ship, dt)

	center := w.Camera.Position()
	w.Stars.Update(center)
	w.Dust.Update(center)
	w.Exhaust.Update(w.Ship, dt)

	model := w.Ship.Model()
	w.Hull.Model = model
	for _, t := range w.Thrusters {
		if t != nil {
			t.Model = model
		}
	}

	w.Asteroids.Update(dt)
}

// Draw renders the frame into r. While jumping the previous frame is faded
// rather than cleared, leaving streaks; depth is always cleared.
func (w *World) Draw(r *render.Rasterizer, dt float64) {
	r.ResetStats()
	fb := r.Framebuffer()
	if w.Ship.JumpState() == flight.Jumping {
		fb.Fade(w.Fade)
	} else {
		fb.Clear(w.ClearColor)
	}
	r.ClearDepth()

	w.Stars.Draw(r)
	w.Dust.Draw(r)
	w.Exhaust.Draw(r)
	w.Asteroids.Draw(r)

	r.DrawObject(w.Hull)
	for t, thruster := range w.Thrusters {
		if thruster != nil && w.Ship.Thrust[t] > ActiveThreshold {
			r.DrawObject(thruster)
		}
	}

	if w.DebugAxes {
		r.DrawAxes(w.Ship.Position, 1)
		if b, ok := w.Hull.Mesh.(render.BoundedMeshRenderer); ok {
			lo, hi := b.Bounds()
			r.DrawBox(render.AABB{Min: lo, Max: hi}, w.Hull.Model, render.Yellow)
		}
	}
	if w.ShowHUD {
		w.HUD.Draw(r, w.Ship, dt)
	}
}

// ToggleJump walks the jump state machine the way the jump key does: start
// charging, cancel a charge, or drop out of a jump.
func ToggleJump(ship *flight.Ship) {
	switch ship.JumpState() {
	case flight.JumpIdle:
		ship.StartJumpCharge()
	case flight.JumpCharging:
		ship.CancelJumpCharge()
	case flight.Jumping:
		ship.EndJump()
	}
}
