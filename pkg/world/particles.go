package world

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/math3d"
	"github.com/taigrr/exo/pkg/render"
)

// Particle is one exhaust point in world space.
type Particle struct {
	Position math3d.Vec3
	Color    render.Color
	Lifetime float64
}

// Exhaust emits particles behind the thruster mounts, more of them the
// harder the ship accelerates.
type Exhaust struct {
	Particles []Particle
	// Mounts are nozzle exits in hull space.
	Mounts   []math3d.Vec3
	Draws    int
	Spread   float64
	Lifetime float64
	// Fade is how many seconds before expiry the color starts dimming.
	Fade  float64
	Color render.Color

	rng *rand.Rand
}

// NewExhaust creates an empty emitter with the stock tuning.
func NewExhaust(rng *rand.Rand, mounts []math3d.Vec3) *Exhaust {
	return &Exhaust{
		Mounts:   mounts,
		Draws:    5,
		Spread:   0.5,
		Lifetime: 10,
		Fade:     1,
		Color:    render.Magenta,
		rng:      rng,
	}
}

// ExhaustStrength is the per-mount spawn probability for a ship with the
// given acceleration and speed magnitudes. A coasting ship still trails a
// faint wake.
func ExhaustStrength(accel, speed float64) float64 {
	a := math.Max(0, math.Min(accel/100, 1))
	v := math.Max(0.1, math.Min(speed/200, 1))
	return (a*2 + v) / 3
}

// Update ages and expires particles, then spawns new ones for this tick.
func (e *Exhaust) Update(ship *flight.Ship, dt float64) {
	kept := e.Particles[:0]
	for _, p := range e.Particles {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}
		if p.Lifetime < e.Fade {
			p.Color = e.Color.Scale(math.Max(0, p.Lifetime/e.Fade))
		}
		kept = append(kept, p)
	}
	e.Particles = kept

	e.spawn(ship, dt)
}

func (e *Exhaust) spawn(ship *flight.Ship, dt float64) {
	strength := ExhaustStrength(ship.Acceleration.Len(), ship.Speed())
	for range e.Draws {
		offset := randomDirection(e.rng).Scale(e.Spread)
		for _, mount := range e.Mounts {
			if e.rng.Float64() >= strength {
				continue
			}
			// Spawns are spread back along this tick's travel.
			pos := ship.Position.
				Add(offset).
				Add(math3d.RotateVec(ship.Rotation, mount)).
				Sub(ship.Velocity.Scale(dt * e.rng.Float64()))
			e.Particles = append(e.Particles, Particle{
				Position: pos,
				Color:    e.Color,
				Lifetime: e.Lifetime,
			})
		}
	}
}

func (e *Exhaust) Draw(r *render.Rasterizer) {
	for _, p := range e.Particles {
		r.DrawPoint3D(p.Position, p.Color)
	}
}
