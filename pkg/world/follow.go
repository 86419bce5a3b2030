package world

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/math3d"
	"github.com/taigrr/exo/pkg/render"
)

// Follow is the chase camera. Position is low-pass filtered toward a
// ship-relative offset; orientation is rebuilt every tick by looking from
// the filtered position at the ship, so all rotational lag comes from the
// positional lag.
type Follow struct {
	// Offset and LookOffset are in ship space.
	Offset     math3d.Vec3
	LookOffset math3d.Vec3
	// Trail is the share of the previous camera position kept each tick.
	Trail float64

	BaseFOV     float64
	JumpFOVKick float64
	// Frequency and Damping tune the FOV spring.
	Frequency float64
	Damping   float64

	fov    float64
	fovVel float64
}

// NewFollow creates a follow controller with the classic chase offset.
func NewFollow(baseFOV float64) *Follow {
	return &Follow{
		Offset:    math3d.V3(0, 4, 10),
		Trail:     0.85,
		BaseFOV:   baseFOV,
		Frequency: 4,
		Damping:   1,
		fov:       baseFOV,
	}
}

// Update moves cam one tick toward ship.
func (f *Follow) Update(cam *render.Camera, ship *flight.Ship, dt float64) {
	desired := ship.Position.Add(math3d.RotateVec(ship.Rotation, f.Offset))
	pos := cam.Position().Scale(f.Trail).Add(desired.Scale(1 - f.Trail))
	target := ship.Position.Add(math3d.RotateVec(ship.Rotation, f.LookOffset))
	up := math3d.RotateVec(ship.Rotation, math3d.Up())
	cam.LookAt(pos, target, up)

	goal := f.BaseFOV
	if ship.JumpState() == flight.Jumping {
		goal += f.JumpFOVKick
	}
	if dt > 0 {
		spring := harmonica.NewSpring(dt, f.Frequency, f.Damping)
		f.fov, f.fovVel = spring.Update(f.fov, f.fovVel, goal)
	}
	cam.FOV = math.Max(1, math.Min(f.fov, 179))
}

// FOV returns the current sprung field of view.
func (f *Follow) FOV() float64 { return f.fov }

// Reset snaps cam onto the chase position and settles the FOV spring.
func (f *Follow) Reset(cam *render.Camera, ship *flight.Ship) {
	f.fov, f.fovVel = f.BaseFOV, 0
	cam.FOV = f.BaseFOV
	pos := ship.Position.Add(math3d.RotateVec(ship.Rotation, f.Offset))
	target := ship.Position.Add(math3d.RotateVec(ship.Rotation, f.LookOffset))
	cam.LookAt(pos, target, math3d.RotateVec(ship.Rotation, math3d.Up()))
}
