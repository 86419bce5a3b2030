// Package flight integrates six-degree-of-freedom ship motion from per-axis
// thrust channels, with brake assist, boost and a scripted jump.
package flight

import (
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

// Thrust names one thrust channel.
type Thrust int

const (
	Left Thrust = iota
	Right
	Up
	Down
	Front
	Back
	YawLeft
	YawRight
	PitchUp
	PitchDown
	RollCCW
	RollCW

	NumThrust
)

var thrustNames = [NumThrust]string{
	"left", "right", "up", "down", "front", "back",
	"yaw-left", "yaw-right", "pitch-up", "pitch-down", "roll-ccw", "roll-cw",
}

func (t Thrust) String() string {
	if t < 0 || t >= NumThrust {
		return "unknown"
	}
	return thrustNames[t]
}

// Rotational reports whether t drives rotation rather than translation.
func (t Thrust) Rotational() bool {
	return t >= YawLeft && t < NumThrust
}

// Channels holds one non-negative magnitude per thrust channel.
type Channels [NumThrust]float64

// Brake assist gains, applied to angular and linear velocity.
const (
	AngularBrakeGain = 200.0
	LinearBrakeGain  = 10.0
)

// Stats are the rated performance figures of a ship.
type Stats struct {
	MaxThrust     float64 `yaml:"max_thrust"`
	AngularThrust float64 `yaml:"angular_thrust"`

	BoostStrength float64 `yaml:"boost_strength"`
	BoostDuration float64 `yaml:"boost_duration"`
	BoostCooldown float64 `yaml:"boost_cooldown"`

	JumpSpeed      float64 `yaml:"jump_speed"`
	JumpChargeTime float64 `yaml:"jump_charge_time"`
	JumpEndSpeed   float64 `yaml:"jump_end_speed"`
	JumpRollRate   float64 `yaml:"jump_roll_rate"`
	// ChargeThrust is the multiple of MaxThrust forced onto Front while a
	// jump charges.
	ChargeThrust float64 `yaml:"charge_thrust"`
}

// DefaultStats returns the stock ship.
func DefaultStats() Stats {
	return Stats{
		MaxThrust:      20,
		AngularThrust:  5,
		BoostStrength:  400,
		BoostDuration:  0.5,
		BoostCooldown:  2,
		JumpSpeed:      2000,
		JumpChargeTime: 3,
		JumpEndSpeed:   50,
		JumpRollRate:   0.05,
		ChargeThrust:   0.5,
	}
}

// Rated returns the input ceiling for channel t.
func (s Stats) Rated(t Thrust) float64 {
	if t.Rotational() {
		return s.AngularThrust
	}
	return s.MaxThrust
}

// JumpState is the jump state machine position. Braking is tracked
// separately and combines with any of these.
type JumpState int

const (
	JumpIdle JumpState = iota
	JumpCharging
	Jumping
)

func (j JumpState) String() string {
	switch j {
	case JumpCharging:
		return "charging"
	case Jumping:
		return "jumping"
	default:
		return "idle"
	}
}

// Ship is the integrated rigid-body state. Position, velocity and
// acceleration are in world space; the quaternions rotate ship space into
// world space and stay unit length when Renormalize is set.
type Ship struct {
	Position     math3d.Vec3
	Velocity     math3d.Vec3
	Acceleration math3d.Vec3

	Rotation            math3d.Quat
	AngularVelocity     math3d.Quat
	AngularAcceleration math3d.Quat

	// Controls are the manual channel inputs. Update copies them into
	// Thrust before brake, boost and jump adjust the copy.
	Controls Channels
	// Thrust is the effective output of the last Update.
	Thrust Channels
	// Brake requests brake assist on every channel pair left idle.
	Brake bool

	Stats Stats
	// Renormalize rescales Rotation and AngularVelocity to unit length
	// after every composition.
	Renormalize bool

	braking       bool
	boost         float64
	boostCooldown float64
	jump          JumpState
	jumpCharge    float64
	jumps         int
	model         math3d.Mat4
}

// NewShip creates a ship at rest at the origin.
func NewShip(stats Stats) *Ship {
	s := &Ship{
		Rotation:            math3d.QuatIdent(),
		AngularVelocity:     math3d.QuatIdent(),
		AngularAcceleration: math3d.QuatIdent(),
		Stats:               stats,
		Renormalize:         true,
	}
	s.model = math3d.RotationTranslation(s.Rotation, s.Position)
	return s
}

// SetControl sets one manual channel, clamped to [0, rated].
func (s *Ship) SetControl(t Thrust, v float64) {
	s.Controls[t] = math.Max(0, math.Min(v, s.Stats.Rated(t)))
}

// ClearControls releases every manual channel.
func (s *Ship) ClearControls() {
	s.Controls = Channels{}
}

// Boost triggers a boost impulse unless one is cooling down or the ship is
// jumping. It reports whether the boost fired.
func (s *Ship) Boost() bool {
	if s.boostCooldown > 0 || s.jump == Jumping {
		return false
	}
	s.boost = s.Stats.BoostStrength
	s.boostCooldown = s.Stats.BoostCooldown
	return true
}

// StartJumpCharge begins charging a jump from idle.
func (s *Ship) StartJumpCharge() bool {
	if s.jump != JumpIdle {
		return false
	}
	s.jump = JumpCharging
	s.jumpCharge = s.Stats.JumpChargeTime
	return true
}

// CancelJumpCharge aborts a charge in progress.
func (s *Ship) CancelJumpCharge() bool {
	if s.jump != JumpCharging {
		return false
	}
	s.jump = JumpIdle
	s.jumpCharge = 0
	return true
}

// EndJump drops out of a jump: rotation stops and the ship coasts forward
// at JumpEndSpeed.
func (s *Ship) EndJump() bool {
	if s.jump != Jumping {
		return false
	}
	s.jump = JumpIdle
	s.AngularVelocity = math3d.QuatIdent()
	s.Velocity = math3d.RotateVec(s.Rotation, math3d.V3(0, 0, -s.Stats.JumpEndSpeed))
	return true
}

func (s *Ship) startJump() {
	s.jump = Jumping
	s.jumps++
	s.Thrust = Channels{}
	s.AngularVelocity = math3d.QuatEulerXYZ(0, 0, s.Stats.JumpRollRate)
	s.Velocity = math3d.RotateVec(s.Rotation, math3d.V3(0, 0, -s.Stats.JumpSpeed))
}

// Update advances the ship by dt seconds.
func (s *Ship) Update(dt float64) {
	s.Thrust = s.Controls
	s.braking = s.Brake

	if s.jump == JumpCharging {
		s.braking = true
		s.jumpCharge = math.Max(0, s.jumpCharge-dt)
		s.Thrust[Front] = s.Stats.ChargeThrust * s.Stats.MaxThrust
		if s.jumpCharge == 0 {
			s.startJump()
		}
	}

	if s.braking {
		s.applyBrake()
	}

	if s.jump == Jumping {
		s.Thrust = Channels{}
	}

	// Angular thrust scales by dt², so turn rate depends on frame rate.
	dt2 := dt * dt
	s.AngularAcceleration = math3d.QuatEulerXYZ(
		(s.Thrust[PitchUp]-s.Thrust[PitchDown])*dt2,
		(s.Thrust[YawLeft]-s.Thrust[YawRight])*dt2,
		(s.Thrust[RollCCW]-s.Thrust[RollCW])*dt2,
	)
	s.AngularVelocity = s.AngularVelocity.Mul(s.AngularAcceleration)
	s.Rotation = s.Rotation.Mul(s.AngularVelocity)
	if s.Renormalize {
		s.AngularVelocity = math3d.QuatUnit(s.AngularVelocity)
		s.Rotation = math3d.QuatUnit(s.Rotation)
	}

	s.Thrust[Front] += s.boost
	if s.Stats.BoostDuration > 0 {
		s.boost = math.Max(0, s.boost-s.Stats.BoostStrength/s.Stats.BoostDuration*dt)
	} else {
		s.boost = 0
	}
	s.boostCooldown = math.Max(0, s.boostCooldown-dt)

	local := math3d.V3(
		s.Thrust[Right]-s.Thrust[Left],
		s.Thrust[Up]-s.Thrust[Down],
		s.Thrust[Back]-s.Thrust[Front],
	)
	s.Acceleration = math3d.RotateVec(s.Rotation, local)
	s.Velocity = s.Velocity.Add(s.Acceleration.Scale(dt))
	s.Position = s.Position.Add(s.Velocity.Scale(dt))

	s.model = math3d.RotationTranslation(s.Rotation, s.Position)
}

// applyBrake fills idle channel pairs with counter-thrust against the
// current angular and linear velocity.
func (s *Ship) applyBrake() {
	ang := math3d.EulerXYZ(s.AngularVelocity.Inverse()).Scale(AngularBrakeGain)
	maxAng := s.Stats.AngularThrust
	s.counter(PitchUp, PitchDown, ang.X, maxAng, maxAng)
	s.counter(YawLeft, YawRight, ang.Y, maxAng, maxAng)
	s.counter(RollCCW, RollCW, ang.Z, maxAng, maxAng)

	lin := math3d.RotateVec(s.Rotation.Inverse(), s.Velocity).Scale(LinearBrakeGain)
	maxLin := s.Stats.MaxThrust
	s.counter(Right, Left, -lin.X, maxLin, maxLin)
	s.counter(Up, Down, -lin.Y, maxLin, maxLin)
	// Front is the main drive and may brake at twice the rated thrust.
	s.counter(Back, Front, -lin.Z, maxLin, 2*maxLin)
}

// counter sets pos to v or neg to -v, clamped, when neither is in use.
func (s *Ship) counter(pos, neg Thrust, v, maxPos, maxNeg float64) {
	if s.Thrust[pos] != 0 || s.Thrust[neg] != 0 {
		return
	}
	s.Thrust[pos] = clamp(v, 0, maxPos)
	if s.Thrust[pos] == 0 {
		s.Thrust[neg] = clamp(-v, 0, maxNeg)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Model returns the hull transform derived from Rotation and Position.
func (s *Ship) Model() math3d.Mat4 { return s.model }

// Braking reports whether brake assist ran in the last Update.
func (s *Ship) Braking() bool { return s.braking }

// BoostRemaining returns the boost still being added to Front.
func (s *Ship) BoostRemaining() float64 { return s.boost }

// BoostCooldown returns the seconds until Boost can fire again.
func (s *Ship) BoostCooldown() float64 { return s.boostCooldown }

// JumpState returns the current jump state.
func (s *Ship) JumpState() JumpState { return s.jump }

// JumpCharge returns the charge time remaining while charging.
func (s *Ship) JumpCharge() float64 { return s.jumpCharge }

// Jumps counts completed jump launches.
func (s *Ship) Jumps() int { return s.jumps }

// Speed returns the velocity magnitude.
func (s *Ship) Speed() float64 { return s.Velocity.Len() }

// Forward returns the world-space nose direction.
func (s *Ship) Forward() math3d.Vec3 {
	return math3d.RotateVec(s.Rotation, math3d.Forward())
}
