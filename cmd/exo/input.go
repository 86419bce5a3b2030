package main

import (
	"time"

	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/world"
)

// holdWindow is how long a key counts as held after its last press event.
// Most terminals never report releases, only auto-repeated presses, so a
// key stays down until its repeats stop arriving.
const holdWindow = 300 * time.Millisecond

// Action names produced by the key handlers.
const (
	actionBrake = "space"
	actionBoost = "tab"
	actionJump  = "g"
	actionQuit  = "quit"
)

// holdInput turns press and release events into per-tick ship controls.
type holdInput struct {
	thrust [flight.NumThrust]time.Duration
	brake  time.Duration
}

func thrustForKey(key string) (flight.Thrust, bool) {
	for t, k := range world.ThrustKeys {
		if k == key {
			return flight.Thrust(t), true
		}
	}
	return 0, false
}

// press handles a key press and reports whether the game should quit.
// One-shot actions act on ship immediately.
func (in *holdInput) press(key string, ship *flight.Ship) (quit bool) {
	if t, ok := thrustForKey(key); ok {
		in.thrust[t] = holdWindow
		return false
	}
	switch key {
	case actionBrake:
		in.brake = holdWindow
	case actionBoost:
		ship.Boost()
	case actionJump:
		world.ToggleJump(ship)
	case actionQuit:
		return true
	}
	return false
}

// release drops a held key at once, for terminals that report releases.
func (in *holdInput) release(key string) {
	if t, ok := thrustForKey(key); ok {
		in.thrust[t] = 0
	}
	if key == actionBrake {
		in.brake = 0
	}
}

// apply writes the held keys into ship's controls and ages the holds.
func (in *holdInput) apply(ship *flight.Ship, dt time.Duration) {
	for t := range flight.NumThrust {
		if in.thrust[t] > 0 {
			ship.SetControl(t, ship.Stats.Rated(t))
			in.thrust[t] -= dt
		} else {
			ship.SetControl(t, 0)
		}
	}
	ship.Brake = in.brake > 0
	if in.brake > 0 {
		in.brake -= dt
	}
}
