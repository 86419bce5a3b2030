package main

import (
	"testing"
	"time"

	"github.com/taigrr/exo/pkg/flight"
)

func TestHoldInput(t *testing.T) {
	ship := flight.NewShip(flight.DefaultStats())
	var in holdInput

	in.press("w", ship)
	in.apply(ship, 100*time.Millisecond)
	if ship.Controls[flight.Front] != ship.Stats.MaxThrust {
		t.Fatalf("front = %v, want rated thrust", ship.Controls[flight.Front])
	}

	// Still inside the hold window.
	in.apply(ship, 100*time.Millisecond)
	if ship.Controls[flight.Front] == 0 {
		t.Fatal("key released before the hold window elapsed")
	}

	for range 3 {
		in.apply(ship, 100*time.Millisecond)
	}
	if ship.Controls[flight.Front] != 0 {
		t.Errorf("front = %v after the hold window, want 0", ship.Controls[flight.Front])
	}
}

func TestHoldInputRelease(t *testing.T) {
	ship := flight.NewShip(flight.DefaultStats())
	var in holdInput

	in.press("k", ship)
	in.press("space", ship)
	in.apply(ship, time.Millisecond)
	if ship.Controls[flight.PitchUp] != ship.Stats.AngularThrust || !ship.Brake {
		t.Fatalf("pitch %v brake %v", ship.Controls[flight.PitchUp], ship.Brake)
	}

	in.release("k")
	in.release("space")
	in.apply(ship, time.Millisecond)
	if ship.Controls[flight.PitchUp] != 0 || ship.Brake {
		t.Errorf("release ignored: pitch %v brake %v", ship.Controls[flight.PitchUp], ship.Brake)
	}
}

func TestJumpKeyCycle(t *testing.T) {
	stats := flight.DefaultStats()
	stats.JumpChargeTime = 0.01
	ship := flight.NewShip(stats)
	var in holdInput

	steps := []struct {
		name string
		tick bool
		want flight.JumpState
	}{
		{"start charge", false, flight.JumpCharging},
		{"cancel charge", false, flight.JumpIdle},
		{"charge again", true, flight.Jumping},
		{"end jump", false, flight.JumpIdle},
	}
	for _, s := range steps {
		in.press("g", ship)
		if s.tick {
			ship.Update(0.02)
		}
		if ship.JumpState() != s.want {
			t.Fatalf("%s: state %v, want %v", s.name, ship.JumpState(), s.want)
		}
	}
}

func TestPressQuitAndBoost(t *testing.T) {
	ship := flight.NewShip(flight.DefaultStats())
	var in holdInput

	if in.press("tab", ship) {
		t.Error("boost should not quit")
	}
	if ship.BoostRemaining() == 0 {
		t.Error("tab did not boost")
	}
	if !in.press(actionQuit, ship) {
		t.Error("quit action ignored")
	}
}

func TestKeyAction(t *testing.T) {
	matcher := func(pressed string) func(...string) bool {
		return func(names ...string) bool {
			for _, n := range names {
				if n == pressed {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		pressed string
		want    string
	}{
		{"escape", actionQuit},
		{"ctrl+c", actionQuit},
		{"space", actionBrake},
		{"tab", actionBoost},
		{"g", actionJump},
		{"w", "w"},
		{"o", "o"},
		{"z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.pressed, func(t *testing.T) {
			if got := keyAction(matcher(tt.pressed)); got != tt.want {
				t.Errorf("keyAction(%q) = %q, want %q", tt.pressed, got, tt.want)
			}
		})
	}
}
