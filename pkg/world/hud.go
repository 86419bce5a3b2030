package world

import (
	"fmt"
	"strings"

	"github.com/taigrr/exo/pkg/flight"
	"github.com/taigrr/exo/pkg/render"
)

// ThrustKeys maps each thrust channel to its keyboard key. Translation sits
// on the left hand and rotation on the right.
var ThrustKeys = [flight.NumThrust]string{
	flight.Left:      "a",
	flight.Right:     "d",
	flight.Up:        "r",
	flight.Down:      "f",
	flight.Front:     "w",
	flight.Back:      "s",
	flight.YawLeft:   "j",
	flight.YawRight:  "l",
	flight.PitchUp:   "k",
	flight.PitchDown: "i",
	flight.RollCCW:   "u",
	flight.RollCW:    "o",
}

// Key cells of the HUD grid. Row 0 holds the TAB and SPACE bars.
var keyCells = [flight.NumThrust][2]int{
	flight.Left:      {0, 1},
	flight.Right:     {2, 1},
	flight.Up:        {3, 2},
	flight.Down:      {3, 1},
	flight.Front:     {1, 2},
	flight.Back:      {1, 1},
	flight.YawLeft:   {5, 1},
	flight.YawRight:  {7, 1},
	flight.PitchUp:   {6, 1},
	flight.PitchDown: {6, 2},
	flight.RollCCW:   {5, 2},
	flight.RollCW:    {7, 2},
}

const (
	cellW = 10
	cellH = 16

	// ActiveThreshold is the thrust above which a channel counts as firing.
	ActiveThreshold = 0.01
)

// HUD draws the 2D overlay: key boxes, brake, boost and jump state, frame
// time and the speed readouts.
type HUD struct {
	Font  *render.Font
	Depth float64
}

// NewHUD creates a HUD using the built-in 7x13 font.
func NewHUD(depth float64) *HUD {
	return &HUD{Font: render.BasicFont(), Depth: depth}
}

// box draws an inclusive rectangle with a label, inverting both when active.
func (h *HUD) box(r *render.Rasterizer, x0, y0, x1, y1 int, label string, active bool) {
	bg, fg := render.Black, render.White
	if active {
		bg, fg = fg, bg
	}
	r.FilledRectangle(x0, y0, x1, y1, h.Depth, bg)
	r.DrawText(x0+1, y0+1, h.Depth, label, h.Font, 1, fg)
}

func (h *HUD) Draw(r *render.Rasterizer, ship *flight.Ship, dt float64) {
	for t := range flight.NumThrust {
		cell := keyCells[t]
		x0, y0 := cell[0]*cellW, cell[1]*cellH
		h.box(r, x0, y0, x0+cellW-2, y0+cellH-2, strings.ToUpper(ThrustKeys[t]), ship.Thrust[t] > ActiveThreshold)
	}
	h.box(r, 0, 0, 3*cellW-2, cellH-2, "TAB", ship.BoostRemaining() > 0)
	h.box(r, 3*cellW, 0, 8*cellW-2, cellH-2, "SPACE", ship.Braking())

	jump := "G JUMP"
	switch ship.JumpState() {
	case flight.JumpCharging:
		jump = fmt.Sprintf("CHARGE %.1f", ship.JumpCharge())
	case flight.Jumping:
		jump = "JUMPING"
	}
	jx := 9 * cellW
	h.box(r, jx, 0, jx+h.Font.TextWidth(jump, 1)+1, cellH-2, jump, ship.JumpState() != flight.JumpIdle)

	r.DrawText(1, r.Height()-cellH+2, h.Depth, fmt.Sprintf("%.3f", dt), h.Font, 1, render.White)

	velocity := fmt.Sprintf("%.3f m/s", ship.Speed())
	accel := fmt.Sprintf("%.3f m/s^2", ship.Acceleration.Len())
	r.DrawText(r.Width()-h.Font.TextWidth(velocity, 1)-1, cellH+1, h.Depth, velocity, h.Font, 1, render.White)
	r.DrawText(r.Width()-h.Font.TextWidth(accel, 1)-1, 1, h.Depth, accel, h.Font, 1, render.White)
}
