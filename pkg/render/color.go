package render

import (
	"image/color"
	"math"
)

// Color is a packed 32-bit RGBA value with red in the most significant byte
// and alpha in the least significant byte. As a fill value, zero alpha means
// "no fill".
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Red         Color = 0xff0000ff
	Green       Color = 0x00ff00ff
	Blue        Color = 0x0000ffff
	Magenta     Color = 0xff00ffff
	Cyan        Color = 0x00ffffff
	Yellow      Color = 0xffff00ff
	Gray        Color = 0x808080ff
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// Filled reports whether c, used as a fill, requests a fill pass.
func (c Color) Filled() bool {
	return c.A() != 0
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255, float64(c.A()) / 255
}

// ColorFromFloats packs channels in [0, 1]. Out-of-range inputs are clamped.
func ColorFromFloats(r, g, b, a float64) Color {
	return RGBA(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// Scale multiplies the color channels by k, leaving alpha untouched.
func (c Color) Scale(k float64) Color {
	r, g, b, a := c.Floats()
	return ColorFromFloats(r*k, g*k, b*k, a)
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
