// Package render implements the exo software rasterizer: the world to screen
// transform, depth-tested pixel, line, triangle and glyph primitives, and the
// mesh and object renderer built on them.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is a contiguous RGBA byte buffer, 4 bytes per pixel in R, G,
// B, A order. Pixel y grows upward and is flipped when the linear index is
// computed, so y = 0 lives in the last row of Pix and Pix itself is laid out
// top row first.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Offset returns the byte offset of pixel (x, y), or false when the pixel
// lies outside the buffer.
func (fb *Framebuffer) Offset(x, y int) (int, bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0, false
	}
	return ((fb.Height-1-y)*fb.Width + x) * 4, true
}

// Set writes c at (x, y) without any depth test. Out-of-range writes are
// dropped.
func (fb *Framebuffer) Set(x, y int, c Color) {
	i, ok := fb.Offset(x, y)
	if !ok {
		return
	}
	fb.Pix[i] = c.R()
	fb.Pix[i+1] = c.G()
	fb.Pix[i+2] = c.B()
	fb.Pix[i+3] = c.A()
}

// At returns the color at (x, y), or Transparent when out of range.
func (fb *Framebuffer) At(x, y int) Color {
	i, ok := fb.Offset(x, y)
	if !ok {
		return Transparent
	}
	return RGBA(fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3])
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c Color) {
	n := len(fb.Pix)
	if n == 0 {
		return
	}
	fb.Pix[0], fb.Pix[1], fb.Pix[2], fb.Pix[3] = c.R(), c.G(), c.B(), c.A()
	for i := 4; i < n; i *= 2 {
		copy(fb.Pix[i:], fb.Pix[:i])
	}
}

// Fade scales the color channels of every pixel by k in [0, 1], keeping
// alpha. It is the color half of the jump transition; depth is cleared
// separately.
func (fb *Framebuffer) Fade(k float64) {
	if k >= 1 {
		return
	}
	if k <= 0 {
		k = 0
	}
	scale := uint32(k * 256)
	for i := 0; i+3 < len(fb.Pix); i += 4 {
		fb.Pix[i] = uint8(uint32(fb.Pix[i]) * scale >> 8)
		fb.Pix[i+1] = uint8(uint32(fb.Pix[i+1]) * scale >> 8)
		fb.Pix[i+2] = uint8(uint32(fb.Pix[i+2]) * scale >> 8)
	}
}

// ToImage converts the framebuffer to a top-down image.RGBA. Pix is already
// top row first, so rows copy across unchanged.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	stride := fb.Width * 4
	for row := 0; row < fb.Height; row++ {
		copy(img.Pix[row*img.Stride:row*img.Stride+stride], fb.Pix[row*stride:(row+1)*stride])
	}
	return img
}

// RGBAAt returns the pixel at (x, y) using top-down image coordinates, as
// presenters scan the picture.
func (fb *Framebuffer) RGBAAt(x, y int) color.NRGBA {
	return fb.At(x, fb.Height-1-y).NRGBA()
}

// SavePNG writes the framebuffer to path as a PNG.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
