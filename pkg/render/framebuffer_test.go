package render

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestFramebufferRowsAreBottomUp(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	i, ok := fb.Offset(0, 0)
	if !ok || i != (2*4)*4 {
		t.Errorf("Offset(0, 0) = %d, %v; want %d", i, ok, 2*4*4)
	}
	if i, _ := fb.Offset(3, 2); i != 3*4 {
		t.Errorf("Offset(3, 2) = %d, want %d", i, 3*4)
	}
	if _, ok := fb.Offset(4, 0); ok {
		t.Error("Offset accepted x == Width")
	}

	fb.Set(1, 0, Magenta)
	if got := fb.Pix[(2*4+1)*4 : (2*4+1)*4+4]; got[0] != 0xff || got[1] != 0 || got[2] != 0xff || got[3] != 0xff {
		t.Errorf("bytes = %v, want RGBA order", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {17, 9}} {
		fb := NewFramebuffer(size[0], size[1])
		fb.Clear(Cyan)
		for y := range size[1] {
			for x := range size[0] {
				if fb.At(x, y) != Cyan {
					t.Fatalf("%v: pixel (%d, %d) = %#08x", size, x, y, uint32(fb.At(x, y)))
				}
			}
		}
	}
	NewFramebuffer(0, 0).Clear(Cyan)
}

func TestFramebufferFade(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, RGBA(200, 100, 50, 0xff))
	fb.Fade(0.5)

	if got := fb.At(0, 0); got != RGBA(100, 50, 25, 0xff) {
		t.Errorf("faded = %#08x", uint32(got))
	}
	fb.Fade(1)
	if got := fb.At(0, 0); got != RGBA(100, 50, 25, 0xff) {
		t.Error("Fade(1) changed the picture")
	}
	fb.Fade(-3)
	if got := fb.At(0, 0); got != RGBA(0, 0, 0, 0xff) {
		t.Errorf("Fade below zero = %#08x, want black", uint32(got))
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(Black)
	fb.Set(0, 0, Red) // bottom left

	img := fb.ToImage()
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("image bottom-left = %v", got)
	}
	if got := fb.RGBAAt(0, 1); got != Red.NRGBA() {
		t.Errorf("RGBAAt bottom-left = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("image top-left = %v", got)
	}
}

func TestToImageMatchesRGBAAt(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(Black)
	fb.Set(0, 3, Red)  // top left
	fb.Set(3, 0, Blue) // bottom right

	img := fb.ToImage()
	for y := range fb.Height {
		for x := range fb.Width {
			want := fb.RGBAAt(x, y)
			got := img.RGBAAt(x, y)
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != want.A {
				t.Errorf("(%d, %d): image %v, RGBAAt %v", x, y, got, want)
			}
		}
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("image top-left = %v, want red", got)
	}
	if got := img.RGBAAt(3, 3); got != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("image bottom-right = %v, want blue", got)
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(Blue)
	if err := fb.SavePNG(filepath.Join(t.TempDir(), "frame.png")); err != nil {
		t.Fatal(err)
	}
	if err := fb.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Errorf("packed = %#08x", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Error("channel accessors disagree with packing")
	}
	if Transparent.Filled() || !Black.Filled() {
		t.Error("Filled should track alpha")
	}
	if got := RGB(200, 100, 50).Scale(0.5); got != RGB(100, 50, 25) {
		t.Errorf("Scale = %#08x", uint32(got))
	}
	if got := ColorFromFloats(2, -1, 0.5, 1); got != RGBA(0xff, 0, 0x80, 0xff) {
		t.Errorf("ColorFromFloats clamp = %#08x", uint32(got))
	}
}
