package render

import (
	"strings"
	"sync"

	"golang.org/x/image/font/basicfont"
)

// Glyph is a 1-bit bitmap listed top row first. BlitGlyph walks it from the
// last row upward, so the bottom row of the glyph lands on the origin y.
type Glyph [][]bool

// Font is a fixed-cell bitmap font. Every character occupies Advance pixels
// horizontally regardless of its bitmap width.
type Font struct {
	Advance int
	// LineAdvance is the vertical distance between lines. Zero means
	// Advance.
	LineAdvance int
	Glyphs      map[rune]Glyph
}

func (f *Font) lineAdvance() int {
	if f.LineAdvance > 0 {
		return f.LineAdvance
	}
	return f.Advance
}

// TextWidth returns the pixel width of the longest line of text.
func (f *Font) TextWidth(text string, scale int) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		widest = max(widest, len([]rune(line))*f.Advance*scale)
	}
	return widest
}

// BlitGlyph draws g with its bottom-left corner at (x, y). Each set bit
// becomes a scale x scale block.
func (r *Rasterizer) BlitGlyph(x, y int, depth float64, g Glyph, scale int, c Color) {
	if scale <= 0 {
		return
	}
	for i := range g {
		row := g[len(g)-1-i]
		for j, on := range row {
			if !on {
				continue
			}
			for di := range scale {
				for dj := range scale {
					r.SetPixel(x+scale*j+dj, y+scale*i+di, depth, c)
				}
			}
		}
	}
}

// DrawText lays glyphs left to right from (x, y), advancing one fixed cell
// per rune. A line feed returns to x and moves one line down. Runes missing
// from the font still take up a cell.
func (r *Rasterizer) DrawText(x, y int, depth float64, text string, f *Font, scale int, c Color) {
	dx, dy := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			dx = 0
			dy -= f.lineAdvance() * scale
			continue
		}
		if g, ok := f.Glyphs[ch]; ok {
			r.BlitGlyph(x+dx, y+dy, depth, g, scale, c)
		}
		dx += f.Advance * scale
	}
}

// FontFromFace converts a basicfont face into a Font. Each glyph cell is
// sampled from the face's mask and thresholded at half coverage.
func FontFromFace(face *basicfont.Face) *Font {
	f := &Font{
		Advance:     face.Advance,
		LineAdvance: face.Height,
		Glyphs:      make(map[rune]Glyph),
	}
	for _, rng := range face.Ranges {
		for ch := rng.Low; ch < rng.High; ch++ {
			top := (int(ch-rng.Low) + rng.Offset) * face.Height
			g := make(Glyph, face.Height)
			for row := range g {
				g[row] = make([]bool, face.Width)
				for col := range g[row] {
					_, _, _, a := face.Mask.At(col, top+row).RGBA()
					g[row][col] = a >= 0x8000
				}
			}
			f.Glyphs[ch] = g
		}
	}
	return f
}

var basicFont = sync.OnceValue(func() *Font {
	return FontFromFace(basicfont.Face7x13)
})

// BasicFont returns the shared 7x13 font.
func BasicFont() *Font {
	return basicFont()
}
