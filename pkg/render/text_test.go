package render

import (
	"testing"
)

func TestBlitGlyphBottomUp(t *testing.T) {
	// Top row lights column 0, bottom row lights column 1.
	g := Glyph{
		{true, false},
		{false, true},
	}

	tests := []struct {
		name  string
		scale int
		lit   [][2]int
		dark  [][2]int
	}{
		{
			name:  "scale 1",
			scale: 1,
			lit:   [][2]int{{11, 10}, {10, 11}},
			dark:  [][2]int{{10, 10}, {11, 11}},
		},
		{
			name:  "scale 2",
			scale: 2,
			lit:   [][2]int{{12, 10}, {13, 11}, {10, 12}, {11, 13}},
			dark:  [][2]int{{10, 10}, {12, 12}},
		},
		{
			name:  "zero scale draws nothing",
			scale: 0,
			dark:  [][2]int{{11, 10}, {10, 11}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, fb := createTestRasterizer(32, 32)
			r.BlitGlyph(10, 10, 0, g, tc.scale, White)
			for _, p := range tc.lit {
				if fb.At(p[0], p[1]) != White {
					t.Errorf("pixel %v not lit", p)
				}
			}
			for _, p := range tc.dark {
				if fb.At(p[0], p[1]) != Black {
					t.Errorf("pixel %v lit", p)
				}
			}
		})
	}
}

func TestDrawTextLayout(t *testing.T) {
	dot := Glyph{{true}}
	f := &Font{Advance: 4, LineAdvance: 5, Glyphs: map[rune]Glyph{'a': dot}}

	tests := []struct {
		name  string
		text  string
		scale int
		lit   [][2]int
	}{
		{"advance", "aa", 1, [][2]int{{0, 20}, {4, 20}}},
		{"line feed moves down", "a\na", 1, [][2]int{{0, 20}, {0, 15}}},
		{"unknown rune keeps its cell", "?a", 1, [][2]int{{4, 20}}},
		{"scaled advance", "aa", 2, [][2]int{{0, 20}, {8, 20}, {9, 21}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, fb := createTestRasterizer(32, 32)
			r.DrawText(0, 20, 0, tc.text, f, tc.scale, White)
			for _, p := range tc.lit {
				if fb.At(p[0], p[1]) != White {
					t.Errorf("pixel %v not lit", p)
				}
			}
		})
	}
}

func TestFontLineAdvanceDefaultsToAdvance(t *testing.T) {
	f := &Font{Advance: 6, Glyphs: map[rune]Glyph{'a': {{true}}}}
	r, fb := createTestRasterizer(32, 32)
	r.DrawText(0, 20, 0, "a\na", f, 1, White)
	if fb.At(0, 14) != White {
		t.Error("second line not one advance below the first")
	}
}

func TestFontLineAdvanceScales(t *testing.T) {
	f := &Font{Advance: 6, LineAdvance: 10, Glyphs: map[rune]Glyph{'a': {{true}}}}
	r, fb := createTestRasterizer(32, 32)
	r.DrawText(0, 20, 0, "a\na", f, 2, White)
	if fb.At(0, 0) != White {
		t.Error("second line not LineAdvance*scale below the first")
	}
	if fb.At(0, 8) == White {
		t.Error("second line placed by the horizontal advance")
	}
}

func TestBasicFont(t *testing.T) {
	f := BasicFont()
	if f != BasicFont() {
		t.Error("BasicFont is not shared")
	}
	if f.Advance != 7 || f.LineAdvance != 13 {
		t.Errorf("metrics = %d/%d, want 7/13", f.Advance, f.LineAdvance)
	}

	g, ok := f.Glyphs['A']
	if !ok {
		t.Fatal("missing 'A'")
	}
	lit := 0
	for _, row := range g {
		for _, on := range row {
			if on {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("'A' has no set bits")
	}
	if space := f.Glyphs[' ']; space != nil {
		for _, row := range space {
			for _, on := range row {
				if on {
					t.Fatal("space glyph has set bits")
				}
			}
		}
	}

	if w := f.TextWidth("ab\ncde", 1); w != 21 {
		t.Errorf("TextWidth = %d, want 21", w)
	}
}
