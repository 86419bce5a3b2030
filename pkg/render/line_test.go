package render

import (
	"image"
	"math"
	"slices"
	"testing"

	"github.com/taigrr/exo/pkg/math3d"
)

func sortedPoints(pts []image.Point) []image.Point {
	out := slices.Clone(pts)
	slices.SortFunc(out, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func TestBresenhamSymmetric(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"shallow up right", 0, 0, 9, 3},
		{"steep up right", 0, 0, 3, 9},
		{"steep up left", 0, 0, -3, 9},
		{"shallow up left", 0, 0, -9, 3},
		{"shallow down left", 0, 0, -9, -3},
		{"steep down left", 0, 0, -3, -9},
		{"steep down right", 0, 0, 3, -9},
		{"shallow down right", 0, 0, 9, -3},
		{"diagonal", 2, 2, 12, 12},
		{"horizontal", 1, 4, 8, 4},
		{"vertical", 4, 1, 4, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fwd := Bresenham(nil, tc.x0, tc.y0, tc.x1, tc.y1)
			rev := Bresenham(nil, tc.x1, tc.y1, tc.x0, tc.y0)
			if !slices.Equal(sortedPoints(fwd), sortedPoints(rev)) {
				t.Errorf("forward %v != reverse %v", fwd, rev)
			}

			want := max(abs(tc.x1-tc.x0), abs(tc.y1-tc.y0)) + 1
			if len(fwd) != want {
				t.Errorf("len = %d, want %d", len(fwd), want)
			}
			if !slices.Contains(fwd, image.Pt(tc.x0, tc.y0)) || !slices.Contains(fwd, image.Pt(tc.x1, tc.y1)) {
				t.Errorf("endpoints missing from %v", fwd)
			}
		})
	}
}

func TestBresenhamDegenerate(t *testing.T) {
	pts := Bresenham(nil, 5, 5, 5, 5)
	if len(pts) != 1 || pts[0] != image.Pt(5, 5) {
		t.Errorf("got %v, want [(5,5)]", pts)
	}
}

func TestLineDepthInterpolation(t *testing.T) {
	r, fb := createTestRasterizer(20, 20)
	r.Line(math3d.V3(0, 5, 0.2), math3d.V3(10, 5, 0.8), White)

	if fb.At(5, 5) != White {
		t.Fatal("midpoint not drawn")
	}
	if d := r.Depth(5, 5); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("midpoint depth = %v, want 0.5", d)
	}
	if d := r.Depth(0, 5); math.Abs(d-0.2) > 1e-9 {
		t.Errorf("start depth = %v, want 0.2", d)
	}
}

func TestLineRejects(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 math3d.Vec3
	}{
		{"endpoint beyond tolerance", math3d.V3(5, 5, 0.5), math3d.V3(-1000, 5, 0.5)},
		{"endpoint beyond far plane", math3d.V3(5, 5, 0.5), math3d.V3(15, 5, 1.01)},
		{"behind camera", math3d.V3(5, 5, 0.5), math3d.V3(15, 5, math.Inf(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, fb := createTestRasterizer(20, 20)
			r.Line(tc.p0, tc.p1, White)
			if fb.At(5, 5) != Black {
				t.Error("rejected line drew pixels")
			}
			if r.Stats.Lines != 1 {
				t.Errorf("Stats.Lines = %d, want 1", r.Stats.Lines)
			}
		})
	}
}

func TestLineWithinToleranceIsClippedPerPixel(t *testing.T) {
	r, fb := createTestRasterizer(20, 20)
	r.Line(math3d.V3(-10, 5, 0.5), math3d.V3(10, 5, 0.5), White)
	if fb.At(0, 5) != White || fb.At(10, 5) != White {
		t.Error("visible part of the line missing")
	}
}

func BenchmarkLine(b *testing.B) {
	r, _ := createTestRasterizer(320, 200)
	p0, p1 := math3d.V3(3, 7, 0.4), math3d.V3(310, 190, 0.6)
	for b.Loop() {
		r.Line(p0, p1, White)
	}
}
