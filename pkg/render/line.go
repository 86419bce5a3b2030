package render

import (
	"image"

	"github.com/taigrr/exo/pkg/math3d"
)

// Bresenham appends the pixels of the segment (x0, y0)-(x1, y1) to dst using
// integer steps along the major axis. The endpoints are normalized so the
// major coordinate increases, so both directions yield the same pixels.
func Bresenham(dst []image.Point, x0, y0, x1, y1 int) []image.Point {
	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		dx, dy := x1-x0, y1-y0
		yi := 1
		if dy < 0 {
			yi, dy = -1, -dy
		}
		d := 2*dy - dx
		y := y0
		for x := x0; x <= x1; x++ {
			dst = append(dst, image.Pt(x, y))
			if d > 0 {
				y += yi
				d += 2 * (dy - dx)
			} else {
				d += 2 * dy
			}
		}
		return dst
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx, dy := x1-x0, y1-y0
	xi := 1
	if dx < 0 {
		xi, dx = -1, -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		dst = append(dst, image.Pt(x, y))
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
	return dst
}

// trace walks the pixels between two screen points and hands each one to
// visit with its depth, interpolated by position along the major axis.
func (r *Rasterizer) trace(p0, p1 math3d.Vec3, visit func(x, y int, z float64)) {
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)
	xMajor := abs(y1-y0) < abs(x1-x0)
	steps := abs(y1 - y0)
	if xMajor {
		steps = abs(x1 - x0)
	}
	// A single-pixel segment has no length to divide by.
	denom := float64(max(steps, 1))

	r.points = Bresenham(r.points[:0], x0, y0, x1, y1)
	for _, p := range r.points {
		var t float64
		if xMajor {
			t = float64(abs(p.X-x0)) / denom
		} else {
			t = float64(abs(p.Y-y0)) / denom
		}
		visit(p.X, p.Y, p0.Z+(p1.Z-p0.Z)*t)
	}
}

// Line draws a depth-tested segment between two screen-space points.
//
// Lines are not clipped. When either endpoint falls outside the viewport
// expanded by Tolerance, or beyond the far plane, nothing is drawn.
func (r *Rasterizer) Line(p0, p1 math3d.Vec3, c Color) {
	r.Stats.Lines++
	w, h := r.Width(), r.Height()
	if OutOfBounds(p0, w, h, r.Tolerance) || OutOfBounds(p1, w, h, r.Tolerance) {
		return
	}
	r.trace(p0, p1, func(x, y int, z float64) {
		r.SetPixel(x, y, z, c)
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
