package render

import (
	"image"

	"github.com/taigrr/exo/pkg/math3d"
)

// span is the horizontal extent of a triangle on one scanline, with the
// depth found at each end.
type span struct {
	minX, maxX int
	minZ, maxZ float64
	set        bool
}

func (s *span) add(x int, z float64) {
	if !s.set {
		*s = span{minX: x, maxX: x, minZ: z, maxZ: z, set: true}
		return
	}
	if x < s.minX {
		s.minX, s.minZ = x, z
	}
	if x > s.maxX {
		s.maxX, s.maxZ = x, z
	}
}

// FilledTriangle rasterizes a screen-space triangle in one pass. The three
// edges (p0-p1, p1-p2, p2-p0) are traced into per-scanline spans; pixels on
// an edge whose outline flag is set take color c and every other span pixel
// takes fill. A transparent fill leaves the interior untouched. Depth is
// interpolated linearly across each span.
//
// The triangle is rejected when any vertex is outside the viewport expanded
// by Tolerance, or beyond the far plane.
func (r *Rasterizer) FilledTriangle(p0, p1, p2 math3d.Vec3, outline [3]bool, c, fill Color) {
	r.Stats.Triangles++
	w, h := r.Width(), r.Height()
	if OutOfBounds(p0, w, h, r.Tolerance) || OutOfBounds(p1, w, h, r.Tolerance) ||
		OutOfBounds(p2, w, h, r.Tolerance) {
		return
	}

	yMin := min(int(p0.Y), int(p1.Y), int(p2.Y))
	yMax := max(int(p0.Y), int(p1.Y), int(p2.Y))
	rows := yMax - yMin + 1
	if cap(r.spans) < rows {
		r.spans = make([]span, rows)
	} else {
		r.spans = r.spans[:rows]
		clear(r.spans)
	}
	clear(r.outline)

	edges := [3][2]math3d.Vec3{{p0, p1}, {p1, p2}, {p2, p0}}
	for i, e := range edges {
		onOutline := outline[i]
		r.trace(e[0], e[1], func(x, y int, z float64) {
			r.spans[y-yMin].add(x, z)
			if onOutline {
				r.outline[image.Pt(x, y)] = struct{}{}
			}
		})
	}

	for row := range r.spans {
		s := r.spans[row]
		if !s.set {
			continue
		}
		y := yMin + row
		width := float64(max(s.maxX-s.minX, 1))
		for x := s.minX; x <= s.maxX; x++ {
			z := s.minZ + (s.maxZ-s.minZ)*float64(x-s.minX)/width
			if _, edge := r.outline[image.Pt(x, y)]; edge {
				r.SetPixel(x, y, z, c)
			} else if fill.Filled() {
				r.SetPixel(x, y, z, fill)
			}
		}
	}
}
