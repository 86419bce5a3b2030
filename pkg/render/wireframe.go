package render

import (
	"github.com/taigrr/exo/pkg/math3d"
)

// DrawAxes draws the world X, Y and Z axes from origin in red, green and
// blue.
func (r *Rasterizer) DrawAxes(origin math3d.Vec3, length float64) {
	r.DrawLine3D(origin, origin.Add(math3d.V3(length, 0, 0)), Red)
	r.DrawLine3D(origin, origin.Add(math3d.V3(0, length, 0)), Green)
	r.DrawLine3D(origin, origin.Add(math3d.V3(0, 0, length)), Blue)
}

// DrawBox draws the twelve edges of a local-space box under model.
func (r *Rasterizer) DrawBox(box AABB, model math3d.Mat4, c Color) {
	corners := box.Corners()
	for i := range corners {
		corners[i] = model.MulVec3(corners[i])
	}
	// Corners that differ in exactly one index bit share an edge.
	for i := range 8 {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				r.DrawLine3D(corners[i], corners[j], c)
			}
		}
	}
}
