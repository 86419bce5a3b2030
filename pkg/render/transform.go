package render

import (
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

// TransformVertex applies a model transform to a point.
func TransformVertex(v math3d.Vec3, model math3d.Mat4) math3d.Vec3 {
	return model.MulVec3(v)
}

// TransformPolygon appends the transformed vertices of poly to dst,
// preserving order.
func TransformPolygon(dst, poly []math3d.Vec3, model math3d.Mat4) []math3d.Vec3 {
	for _, v := range poly {
		dst = append(dst, model.MulVec3(v))
	}
	return dst
}

// TransformMesh returns a transformed copy of every polygon in mesh.
func TransformMesh(mesh MeshRenderer, model math3d.Mat4) [][]math3d.Vec3 {
	out := make([][]math3d.Vec3, mesh.PolygonCount())
	for i := range out {
		out[i] = TransformPolygon(nil, mesh.Polygon(i), model)
	}
	return out
}

// Projector maps world points to screen space for one camera pose and
// viewport.
//
// Screen x and y are pixel coordinates with y growing upward (the flip is
// done at the pixel write). Screen z is the depth remapped from NDC back to
// [near, far] and divided by far, so visible points have z <= 1 and z grows
// monotonically with eye distance.
type Projector struct {
	viewProj math3d.Mat4
	view     math3d.Mat4
	width    int
	height   int
	fov      float64
	near     float64
	far      float64
}

// NewProjector captures the camera's current view and lens.
func NewProjector(cam *Camera, width, height int) Projector {
	return Projector{
		viewProj: cam.ViewProjection(width, height),
		view:     cam.View(),
		width:    width,
		height:   height,
		fov:      cam.FOV,
		near:     cam.Near,
		far:      cam.Far,
	}
}

// stale reports whether the camera or viewport moved since p was built.
func (p *Projector) stale(cam *Camera, width, height int) bool {
	return p.view != cam.View() || p.width != width || p.height != height ||
		p.fov != cam.FOV || p.near != cam.Near || p.far != cam.Far
}

// Project converts a world point to screen space.
func (p Projector) Project(v math3d.Vec3) math3d.Vec3 {
	clip := p.viewProj.MulVec4(math3d.V4FromV3(v, 1))
	// W is the eye distance along the view axis. Points nearer than the near
	// plane, or behind the eye, get an infinite depth that every reject test
	// drops.
	if clip.W < p.near {
		return math3d.V3(0, 0, math.Inf(1))
	}
	ndc := clip.PerspectiveDivide()
	w, h := float64(p.width), float64(p.height)
	n, f := p.near, p.far
	return math3d.V3(
		w/2*ndc.X+w/2,
		h/2*ndc.Y+h/2,
		((f-n)/2*ndc.Z+(f+n)/2)/f,
	)
}

// WorldToScreen projects a single world point through cam.
func WorldToScreen(v math3d.Vec3, cam *Camera, width, height int) math3d.Vec3 {
	return NewProjector(cam, width, height).Project(v)
}

// OutOfBounds reports whether a screen point lies outside the viewport
// expanded by tolerance pixels on every side, or has a depth outside [0, 1].
func OutOfBounds(p math3d.Vec3, width, height, tolerance int) bool {
	x, y := math.Trunc(p.X), math.Trunc(p.Y)
	tol := float64(tolerance)
	inside := x >= -tol && x < float64(width)+tol &&
		y >= -tol && y < float64(height)+tol &&
		p.Z >= 0 && p.Z <= 1
	// NaN fails every comparison above and lands here as well.
	return !inside
}
