package render

import (
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

// MeshRenderer is the read-only polygon view of a mesh. It lives here rather
// than in models so render does not depend on the loaders.
type MeshRenderer interface {
	PolygonCount() int
	Polygon(i int) []math3d.Vec3
}

// BoundedMeshRenderer is a mesh that reports its local bounding box, which
// enables frustum culling.
type BoundedMeshRenderer interface {
	MeshRenderer
	Bounds() (min, max math3d.Vec3)
}

// Tier is a level-of-detail rendering mode.
type Tier int

const (
	TierFull      Tier = iota // filled and outlined
	TierWireframe             // outline only
	TierPoint                 // a single pixel at the object origin
)

// LOD holds the camera distances at which an object degrades. Point must be
// greater than Wireframe.
type LOD struct {
	Wireframe float64
	Point     float64
}

// Tier selects the rendering mode for an object at distance d.
func (l LOD) Tier(d float64) Tier {
	switch {
	case d > l.Point:
		return TierPoint
	case d > l.Wireframe:
		return TierWireframe
	default:
		return TierFull
	}
}

// Object is a mesh instance. Many objects may share one mesh; the mesh is
// never copied or mutated by rendering.
type Object struct {
	Mesh  MeshRenderer
	Model math3d.Mat4
	Color Color
	// Fill with zero alpha draws the mesh as wireframe.
	Fill Color
	// LOD is optional; nil always draws the full tier.
	LOD *LOD
}

// Position returns the object origin in world space.
func (o *Object) Position() math3d.Vec3 {
	return o.Model.Translation()
}

// DrawPoint3D projects a world point and draws it as one pixel.
func (r *Rasterizer) DrawPoint3D(v math3d.Vec3, c Color) {
	r.Stats.Points++
	p := r.projector().Project(v)
	if OutOfBounds(p, r.Width(), r.Height(), 0) {
		return
	}
	r.SetPixel(int(p.X), int(p.Y), p.Z, c)
}

// DrawLine3D projects a world segment and draws it with Line.
func (r *Rasterizer) DrawLine3D(v0, v1 math3d.Vec3, c Color) {
	proj := r.projector()
	r.Line(proj.Project(v0), proj.Project(v1), c)
}

// DrawPolygon3D transforms poly by model and draws it. One vertex is a
// point, two a line; three or more form a face that is fan-triangulated from
// vertex 0 and filled with a crisp outline when fill is set, or outlined
// otherwise.
func (r *Rasterizer) DrawPolygon3D(poly []math3d.Vec3, model math3d.Mat4, c, fill Color) {
	r.world = TransformPolygon(r.world[:0], poly, model)
	r.drawWorldPolygon(r.world, c, fill)
}

func (r *Rasterizer) drawWorldPolygon(world []math3d.Vec3, c, fill Color) {
	n := len(world)
	switch n {
	case 0:
		return
	case 1:
		r.DrawPoint3D(world[0], c)
		return
	case 2:
		r.DrawLine3D(world[0], world[1], c)
		return
	}

	proj := r.projector()
	r.screen = r.screen[:0]
	for _, v := range world {
		r.screen = append(r.screen, proj.Project(v))
	}
	s := r.screen

	filled := fill.Filled()
	if filled && r.Backface != BackfaceOff && r.facesAway(world) {
		r.Stats.Backfaces++
		if r.Backface == BackfaceSkip {
			return
		}
		filled = false
	}

	if filled {
		for i := 2; i < n; i++ {
			// Only the polygon's own edges are outlined, never the fan
			// diagonals.
			edges := [3]bool{i == 2, true, i == n-1}
			r.FilledTriangle(s[0], s[i-1], s[i], edges, c, fill)
		}
		return
	}
	for i := range n {
		r.Line(s[i], s[(i+1)%n], c)
	}
}

// facesAway reports whether the face normal, taken from the first three
// vertices, points away from the camera.
func (r *Rasterizer) facesAway(world []math3d.Vec3) bool {
	normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
	toFace := world[0].Sub(r.camera.Position())
	return normal.Dot(toFace) >= 0
}

// DrawMesh3D draws every polygon of mesh under one model transform.
func (r *Rasterizer) DrawMesh3D(mesh MeshRenderer, model math3d.Mat4, c, fill Color) {
	for i := range mesh.PolygonCount() {
		r.DrawPolygon3D(mesh.Polygon(i), model, c, fill)
	}
}

// DrawObject frustum-culls o when its mesh has bounds, picks an LOD tier
// from the camera distance, and draws it.
func (r *Rasterizer) DrawObject(o *Object) {
	r.Stats.Objects++
	if r.culled(o) {
		r.Stats.Culled++
		return
	}

	tier := TierFull
	if o.LOD != nil {
		tier = o.LOD.Tier(o.Position().Distance(r.camera.Position()))
	}
	switch tier {
	case TierPoint:
		r.DrawPoint3D(o.Position(), o.Color)
	case TierWireframe:
		r.DrawMesh3D(o.Mesh, o.Model, o.Color, Transparent)
	default:
		r.DrawMesh3D(o.Mesh, o.Model, o.Color, o.Fill)
	}
}

// culled tests the object's bounding sphere against the view frustum.
func (r *Rasterizer) culled(o *Object) bool {
	bounded, ok := o.Mesh.(BoundedMeshRenderer)
	if !ok {
		return false
	}
	lo, hi := bounded.Bounds()
	center := o.Model.MulVec3(lo.Add(hi).Scale(0.5))
	radius := hi.Sub(lo).Len() / 2 * maxAxisScale(o.Model)
	r.projector()
	return !r.frustum.IntersectsSphere(center, radius)
}

// maxAxisScale returns the largest basis vector length of m.
func maxAxisScale(m math3d.Mat4) float64 {
	sx := math3d.V3(m[0], m[1], m[2]).Len()
	sy := math3d.V3(m[4], m[5], m[6]).Len()
	sz := math3d.V3(m[8], m[9], m[10]).Len()
	return math.Max(sx, math.Max(sy, sz))
}
