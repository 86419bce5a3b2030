// Package models holds polygon meshes: the built-in ship and asteroid
// geometry and loaders for OBJ and glTF files.
package models

import (
	"errors"
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

var (
	// ErrEmptyMesh is returned when a file parses but yields no polygons.
	ErrEmptyMesh = errors.New("mesh has no polygons")
	// ErrUnsupportedFormat is returned for an unknown mesh file extension.
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
)

// Polygon is an ordered vertex list in model space. One vertex is a point,
// two a line segment, three or more a planar face.
type Polygon []math3d.Vec3

// Material is the flat base color a loader found for a mesh.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// Mesh is an ordered collection of polygons. A Mesh is shared read-only by
// every object that draws it; use Clone before mutating one that is in use.
type Mesh struct {
	Name      string
	Polygons  []Polygon
	Materials []Material

	// Bounding box, kept current by CalculateBounds.
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from polygons and computes its bounds.
func NewMesh(name string, polys ...Polygon) *Mesh {
	m := &Mesh{Name: name, Polygons: polys}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box of every vertex.
func (m *Mesh) CalculateBounds() {
	first := true
	for _, p := range m.Polygons {
		for _, v := range p {
			if first {
				m.BoundsMin, m.BoundsMax = v, v
				first = false
				continue
			}
			m.BoundsMin = m.BoundsMin.Min(v)
			m.BoundsMax = m.BoundsMax.Max(v)
		}
	}
	if first {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
	}
}

// PolygonCount returns the number of polygons.
// Implements render.MeshRenderer.
func (m *Mesh) PolygonCount() int {
	return len(m.Polygons)
}

// Polygon returns polygon i. Callers must not modify it.
// Implements render.MeshRenderer.
func (m *Mesh) Polygon(i int) []math3d.Vec3 {
	return m.Polygons[i]
}

// Bounds returns the axis-aligned bounding box.
// Implements render.BoundedMeshRenderer.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Radius returns the largest vertex distance from the model origin.
func (m *Mesh) Radius() float64 {
	r := 0.0
	for _, p := range m.Polygons {
		for _, v := range p {
			r = math.Max(r, v.Len())
		}
	}
	return r
}

// VertexCount returns the total vertex count over all polygons.
func (m *Mesh) VertexCount() int {
	n := 0
	for _, p := range m.Polygons {
		n += len(p)
	}
	return n
}

// TriangleCount returns how many triangles a fan fill of every face
// produces.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, p := range m.Polygons {
		n += max(len(p)-2, 0)
	}
	return n
}

// Color returns the first material color, if any.
func (m *Mesh) Color() ([4]float64, bool) {
	if len(m.Materials) == 0 {
		return [4]float64{}, false
	}
	return m.Materials[0].BaseColor, true
}

// Transform applies mat to every vertex in place and recomputes bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for _, p := range m.Polygons {
		for i := range p {
			p[i] = mat.MulVec3(p[i])
		}
	}
	m.CalculateBounds()
}

// Centered translates the mesh in place so its bounding box is centered on
// the origin.
func (m *Mesh) Centered() *Mesh {
	m.Transform(math3d.Translate(m.Center().Negate()))
	return m
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Polygons:  make([]Polygon, len(m.Polygons)),
		Materials: append([]Material(nil), m.Materials...),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	for i, p := range m.Polygons {
		clone.Polygons[i] = append(Polygon(nil), p...)
	}
	return clone
}
