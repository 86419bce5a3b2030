package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/exo/pkg/math3d"
)

// LoadGLTF loads every mesh primitive of a glTF or GLB file into one polygon
// mesh. Triangles become faces, lines two-vertex polygons and points
// single-vertex polygons. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, m := range doc.Meshes {
		if err := appendGLTFMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Polygons) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyMesh)
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func appendGLTFMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		var arity int
		switch prim.Mode {
		case gltf.PrimitiveTriangles:
			arity = 3
		case gltf.PrimitiveLines:
			arity = 2
		case gltf.PrimitivePoints:
			arity = 1
		default:
			// Strips and fans are rare in exported assets.
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+arity <= len(indices); i += arity {
			poly := make(Polygon, arity)
			for j := range arity {
				k := int(indices[i+j])
				if k >= len(positions) {
					return fmt.Errorf("index %d out of range (%d positions)", k, len(positions))
				}
				p := positions[k]
				poly[j] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
			}
			mesh.Polygons = append(mesh.Polygons, poly)
		}

		if prim.Material != nil && len(mesh.Materials) == 0 {
			mesh.Materials = append(mesh.Materials, gltfMaterial(doc.Materials[*prim.Material]))
		}
	}
	return nil
}

func gltfMaterial(mat *gltf.Material) Material {
	out := Material{Name: mat.Name, BaseColor: [4]float64{1, 1, 1, 1}}
	if pbr := mat.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
		out.BaseColor = *pbr.BaseColorFactor
	}
	return out
}
