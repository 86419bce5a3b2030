package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/exo/pkg/math3d"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads the geometry subset of OBJ: "v x y z" vertices, "f" faces,
// "l" polylines and "p" points. Face references may use the v/vt/vn forms
// and negative (relative) indices; texture and normal references are
// ignored, as is every other statement.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	var verts []math3d.Vec3
	mesh := NewMesh(name)

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var c [3]float64
			for i := range c {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				c[i] = v
			}
			verts = append(verts, math3d.V3(c[0], c[1], c[2]))

		case "f", "l", "p":
			poly, err := objPolygon(fields[1:], verts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if fields[0] == "l" {
				// A polyline is a chain of segments, not a closed face.
				for i := 0; i+1 < len(poly); i++ {
					mesh.Polygons = append(mesh.Polygons, Polygon{poly[i], poly[i+1]})
				}
				continue
			}
			if fields[0] == "p" {
				for _, v := range poly {
					mesh.Polygons = append(mesh.Polygons, Polygon{v})
				}
				continue
			}
			mesh.Polygons = append(mesh.Polygons, poly)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Polygons) == 0 {
		return nil, ErrEmptyMesh
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// objPolygon resolves 1-based or negative vertex references.
func objPolygon(refs []string, verts []math3d.Vec3) (Polygon, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("element has no vertices")
	}
	poly := make(Polygon, 0, len(refs))
	for _, ref := range refs {
		vs, _, _ := strings.Cut(ref, "/")
		idx, err := strconv.Atoi(vs)
		if err != nil {
			return nil, fmt.Errorf("bad vertex reference %q", ref)
		}
		if idx < 0 {
			idx = len(verts) + idx
		} else {
			idx--
		}
		if idx < 0 || idx >= len(verts) {
			return nil, fmt.Errorf("vertex reference %q out of range", ref)
		}
		poly = append(poly, verts[idx])
	}
	return poly, nil
}

// Load picks a loader by file extension.
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
