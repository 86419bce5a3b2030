package models

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/exo/pkg/math3d"
)

// Named hull points. The bow points down -Z and the stern, where the
// thrusters sit, is at z = 2.
var (
	sternL  = math3d.V3(-4, 0, 2)
	sternTL = math3d.V3(-2, 1, 2)
	sternTR = math3d.V3(2, 1, 2)
	sternR  = math3d.V3(4, 0, 2)
	sternBR = math3d.V3(2, -1, 2)
	sternBL = math3d.V3(-2, -1, 2)

	midL = math3d.V3(-3, 0, 0)
	midT = math3d.V3(0, 1, 0)
	midR = math3d.V3(3, 0, 0)
	midB = math3d.V3(0, -1, 0)

	bow = math3d.V3(0, 0, -2)

	thrusterLT = math3d.V3(-2, 0.5, 2)
	thrusterLB = math3d.V3(-2, -0.5, 2)
	thrusterLL = math3d.V3(-3, 0, 2)
	thrusterRT = math3d.V3(2, 0.5, 2)
	thrusterRB = math3d.V3(2, -0.5, 2)
	thrusterRR = math3d.V3(3, 0, 2)
)

// HullMesh returns the ship hull: a hexagonal stern plate, the midsection
// diamond, both thruster nozzles and the hull panels joining them to the bow.
// Face winding is not consistent, so the hull is meant to be drawn with the
// outline backface policy.
func HullMesh() *Mesh {
	return NewMesh("hull",
		Polygon{sternL, sternTL, sternTR, sternR, sternBR, sternBL},
		Polygon{midL, midT, midR, midB},
		Polygon{thrusterLT, thrusterLB, thrusterLL},
		Polygon{thrusterRT, thrusterRB, thrusterRR},
		Polygon{sternTL, sternTR, midT},
		Polygon{sternBR, sternBL, midB},
		Polygon{midT, midR, sternTR},
		Polygon{midR, midB, sternBR},
		Polygon{midL, midT, sternTL},
		Polygon{midL, midB, sternBL},
		Polygon{sternL, sternTL, midL},
		Polygon{sternTR, sternR, midR},
		Polygon{sternR, sternBR, midR},
		Polygon{sternL, sternBL, midL},
		Polygon{midL, midT, bow},
		Polygon{midT, midR, bow},
		Polygon{midR, midB, bow},
		Polygon{midL, midB, bow},
	)
}

// FrontThrusterMesh returns the two nozzle triangles lit by forward thrust.
func FrontThrusterMesh() *Mesh {
	return NewMesh("front-thruster",
		Polygon{thrusterLT, thrusterLB, thrusterLL},
		Polygon{thrusterRT, thrusterRB, thrusterRR},
	)
}

// ThrusterMounts are the nozzle exits in hull space, where exhaust spawns.
func ThrusterMounts() []math3d.Vec3 {
	return []math3d.Vec3{math3d.V3(-2.3, 0, 3), math3d.V3(2.3, 0, 3)}
}

var icosaFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// Asteroid returns a lumpy unit-radius rock: an icosahedron whose vertices
// are pulled toward the center by a random amount. Faces wind
// counter-clockwise seen from outside.
func Asteroid(rng *rand.Rand) *Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	verts := []math3d.Vec3{
		math3d.V3(-1, phi, 0), math3d.V3(1, phi, 0), math3d.V3(-1, -phi, 0), math3d.V3(1, -phi, 0),
		math3d.V3(0, -1, phi), math3d.V3(0, 1, phi), math3d.V3(0, -1, -phi), math3d.V3(0, 1, -phi),
		math3d.V3(phi, 0, -1), math3d.V3(phi, 0, 1), math3d.V3(-phi, 0, -1), math3d.V3(-phi, 0, 1),
	}
	for i, v := range verts {
		verts[i] = v.Normalize().Scale(0.7 + 0.3*rng.Float64())
	}

	polys := make([]Polygon, len(icosaFaces))
	for i, f := range icosaFaces {
		polys[i] = Polygon{verts[f[0]], verts[f[1]], verts[f[2]]}
	}
	return NewMesh("asteroid", polys...)
}
