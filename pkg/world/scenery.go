package world

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/exo/pkg/math3d"
	"github.com/taigrr/exo/pkg/render"
)

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) math3d.Vec3 {
	for {
		v := math3d.V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		if l := v.Len(); l > 1e-9 {
			return v.Scale(1 / l)
		}
	}
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Stars is a backdrop of points at a fixed offset from the camera, so they
// never get closer however far the ship flies.
type Stars struct {
	Offsets []math3d.Vec3
	Colors  []render.Color
	center  math3d.Vec3
}

// NewStars scatters n stars of random gray level on a sphere.
func NewStars(rng *rand.Rand, n int, radius float64) *Stars {
	s := &Stars{
		Offsets: make([]math3d.Vec3, n),
		Colors:  make([]render.Color, n),
	}
	for i := range n {
		s.Offsets[i] = randomDirection(rng).Scale(radius)
		b := uint8(rng.IntN(256))
		s.Colors[i] = render.RGB(b, b, b)
	}
	return s
}

// Update re-centers the sphere on the camera.
func (s *Stars) Update(center math3d.Vec3) { s.center = center }

func (s *Stars) Draw(r *render.Rasterizer) {
	for i, off := range s.Offsets {
		r.DrawPoint3D(s.center.Add(off), s.Colors[i])
	}
}

// Dust is a cloud of world-fixed points kept in a shell around the camera.
// Points falling behind the outer radius are replaced on the shell, and
// brightness fades with distance so respawns are invisible.
type Dust struct {
	Points []math3d.Vec3
	Colors []render.Color
	Count  int
	Min    float64
	Max    float64
	rng    *rand.Rand
}

// NewDust fills the whole ball of radius max around the origin.
func NewDust(rng *rand.Rand, count int, minDist, maxDist float64) *Dust {
	d := &Dust{Count: count, Min: minDist, Max: maxDist, rng: rng}
	d.refill(math3d.Zero3(), true)
	return d
}

// Update drops points beyond Max from center and respawns them on the
// shell.
func (d *Dust) Update(center math3d.Vec3) {
	d.refill(center, false)
}

func (d *Dust) refill(center math3d.Vec3, first bool) {
	kept := d.Points[:0]
	for _, p := range d.Points {
		if p.Sub(center).Len() <= d.Max {
			kept = append(kept, p)
		}
	}
	d.Points = kept

	lo := d.Min * d.Min * d.Min
	if first {
		lo = 0
	}
	hi := d.Max * d.Max * d.Max
	for len(d.Points) < d.Count {
		// Cube-root radius keeps the density uniform through the volume.
		r := math.Cbrt(uniform(d.rng, lo, hi))
		d.Points = append(d.Points, center.Add(randomDirection(d.rng).Scale(r)))
	}

	d.Colors = d.Colors[:0]
	for _, p := range d.Points {
		b := 0.0
		if d.Min > 0 {
			b = math.Max(0, 1-p.Sub(center).Len()/d.Min)
		}
		d.Colors = append(d.Colors, render.ColorFromFloats(b, b, b, 1))
	}
}

func (d *Dust) Draw(r *render.Rasterizer) {
	for i, p := range d.Points {
		r.DrawPoint3D(p, d.Colors[i])
	}
}

// Asteroid is one spinning rock of the field.
type Asteroid struct {
	render.Object
	Axis  math3d.Vec3
	Speed float64 // rad/s
	Scale float64
}

// AsteroidParams shape a generated field.
type AsteroidParams struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	MinScale  float64
	MaxScale  float64
	// LOD distances per unit of scale.
	LODWireframe float64
	LODPoint     float64
}

// AsteroidField is a set of asteroids sharing one mesh.
type AsteroidField struct {
	Mesh      render.MeshRenderer
	Asteroids []Asteroid
}

// NewAsteroidField places p.Count asteroids around the origin. Distances are
// drawn so the field is uniform over area rather than clumped at the
// center.
func NewAsteroidField(rng *rand.Rand, mesh render.MeshRenderer, p AsteroidParams) *AsteroidField {
	f := &AsteroidField{Mesh: mesh, Asteroids: make([]Asteroid, 0, p.Count)}
	for range p.Count {
		dist := math.Sqrt(uniform(rng, p.MinRadius*p.MinRadius, p.MaxRadius*p.MaxRadius))
		pos := randomDirection(rng).Scale(dist)
		scale := uniform(rng, p.MinScale, p.MaxScale)
		axis := math3d.V3(uniform(rng, -1, 1), uniform(rng, -1, 1), uniform(rng, -1, 1)).Normalize()
		if axis.LenSq() == 0 {
			axis = math3d.Up()
		}
		f.Asteroids = append(f.Asteroids, Asteroid{
			Object: render.Object{
				Mesh:  mesh,
				Model: math3d.Translate(pos).Mul(math3d.ScaleUniform(scale)),
				Color: render.White,
				Fill:  render.Black,
				LOD:   &render.LOD{Wireframe: p.LODWireframe * scale, Point: p.LODPoint * scale},
			},
			Axis:  axis,
			Speed: uniform(rng, -1, 1),
			Scale: scale,
		})
	}
	return f
}

// Update spins every asteroid about its own axis.
func (f *AsteroidField) Update(dt float64) {
	for i := range f.Asteroids {
		a := &f.Asteroids[i]
		a.Model = a.Model.Mul(math3d.Rotate(a.Axis, a.Speed*dt))
	}
}

func (f *AsteroidField) Draw(r *render.Rasterizer) {
	for i := range f.Asteroids {
		r.DrawObject(&f.Asteroids[i].Object)
	}
}
