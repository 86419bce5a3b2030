package render

import (
	"image"
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

// BackfacePolicy selects what happens to filled faces that point away from
// the camera.
type BackfacePolicy int

const (
	// BackfaceOutline draws back faces as outline only.
	BackfaceOutline BackfacePolicy = iota
	// BackfaceSkip drops back faces entirely.
	BackfaceSkip
	// BackfaceOff fills every face regardless of orientation.
	BackfaceOff
)

// ParseBackfacePolicy maps "outline", "skip" and "off" to a policy. Unknown
// names fall back to BackfaceOutline.
func ParseBackfacePolicy(name string) BackfacePolicy {
	switch name {
	case "skip":
		return BackfaceSkip
	case "off":
		return BackfaceOff
	default:
		return BackfaceOutline
	}
}

// DrawStats counts primitive invocations and object outcomes since the last
// ResetStats.
type DrawStats struct {
	Points    int // single pixel draws from DrawPoint3D
	Lines     int // Line calls
	Triangles int // FilledTriangle calls
	Objects   int // DrawObject calls
	Culled    int // objects rejected by the frustum test
	Backfaces int // filled faces that failed the facing test
}

// DefaultTolerance is how far, in pixels, a line or triangle vertex may sit
// outside the viewport before the whole primitive is rejected.
const DefaultTolerance = 64

// Rasterizer draws into a framebuffer with a parallel depth buffer. Depth
// buffer indexing matches the framebuffer: row 0 is the bottom row.
type Rasterizer struct {
	camera  *Camera
	fb      *Framebuffer
	zbuffer []float64

	// Tolerance expands the viewport for the cheap reject in Line and
	// FilledTriangle.
	Tolerance int
	Backface  BackfacePolicy
	Stats     DrawStats

	proj    Projector
	frustum Frustum
	hasProj bool

	// Scratch reused across calls.
	points  []image.Point
	spans   []span
	outline map[image.Point]struct{}
	world   []math3d.Vec3
	screen  []math3d.Vec3
}

// NewRasterizer creates a rasterizer drawing into fb through camera.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{
		camera:    camera,
		fb:        fb,
		Tolerance: DefaultTolerance,
		outline:   make(map[image.Point]struct{}),
	}
	r.Resize()
	return r
}

// Resize matches the depth buffer to the framebuffer dimensions.
func (r *Rasterizer) Resize() {
	if r.fb == nil {
		r.zbuffer = nil
		return
	}
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
	r.ClearDepth()
	r.hasProj = false
}

// SetFramebuffer switches to a new target and resizes the depth buffer.
func (r *Rasterizer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
	r.Resize()
}

func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }
func (r *Rasterizer) Camera() *Camera           { return r.camera }

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int {
	if r.fb == nil {
		return 0
	}
	return r.fb.Height
}

// ClearDepth resets every depth sample to the far sentinel.
func (r *Rasterizer) ClearDepth() {
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

// ResetStats zeroes the draw counters.
func (r *Rasterizer) ResetStats() {
	r.Stats = DrawStats{}
}

// depthIndex uses the same bottom-up row order as the framebuffer.
func (r *Rasterizer) depthIndex(x, y int) (int, bool) {
	w, h := r.Width(), r.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, false
	}
	return (h-1-y)*w + x, true
}

// Depth returns the stored depth at (x, y), or the sentinel when out of
// range.
func (r *Rasterizer) Depth(x, y int) float64 {
	i, ok := r.depthIndex(x, y)
	if !ok {
		return math.MaxFloat64
	}
	return r.zbuffer[i]
}

// SetPixel writes c at (x, y) when depth <= the stored depth, then stores
// depth. Ties go to the later write so an outline drawn after its fill at
// the same depth stays visible. Out-of-range pixels are dropped.
func (r *Rasterizer) SetPixel(x, y int, depth float64, c Color) {
	i, ok := r.depthIndex(x, y)
	if !ok || !(depth <= r.zbuffer[i]) {
		return
	}
	r.zbuffer[i] = depth
	r.fb.Set(x, y, c)
}

// Rectangle draws an axis-aligned outline between two corners, inclusive,
// at a fixed overlay depth. Corners are clamped to one pixel beyond the
// buffer on each side.
func (r *Rasterizer) Rectangle(x0, y0, x1, y1 int, depth float64, c Color) {
	x0, y0, x1, y1 = r.clampRect(x0, y0, x1, y1)
	for x := x0; x <= x1; x++ {
		r.SetPixel(x, y0, depth, c)
		r.SetPixel(x, y1, depth, c)
	}
	for y := y0 + 1; y < y1; y++ {
		r.SetPixel(x0, y, depth, c)
		r.SetPixel(x1, y, depth, c)
	}
}

// FilledRectangle fills the inclusive rectangle between two corners.
func (r *Rasterizer) FilledRectangle(x0, y0, x1, y1 int, depth float64, c Color) {
	x0, y0, x1, y1 = r.clampRect(x0, y0, x1, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.SetPixel(x, y, depth, c)
		}
	}
}

func (r *Rasterizer) clampRect(x0, y0, x1, y1 int) (int, int, int, int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return max(x0, -1), max(y0, -1), min(x1, r.Width()), min(y1, r.Height())
}

// projector returns a projector for the current camera pose, rebuilding it
// and the cached frustum when the camera or viewport changed.
func (r *Rasterizer) projector() *Projector {
	if !r.hasProj || r.proj.stale(r.camera, r.Width(), r.Height()) {
		r.proj = NewProjector(r.camera, r.Width(), r.Height())
		r.frustum = NewFrustumFromMatrix(r.proj.viewProj)
		r.hasProj = true
	}
	return &r.proj
}
