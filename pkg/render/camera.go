package render

import (
	"math"

	"github.com/taigrr/exo/pkg/math3d"
)

// Default clip planes. Depth precision is float64 end to end, so the far
// plane can be pushed well past 1e5 units.
const (
	DefaultNear = 0.01
	DefaultFar  = 100000.0
)

// Camera is a pose plus a perspective lens. The model matrix places the
// camera in the world and the view matrix is always its inverse; both are
// recomputed together whenever the pose changes.
type Camera struct {
	// FOV is the horizontal field of view in degrees.
	FOV  float64
	Near float64
	Far  float64

	position    math3d.Vec3
	orientation math3d.Quat
	model       math3d.Mat4
	view        math3d.Mat4

	// Cached projection, keyed by viewport size and lens.
	proj       math3d.Mat4
	projW      int
	projH      int
	projFOV    float64
	projNear   float64
	projFar    float64
	projCached bool
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(fovDegrees, near, far float64) *Camera {
	c := &Camera{
		FOV:  fovDegrees,
		Near: near,
		Far:  far,
	}
	c.SetPose(math3d.Zero3(), math3d.QuatIdent())
	return c
}

// SetPose places the camera and recomputes the model and view matrices.
func (c *Camera) SetPose(position math3d.Vec3, orientation math3d.Quat) {
	c.position = position
	c.orientation = orientation
	c.model = math3d.RotationTranslation(orientation, position)
	c.view = c.model.Inverse()
}

// LookAt places the camera at eye facing target, with up as the approximate
// up direction.
func (c *Camera) LookAt(eye, target, up math3d.Vec3) {
	c.view = math3d.LookAt(eye, target, up)
	c.model = c.view.Inverse()
	c.position = eye
	c.orientation = math3d.QuatFromMat4(c.model)
}

func (c *Camera) Position() math3d.Vec3    { return c.position }
func (c *Camera) Orientation() math3d.Quat { return c.orientation }
func (c *Camera) Model() math3d.Mat4       { return c.model }
func (c *Camera) View() math3d.Mat4        { return c.view }

// Forward returns the world-space viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.RotateVec(c.orientation, math3d.Forward())
}

// Projection returns the perspective matrix for a width x height viewport.
func (c *Camera) Projection(width, height int) math3d.Mat4 {
	if !c.projCached || c.projW != width || c.projH != height ||
		c.projFOV != c.FOV || c.projNear != c.Near || c.projFar != c.Far {
		aspect := float64(width) / float64(max(height, 1))
		c.proj = math3d.PerspectiveHorizontal(c.FOV/180*math.Pi, aspect, c.Near, c.Far)
		c.projW, c.projH = width, height
		c.projFOV, c.projNear, c.projFar = c.FOV, c.Near, c.Far
		c.projCached = true
	}
	return c.proj
}

// ViewProjection returns projection * view for the given viewport.
func (c *Camera) ViewProjection(width, height int) math3d.Mat4 {
	return c.Projection(width, height).Mul(c.view)
}

// Frustum extracts the view frustum for the given viewport.
func (c *Camera) Frustum(width, height int) Frustum {
	return NewFrustumFromMatrix(c.ViewProjection(width, height))
}
