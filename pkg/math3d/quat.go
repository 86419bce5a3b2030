package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a rotation quaternion. Orientation state throughout exo uses the
// mgl64 type directly so composition, inversion and normalization come from
// the library.
type Quat = mgl64.Quat

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return mgl64.QuatIdent()
}

// QuatAxisAngle returns a rotation of angle radians around axis.
func QuatAxisAngle(axis Vec3, angle float64) Quat {
	return mgl64.QuatRotate(angle, axis.Normalize().GL())
}

// QuatEulerXYZ composes rotations about X, then Y, then Z in the body frame,
// equal to qx * qy * qz.
func QuatEulerXYZ(x, y, z float64) Quat {
	return mgl64.AnglesToQuat(x, y, z, mgl64.XYZ)
}

// EulerXYZ decomposes q into the angles accepted by QuatEulerXYZ. The middle
// angle is clamped to [-pi/2, pi/2].
func EulerXYZ(q Quat) Vec3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	sy := 2 * (x*z + w*y)
	sy = math.Max(-1, math.Min(1, sy))
	return Vec3{
		X: math.Atan2(2*(w*x-y*z), 1-2*(x*x+y*y)),
		Y: math.Asin(sy),
		Z: math.Atan2(2*(w*z-x*y), 1-2*(y*y+z*z)),
	}
}

// RotateVec rotates v by q.
func RotateVec(q Quat, v Vec3) Vec3 {
	return FromGL(q.Rotate(v.GL()))
}

// RotationTranslation builds the rigid transform T * R.
func RotationTranslation(q Quat, t Vec3) Mat4 {
	return Mat4(mgl64.Translate3D(t.X, t.Y, t.Z).Mul4(q.Mat4()))
}

// QuatFromMat4 extracts the rotation part of a rigid transform.
func QuatFromMat4(m Mat4) Quat {
	return mgl64.Mat4ToQuat(mgl64.Mat4(m))
}

// QuatUnit rescales q to unit length. Unlike Quat.Normalize it always
// divides, so repeated composition cannot drift inside the library's
// equality epsilon. The zero quaternion returns the identity.
func QuatUnit(q Quat) Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdent()
	}
	return q.Scale(1 / l)
}
