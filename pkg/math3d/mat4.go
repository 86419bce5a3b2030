package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4x4 matrix stored in column-major order, bit-compatible with
// mgl64.Mat4.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4(mgl64.Ident4())
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4(mgl64.Translate3D(v.X, v.Y, v.Z))
}

// Scale creates a non-uniform scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4(mgl64.Scale3D(v.X, v.Y, v.Z))
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// Rotate creates a rotation of angle radians around axis.
func Rotate(axis Vec3, angle float64) Mat4 {
	return Mat4(mgl64.HomogRotate3D(angle, axis.Normalize().GL()))
}

// LookAt creates a right-handed view matrix looking from eye towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	return Mat4(mgl64.LookAtV(eye.GL(), center.GL(), up.GL()))
}

// Perspective creates an OpenGL-style projection. fovy is the vertical
// field of view in radians.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	return Mat4(mgl64.Perspective(fovy, aspect, near, far))
}

// PerspectiveHorizontal creates a projection whose field of view spans the
// width of the viewport. The horizontal scale is 1/tan(fovx/2) and the
// vertical scale follows from the aspect ratio (width/height).
func PerspectiveHorizontal(fovx, aspect, near, far float64) Mat4 {
	fovy := 2 * math.Atan(math.Tan(fovx/2)/aspect)
	return Perspective(fovy, aspect, near, far)
}

// Mul returns a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	return Mat4(mgl64.Mat4(a).Mul4(mgl64.Mat4(b)))
}

// MulVec3 transforms v as a point (w=1) including the homogeneous divide.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 1)).PerspectiveDivide()
}

// MulVec3Dir transforms v as a direction (w=0).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 0)).Vec3()
}

// MulVec4 transforms a homogeneous vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	r := mgl64.Mat4(m).Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, v.W})
	return Vec4{r[0], r[1], r[2], r[3]}
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	return mgl64.Mat4(m).Det()
}

// Inverse returns the inverse of the matrix, or the identity when m is
// singular.
func (m Mat4) Inverse() Mat4 {
	if m.Determinant() == 0 {
		return Identity()
	}
	return Mat4(mgl64.Mat4(m).Inv())
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Translation extracts the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m Mat4) ApproxEqual(n Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}
