package math3d

import (
	"math"
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := Rotate(V3(0, 1, 0), 0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(Rotate(V3(0, 1, 0), 0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(Rotate(V3(0, 1, 0), 0.5)).Mul(ScaleUniform(2))

	for b.Loop() {
		_ = m.Inverse()
	}
}

func BenchmarkQuatCompose(b *testing.B) {
	rot := QuatIdent()
	step := QuatEulerXYZ(0.001, 0.002, 0.003)

	for b.Loop() {
		rot = rot.Mul(step).Normalize()
	}
}

func BenchmarkEulerXYZ(b *testing.B) {
	q := QuatEulerXYZ(0.3, -0.2, 0.1)

	for b.Loop() {
		_ = EulerXYZ(q)
	}
}

func BenchmarkPerspectiveHorizontal(b *testing.B) {
	for b.Loop() {
		_ = PerspectiveHorizontal(math.Pi/2, 4.0/3.0, 0.01, 100000)
	}
}
