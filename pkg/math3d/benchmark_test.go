package math3d

import (
	"testing"
)

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3RotateY(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.RotateY(0.5)
	}
}

func BenchmarkVec3RotateX(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.RotateX(0.5)
	}
}

func BenchmarkCosineSimilarity(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = CosineSimilarity(v1, v2)
	}
}
