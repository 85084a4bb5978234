package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecClose(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); !vecClose(got, V3(5, 7, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); !vecClose(got, V3(3, 3, 3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); !vecClose(got, V3(2, 4, 6)) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.Negate(); !vecClose(got, V3(-1, -2, -3)) {
		t.Errorf("Negate = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)

	if got := x.Cross(y); !vecClose(got, V3(0, 0, 1)) {
		t.Errorf("x × y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); !vecClose(got, V3(0, 0, -1)) {
		t.Errorf("y × x = %v, want (0,0,-1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 0, 4).Normalize()
	if !vecClose(v, V3(0.6, 0, 0.8)) {
		t.Errorf("Normalize = %v", v)
	}

	// Zero vector must not divide by zero
	if got := Zero3().Normalize(); !vecClose(got, Zero3()) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestRotateY(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		rad  float64
		want Vec3
	}{
		{"quarter turn x", V3(1, 0, 0), math.Pi / 2, V3(0, 0, 1)},
		{"half turn x", V3(1, 0, 0), math.Pi, V3(-1, 0, 0)},
		{"y unchanged", V3(0, 1, 0), 1.234, V3(0, 1, 0)},
		{"full turn", V3(0.3, 0.5, -0.7), 2 * math.Pi, V3(0.3, 0.5, -0.7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.RotateY(tc.rad)
			if !vecClose(got, tc.want) {
				t.Errorf("RotateY(%v, %v) = %v, want %v", tc.v, tc.rad, got, tc.want)
			}
		})
	}
}

func TestRotateX(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		rad  float64
		want Vec3
	}{
		{"quarter turn y", V3(0, 1, 0), math.Pi / 2, V3(0, 0, 1)},
		{"half turn z", V3(0, 0, 1), math.Pi, V3(0, 0, -1)},
		{"x unchanged", V3(1, 0, 0), 0.789, V3(1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.RotateX(tc.rad)
			if !vecClose(got, tc.want) {
				t.Errorf("RotateX(%v, %v) = %v, want %v", tc.v, tc.rad, got, tc.want)
			}
		})
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := V3(0.3, -1.2, 2.5)
	for _, rad := range []float64{0.1, 1.0, 2.5, -0.7} {
		if got := v.RotateY(rad).Len(); math.Abs(got-v.Len()) > eps {
			t.Errorf("RotateY(%v) changed length: %v != %v", rad, got, v.Len())
		}
		if got := v.RotateX(rad).Len(); math.Abs(got-v.Len()) > eps {
			t.Errorf("RotateX(%v) changed length: %v != %v", rad, got, v.Len())
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"parallel", V3(1, 0, 0), V3(5, 0, 0), 1},
		{"opposite", V3(1, 0, 0), V3(-2, 0, 0), -1},
		{"orthogonal", V3(1, 0, 0), V3(0, 3, 0), 0},
		{"zero vector", Zero3(), V3(1, 2, 3), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CosineSimilarity(tc.a, tc.b); math.Abs(got-tc.want) > eps {
				t.Errorf("CosineSimilarity = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAngleConversion(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("Deg2Rad(180) = %v", got)
	}
	if got := Rad2Deg(math.Pi / 2); math.Abs(got-90) > eps {
		t.Errorf("Rad2Deg(pi/2) = %v", got)
	}
}
