package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Array(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("Vec3.Array() = %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if n != (Vec3{0.6, 0, 0.8}) {
		t.Errorf("Vec3.Normalize() = %v", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", z)
	}
}

func TestVec4(t *testing.T) {
	v := V4(Vec3{1, 2, 3}, 0.2)
	if v.XYZ() != (Vec3{1, 2, 3}) || v.W != 0.2 {
		t.Errorf("V4/XYZ round trip = %v", v)
	}
}

func TestRadiansAndClamp(t *testing.T) {
	if got := Radians(180); abs(got-3.1415927) > 1e-6 {
		t.Errorf("Radians(180) = %v", got)
	}
	tests := []struct {
		v, want float32
	}{
		{-100, -89},
		{-89, -89},
		{12.5, 12.5},
		{89, 89},
		{89.0001, 89},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -89, 89); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
