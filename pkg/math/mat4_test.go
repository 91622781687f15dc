package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees

	// +X maps to -Z: column 0 holds the image of the X axis.
	if abs(m[0]) > 0.001 || abs(m[1]) > 0.001 || abs(m[2]+1) > 0.001 {
		t.Errorf("RotateY 90 x axis: got (%f, %f, %f), want (0, 0, -1)", m[0], m[1], m[2])
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// Transform eye position - should result in origin (or close to it)
	// This is a simple sanity check
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	got := Perspective(Radians(90), 16.0/9.0, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(90), 16.0/9.0, 0.1, 100)
	assertMatNear(t, "Perspective", got, want)
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := Vec3{0, 0, 2}
	front := Vec3{0.3, -0.2, -1}.Normalize()
	up := Vec3{0, 1, 0}

	got := LookAt(eye, eye.Add(front), up)
	want := mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{eye.X + front.X, eye.Y + front.Y, eye.Z + front.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)
	assertMatNear(t, "LookAt", got, want)
}

func TestRotateYMatchesMathGL(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, 215, -720.5} {
		want := mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
		assertMatNear(t, "RotateY", RotateY(Radians(deg)), want)
	}
}

func TestInverse(t *testing.T) {
	ref := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.Mat4(RotateY(0.7))).
		Mul4(mgl32.Scale3D(2, 0.5, 4))
	m := Mat4(ref)

	got := ref.Mul4(mgl32.Mat4(m.Inverse()))
	assertMatNear(t, "M * M^-1", Mat4(got), mgl32.Ident4())
	assertMatNear(t, "Inverse", m.Inverse(), ref.Inv())
}

func TestInverseSingular(t *testing.T) {
	if got := (Mat4{}).Inverse(); got != Identity() {
		t.Errorf("singular Inverse = %v, want identity", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Mat4{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}
	got := m.Transpose()
	if got != Mat4(mgl32.Mat4(m).Transpose()) {
		t.Errorf("Transpose = %v", got)
	}
	if got.Transpose() != m {
		t.Error("Transpose twice should return the original matrix")
	}
}

func TestNormalMatrix(t *testing.T) {
	// Pure rotation: the normal matrix is the rotation itself.
	r := RotateY(Radians(37))
	assertMatNear(t, "NormalMatrix(rotation)", r.NormalMatrix(), mgl32.Mat4(r))

	// Non-uniform scale: transformed normals stay perpendicular to tangents.
	ref := mgl32.Scale3D(4, 1, 1).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45)))
	m := Mat4(ref)
	tangent := mgl32.Vec4{1, 1, 0, 0}
	normal := mgl32.Vec4{1, -1, 0, 0}
	tt := ref.Mul4x1(tangent)
	nn := mgl32.Mat4(m.NormalMatrix()).Mul4x1(normal)
	if d := tt.Dot(nn); abs(d) > 1e-4 {
		t.Errorf("normal not perpendicular after transform: dot = %f", d)
	}
}

func assertMatNear(t *testing.T, name string, got Mat4, want mgl32.Mat4) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("%s element %d: got %f, want %f", name, i, got[i], want[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
