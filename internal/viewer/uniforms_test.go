package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/prismview/pkg/math"
)

func TestUniformsAppendToLayout(t *testing.T) {
	u := Uniforms{
		Projection:      math.Mat4(mgl32.Translate3D(1, 0, 0)),
		View:            math.Mat4(mgl32.Translate3D(0, 2, 0)),
		Model:           math.Mat4(mgl32.Translate3D(0, 0, 3)),
		ModelIT:         math.Mat4(mgl32.Scale3D(4, 4, 4)),
		ViewPos:         math.Vec4{X: 1, Y: 2, Z: 3, W: 0},
		LightPos:        math.Vec4{X: 4, Y: 5, Z: 6, W: 0.2},
		LightColor:      math.Vec4{X: 0.1, Y: 0.2, Z: 0.3, W: 1},
		AmbientColor:    math.Vec4{X: 0.4, Y: 0.5, Z: 0.6, W: 1},
		AmbientStrength: 0.7,
	}

	got := u.AppendTo(nil)
	if len(got) != UniformFloats {
		t.Fatalf("packed %d floats, want %d", len(got), UniformFloats)
	}
	if UniformSize != 324 {
		t.Errorf("UniformSize = %d, want 324", UniformSize)
	}

	mats := []struct {
		name   string
		offset int
		want   math.Mat4
	}{
		{"projection", offsetProjection, u.Projection},
		{"view", offsetView, u.View},
		{"model", offsetModel, u.Model},
		{"model_it", offsetModelIT, u.ModelIT},
	}
	for _, m := range mats {
		for i := 0; i < 16; i++ {
			if got[m.offset+i] != m.want[i] {
				t.Errorf("%s[%d] = %f, want %f", m.name, i, got[m.offset+i], m.want[i])
			}
		}
	}

	vecs := []struct {
		name   string
		offset int
		want   math.Vec4
	}{
		{"view_pos", offsetViewPos, u.ViewPos},
		{"light_pos", offsetLightPos, u.LightPos},
		{"light_color", offsetLightColor, u.LightColor},
		{"ambient_color", offsetAmbientColor, u.AmbientColor},
	}
	for _, v := range vecs {
		packed := math.Vec4{X: got[v.offset], Y: got[v.offset+1], Z: got[v.offset+2], W: got[v.offset+3]}
		if packed != v.want {
			t.Errorf("%s = %v, want %v", v.name, packed, v.want)
		}
	}

	if got[offsetAmbientStrength] != 0.7 {
		t.Errorf("ambient_strength = %f, want 0.7", got[offsetAmbientStrength])
	}
}

func TestUniformsAppendToReusesBuffer(t *testing.T) {
	var u Uniforms
	buf := make([]float32, 0, UniformFloats)

	buf = u.AppendTo(buf[:0])
	first := &buf[0]
	buf = u.AppendTo(buf[:0])

	if &buf[0] != first {
		t.Error("AppendTo reallocated a buffer with enough capacity")
	}
}
