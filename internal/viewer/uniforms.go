package viewer

import "github.com/Faultbox/prismview/pkg/math"

// Uniforms is the per-frame snapshot consumed by the shaders. It is derived
// from the viewer state and never written back.
type Uniforms struct {
	Projection math.Mat4
	View       math.Mat4
	Model      math.Mat4
	ModelIT    math.Mat4 // inverse-transpose of Model

	ViewPos      math.Vec4
	LightPos     math.Vec4
	LightColor   math.Vec4
	AmbientColor math.Vec4

	AmbientStrength float32
}

// std140 layout of the Scene uniform block. Every member is 16-byte
// aligned already, so the packed floats need no padding.
const (
	UniformFloats = 4*16 + 4*4 + 1
	UniformSize   = UniformFloats * 4 // bytes

	offsetProjection      = 0
	offsetView            = 16
	offsetModel           = 32
	offsetModelIT         = 48
	offsetViewPos         = 64
	offsetLightPos        = 68
	offsetLightColor      = 72
	offsetAmbientColor    = 76
	offsetAmbientStrength = 80
)

// AppendTo appends the std140 packing of u to dst and returns the extended
// slice. Callers reuse dst across frames to avoid allocating.
func (u *Uniforms) AppendTo(dst []float32) []float32 {
	dst = append(dst, u.Projection[:]...)
	dst = append(dst, u.View[:]...)
	dst = append(dst, u.Model[:]...)
	dst = append(dst, u.ModelIT[:]...)
	dst = append(dst, u.ViewPos.X, u.ViewPos.Y, u.ViewPos.Z, u.ViewPos.W)
	dst = append(dst, u.LightPos.X, u.LightPos.Y, u.LightPos.Z, u.LightPos.W)
	dst = append(dst, u.LightColor.X, u.LightColor.Y, u.LightColor.Z, u.LightColor.W)
	dst = append(dst, u.AmbientColor.X, u.AmbientColor.Y, u.AmbientColor.Z, u.AmbientColor.W)
	dst = append(dst, u.AmbientStrength)
	return dst
}
