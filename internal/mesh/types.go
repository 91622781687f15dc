// Package mesh builds procedural triangle-list meshes for GPU upload.
package mesh

import "github.com/Faultbox/prismview/pkg/math"

// MinFaces is the smallest lateral face count a prism can have.
const MinFaces = 3

// Vertex is a single triangle-list vertex. Color and UV are carried for the
// shader's attribute layout but are left at zero by the generators.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec4
	Normal   math.Vec3
	UV       math.Vec2
}

// Interleaved layout of a Vertex as uploaded to the vertex buffer.
const (
	FloatsPerVertex = 12
	Stride          = FloatsPerVertex * 4 // bytes

	PositionOffset = 0  // vec3
	ColorOffset    = 12 // vec4
	NormalOffset   = 28 // vec3
	UVOffset       = 40 // vec2
)

// Flatten interleaves vertices into a float32 slice matching Stride and the
// attribute offsets above.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.X, v.Color.Y, v.Color.Z, v.Color.W,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y,
		)
	}
	return out
}
