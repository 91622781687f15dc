package mesh

import (
	gomath "math"

	"github.com/Faultbox/prismview/pkg/math"
)

// Prism dimensions. The prism is inscribed in a circle of radius prismRadius
// around the Y axis and centered on the origin.
const (
	prismRadius = 1.0
	prismHeight = 1.0
	prismTop    = prismHeight / 2
	prismBottom = -prismHeight / 2
)

// Normals of the two caps.
var (
	upNormal   = math.Vec3{X: 0, Y: 1, Z: 0}
	downNormal = math.Vec3{X: 0, Y: -1, Z: 0}
)

// VertexCount returns the number of vertices GeneratePrism produces.
//
// The caps are fanned from the first rim point rather than the centre. The
// top fan covers sectors 1..faces-2 and the bottom fan sectors 0..faces-2,
// so the bottom cap carries one more (degenerate) triangle than the top.
func VertexCount(faces int) int {
	faces = max(faces, MinFaces)
	return LateralVertexCount(faces) + TopCapVertexCount(faces) + BottomCapVertexCount(faces)
}

// LateralVertexCount returns the vertices in the side quads.
func LateralVertexCount(faces int) int {
	return faces * 6
}

// TopCapVertexCount returns the vertices in the top fan.
func TopCapVertexCount(faces int) int {
	return (faces - 2) * 3
}

// BottomCapVertexCount returns the vertices in the bottom fan.
func BottomCapVertexCount(faces int) int {
	return (faces - 1) * 3
}

// GeneratePrism tessellates a right prism with the given number of lateral
// faces into a flat-shaded triangle list. Counts below MinFaces are raised
// to MinFaces.
//
// Output order: side quads (6 vertices each, sector by sector), top fan,
// bottom fan. All vertices of a quad or cap share one flat normal.
func GeneratePrism(faces int) []Vertex {
	faces = max(faces, MinFaces)
	vertices := make([]Vertex, 0, VertexCount(faces))

	for i := 0; i < faces; i++ {
		left := rimPoint(i, faces)
		right := rimPoint(i+1, faces)

		leftTop := math.Vec3{X: left.X, Y: prismTop, Z: left.Y}
		leftBottom := math.Vec3{X: left.X, Y: prismBottom, Z: left.Y}
		rightTop := math.Vec3{X: right.X, Y: prismTop, Z: right.Y}
		rightBottom := math.Vec3{X: right.X, Y: prismBottom, Z: right.Y}

		normal := leftTop.Sub(rightTop).Cross(leftBottom.Sub(leftTop)).Normalize()

		vertices = append(vertices,
			Vertex{Position: rightTop, Normal: normal},
			Vertex{Position: leftTop, Normal: normal},
			Vertex{Position: leftBottom, Normal: normal},
			Vertex{Position: leftBottom, Normal: normal},
			Vertex{Position: rightBottom, Normal: normal},
			Vertex{Position: rightTop, Normal: normal},
		)
	}

	pivot := rimPoint(0, faces)

	for i := 1; i < faces-1; i++ {
		left := rimPoint(i, faces)
		right := rimPoint(i+1, faces)
		vertices = append(vertices,
			Vertex{Position: math.Vec3{X: pivot.X, Y: prismTop, Z: pivot.Y}, Normal: upNormal},
			Vertex{Position: math.Vec3{X: left.X, Y: prismTop, Z: left.Y}, Normal: upNormal},
			Vertex{Position: math.Vec3{X: right.X, Y: prismTop, Z: right.Y}, Normal: upNormal},
		)
	}

	for i := 0; i < faces-1; i++ {
		left := rimPoint(i, faces)
		right := rimPoint(i+1, faces)
		vertices = append(vertices,
			Vertex{Position: math.Vec3{X: pivot.X, Y: prismBottom, Z: pivot.Y}, Normal: downNormal},
			Vertex{Position: math.Vec3{X: right.X, Y: prismBottom, Z: right.Y}, Normal: downNormal},
			Vertex{Position: math.Vec3{X: left.X, Y: prismBottom, Z: left.Y}, Normal: downNormal},
		)
	}

	return vertices
}

// rimPoint returns the i-th of n equally spaced points on the rim circle,
// as (x, z) packed into a Vec2.
func rimPoint(i, n int) math.Vec2 {
	angle := float32(i) / float32(n) * 2 * gomath.Pi
	return math.Vec2{
		X: prismRadius * float32(gomath.Sin(float64(angle))),
		Y: prismRadius * float32(gomath.Cos(float64(angle))),
	}
}
