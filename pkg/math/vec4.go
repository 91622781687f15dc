package math

// Vec4 is a 4-component vector. Positions and colors that are handed to
// std140 uniform blocks are stored as Vec4 so the padding slot is explicit.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 extends a Vec3 with a w component.
func V4(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
