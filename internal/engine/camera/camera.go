// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/prismview/pkg/math"
)

// Pitch limits in degrees. Looking straight up or down would make the
// front vector parallel to up and collapse the view basis.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// FlyCamera is a free-flying first-person camera rig driven by mouse-look.
//
// Position is the view position register. Front is derived from Yaw and
// Pitch and is only ever written by Look.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	FOV   float32 // Vertical field of view (degrees)
	Speed float32 // Units per millisecond

	// Mouse orientation (degrees). Yaw is unbounded.
	Yaw   float32
	Pitch float32

	Sensitivity float64

	lastX, lastY float64
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:    position,
		Front:       math.Vec3{X: 0, Y: 0, Z: -1},
		Up:          math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:         90,
		Speed:       0.004,
		Yaw:         -90,
		Pitch:       0,
		Sensitivity: 0.1,
	}
}

// SetCursor records the cursor position that the next Look offsets from.
func (c *FlyCamera) SetCursor(x, y float64) {
	c.lastX = x
	c.lastY = y
}

// Look applies a cursor sample. Horizontal motion turns yaw, vertical
// motion (screen y grows downward) turns pitch, then Front is rebuilt.
func (c *FlyCamera) Look(x, y float64) {
	xoffset := (x - c.lastX) * c.Sensitivity
	yoffset := -(y - c.lastY) * c.Sensitivity
	c.lastX = x
	c.lastY = y

	c.Yaw += float32(xoffset)
	c.Pitch = math.Clamp(c.Pitch+float32(yoffset), MinPitch, MaxPitch)
	c.updateFront()
}

// Orient sets yaw and pitch directly and rebuilds Front.
func (c *FlyCamera) Orient(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = math.Clamp(pitch, MinPitch, MaxPitch)
	c.updateFront()
}

func (c *FlyCamera) updateFront() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)
	c.Front = math.Vec3{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()
}

// Right returns the strafe axis, normalize(front x up).
func (c *FlyCamera) Right() math.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Move translates the position by the given direction scaled by Speed*dt.
// forward, right and up are -1, 0 or 1 per axis.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	step := c.Speed * dt
	if forward != 0 {
		c.Position = c.Position.Add(c.Front.Scale(forward * step))
	}
	if right != 0 {
		c.Position = c.Position.Add(c.Right().Scale(right * step))
	}
	if up != 0 {
		c.Position = c.Position.Add(c.Up.Scale(up * step))
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection for the given viewport.
func (c *FlyCamera) ProjectionMatrix(width, height int, near, far float32) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(c.FOV), aspect, near, far)
}
