// Package lighting provides the scene light source.
package lighting

import (
	"github.com/Faultbox/prismview/pkg/math"
)

// Channel selects one RGB channel of the light color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Light is a single point light with an ambient term.
//
// Position.W is padding for the uniform block and is preserved across
// moves. AmbientStrength is never negative.
type Light struct {
	Position        math.Vec4
	Color           math.Vec4
	AmbientColor    math.Vec4
	AmbientStrength float32
}

// NewLight creates a white light at the default position.
func NewLight() Light {
	return Light{
		Position:        math.Vec4{X: 1.2, Y: 1.0, Z: 2.0, W: 0.2},
		Color:           math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
		AmbientColor:    math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
		AmbientStrength: 0.1,
	}
}

// MoveTo sets the world position, keeping the padding component.
func (l *Light) MoveTo(p math.Vec3) {
	l.Position = math.V4(p, l.Position.W)
}

// CycleChannel advances one color channel by delta and wraps it back
// under 1 by repeated subtraction.
func (l *Light) CycleChannel(ch Channel, delta float32) {
	var c *float32
	switch ch {
	case Red:
		c = &l.Color.X
	case Green:
		c = &l.Color.Y
	case Blue:
		c = &l.Color.Z
	default:
		return
	}
	*c = wrapUnit(*c + delta)
}

// AdjustAmbient changes the ambient strength by delta, stopping at zero.
func (l *Light) AdjustAmbient(delta float32) {
	l.AmbientStrength += delta
	if l.AmbientStrength < 0 {
		l.AmbientStrength = 0
	}
}

func wrapUnit(v float32) float32 {
	for v > 1.0 {
		v -= 1.0
	}
	return v
}
