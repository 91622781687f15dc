package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/prismview/internal/engine/lighting"
	"github.com/Faultbox/prismview/internal/mesh"
	"github.com/Faultbox/prismview/pkg/math"
)

// Update advances the viewer by dt milliseconds, then recomputes and
// uploads the uniform snapshot.
func (v *Viewer) Update(dt float32) {
	if v.input.keys[KeyToggleMode] {
		v.toggleMode()
		v.input.keys[KeyToggleMode] = false
	}

	v.rig.Move(
		v.axis(KeyBack, KeyForward),
		v.axis(KeyLeft, KeyRight),
		v.axis(KeyDown, KeyUp),
		dt,
	)

	switch v.mode {
	case ModeLight:
		v.light.MoveTo(v.rig.Position)
		if v.input.primary {
			v.light.AdjustAmbient(v.settings.ColorSpeed * dt)
		}
		if v.input.secondary {
			v.light.AdjustAmbient(-v.settings.ColorSpeed * dt)
		}
	case ModeCamera:
		v.cameraPos = v.rig.Position
		if v.input.primary {
			v.setFaces(v.faces + 1)
			v.input.primary = false
		}
		if v.input.secondary {
			v.setFaces(v.faces - 1)
			v.input.secondary = false
		}
	}

	v.rotation += v.axis(KeyRotateLeft, KeyRotateRight) * v.settings.RotationSpeed * dt

	colorStep := v.settings.ColorSpeed * dt
	if v.held(KeyRed) {
		v.light.CycleChannel(lighting.Red, colorStep)
	}
	if v.held(KeyGreen) {
		v.light.CycleChannel(lighting.Green, colorStep)
	}
	if v.held(KeyBlue) {
		v.light.CycleChannel(lighting.Blue, colorStep)
	}

	v.refreshUniforms()
	v.gpu.UploadUniforms(&v.uniforms)
}

// toggleMode flips the mode and loads the view register from the entity
// that now owns it. The other entity keeps its last position.
func (v *Viewer) toggleMode() {
	switch v.mode {
	case ModeCamera:
		v.mode = ModeLight
		v.rig.Position = v.light.Position.XYZ()
	case ModeLight:
		v.mode = ModeCamera
		v.rig.Position = v.cameraPos
	}
	pos := v.rig.Position.Array()
	v.log.Debug("mode switched",
		zap.Stringer("mode", v.mode),
		zap.Float32s("position", pos[:]),
	)
}

// setFaces changes the face count, never below mesh.MinFaces, and
// regenerates the mesh when the count actually changes.
func (v *Viewer) setFaces(n int) {
	n = max(n, mesh.MinFaces)
	if n == v.faces {
		return
	}
	v.faces = n
	v.regenerate()
}

func (v *Viewer) refreshUniforms() {
	model := math.RotateY(math.Radians(v.rotation))
	v.uniforms = Uniforms{
		Projection:      v.rig.ProjectionMatrix(v.width, v.height, v.settings.Near, v.settings.Far),
		View:            v.rig.ViewMatrix(),
		Model:           model,
		ModelIT:         model.NormalMatrix(),
		ViewPos:         math.V4(v.rig.Position, 0),
		LightPos:        v.light.Position,
		LightColor:      v.light.Color,
		AmbientColor:    v.light.AmbientColor,
		AmbientStrength: v.light.AmbientStrength,
	}
}
