// Package viewer implements the interactive prism viewer: camera and light
// control, live re-tessellation and the per-frame uniform snapshot.
//
// A Viewer is not safe for concurrent use. Handlers and Update are expected
// to run on the render thread, handlers first.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/prismview/internal/engine/camera"
	"github.com/Faultbox/prismview/internal/engine/lighting"
	"github.com/Faultbox/prismview/internal/logger"
	"github.com/Faultbox/prismview/internal/mesh"
	"github.com/Faultbox/prismview/pkg/math"
)

// Mode selects which entity the movement controls drive.
type Mode int

const (
	ModeCamera Mode = iota
	ModeLight
)

func (m Mode) String() string {
	switch m {
	case ModeCamera:
		return "camera"
	case ModeLight:
		return "light"
	default:
		return "unknown"
	}
}

// GPU receives the data the viewer produces. Both uploads overwrite the
// previous contents.
type GPU interface {
	UploadVertices(vertices []mesh.Vertex)
	UploadUniforms(u *Uniforms)
}

// Settings holds the tunables and initial state of a Viewer.
type Settings struct {
	Faces         int
	RotationSpeed float32 // Degrees per millisecond
	ColorSpeed    float32 // Color/ambient units per millisecond

	CameraPosition math.Vec3
	FOV            float32
	Speed          float32
	Sensitivity    float64
	Yaw            float32
	Pitch          float32
	Near           float32
	Far            float32

	Light lighting.Light
}

// DefaultSettings returns the stock viewer settings.
func DefaultSettings() Settings {
	return Settings{
		Faces:          4,
		RotationSpeed:  0.04,
		ColorSpeed:     0.0005,
		CameraPosition: math.Vec3{X: 0, Y: 0, Z: 2},
		FOV:            90,
		Speed:          0.004,
		Sensitivity:    0.1,
		Yaw:            -90,
		Pitch:          0,
		Near:           0.1,
		Far:            100,
		Light:          lighting.NewLight(),
	}
}

// Viewer holds the authoritative viewer state.
type Viewer struct {
	settings Settings
	gpu      GPU
	log      *zap.Logger

	// rig.Position is the shared view position register. It aliases
	// cameraPos in ModeCamera and light.Position in ModeLight.
	rig       *camera.FlyCamera
	cameraPos math.Vec3
	light     lighting.Light
	mode      Mode

	faces    int
	vertices []mesh.Vertex
	rotation float32

	width, height int

	input    inputState
	uniforms Uniforms
}

// New builds a viewer for a viewport of the given size with the cursor at
// (cursorX, cursorY). The initial mesh and uniforms are uploaded to gpu
// before New returns.
func New(s Settings, width, height int, cursorX, cursorY float64, gpu GPU) *Viewer {
	rig := camera.NewFlyCamera(s.CameraPosition)
	rig.FOV = s.FOV
	rig.Speed = s.Speed
	rig.Sensitivity = s.Sensitivity
	rig.Orient(s.Yaw, s.Pitch)
	rig.SetCursor(cursorX, cursorY)

	v := &Viewer{
		settings:  s,
		gpu:       gpu,
		log:       logger.Named("viewer"),
		rig:       rig,
		cameraPos: s.CameraPosition,
		light:     s.Light,
		mode:      ModeCamera,
		faces:     max(s.Faces, mesh.MinFaces),
		width:     width,
		height:    height,
	}

	v.regenerate()
	v.refreshUniforms()
	v.gpu.UploadUniforms(&v.uniforms)
	return v
}

// regenerate rebuilds the prism for the current face count and uploads it.
func (v *Viewer) regenerate() {
	v.vertices = mesh.GeneratePrism(v.faces)
	v.gpu.UploadVertices(v.vertices)
	v.log.Debug("mesh regenerated",
		zap.Int("faces", v.faces),
		zap.Int("vertices", len(v.vertices)),
	)
}

// Mode returns the active control mode.
func (v *Viewer) Mode() Mode { return v.mode }

// Faces returns the current lateral face count.
func (v *Viewer) Faces() int { return v.faces }

// VertexCount returns the draw count for the current mesh.
func (v *Viewer) VertexCount() int { return len(v.vertices) }

// ViewPosition returns the shared view position register.
func (v *Viewer) ViewPosition() math.Vec3 { return v.rig.Position }

// CameraPosition returns the stored camera position.
func (v *Viewer) CameraPosition() math.Vec3 { return v.cameraPos }

// LightPosition returns the light's world position.
func (v *Viewer) LightPosition() math.Vec3 { return v.light.Position.XYZ() }

// Light returns a copy of the light state.
func (v *Viewer) Light() lighting.Light { return v.light }

// Front returns the facing direction of the rig.
func (v *Viewer) Front() math.Vec3 { return v.rig.Front }

// Yaw returns the rig yaw in degrees.
func (v *Viewer) Yaw() float32 { return v.rig.Yaw }

// Pitch returns the rig pitch in degrees.
func (v *Viewer) Pitch() float32 { return v.rig.Pitch }

// Rotation returns the model rotation about +Y in degrees.
func (v *Viewer) Rotation() float32 { return v.rotation }

// Resolution returns the stored viewport size.
func (v *Viewer) Resolution() (width, height int) { return v.width, v.height }

// Uniforms returns the last computed uniform snapshot.
func (v *Viewer) Uniforms() Uniforms { return v.uniforms }
