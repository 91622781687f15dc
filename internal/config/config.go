// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/prismview/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Light      LightConfig      `yaml:"light"`
	Render     RenderConfig     `yaml:"render"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// CameraConfig holds the initial camera rig and its control speeds.
type CameraConfig struct {
	Position    math.Vec3 `yaml:"position"`
	FOV         float32   `yaml:"fov"`   // Degrees
	Speed       float32   `yaml:"speed"` // Units per millisecond
	Sensitivity float64   `yaml:"sensitivity"`
	Yaw         float32   `yaml:"yaw"`
	Pitch       float32   `yaml:"pitch"`
	Near        float32   `yaml:"near"`
	Far         float32   `yaml:"far"`
}

// MeshConfig holds the prism parameters.
type MeshConfig struct {
	Faces         int     `yaml:"faces"`
	RotationSpeed float32 `yaml:"rotation_speed"` // Degrees per millisecond
}

// LightConfig holds the initial light.
type LightConfig struct {
	Position        math.Vec4 `yaml:"position"`
	Color           math.Vec4 `yaml:"color"`
	AmbientColor    math.Vec4 `yaml:"ambient_color"`
	AmbientStrength float32   `yaml:"ambient_strength"`
	ColorSpeed      float32   `yaml:"color_speed"` // Per millisecond
}

// RenderConfig holds shader and texture sources. Empty shader paths select
// the built-in shaders; an empty texture selects a white placeholder.
type RenderConfig struct {
	VertexShader   string    `yaml:"vertex_shader"`
	FragmentShader string    `yaml:"fragment_shader"`
	Texture        string    `yaml:"texture"`
	ClearColor     math.Vec4 `yaml:"clear_color"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or webp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "prismview",
			Width:      1600,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShowFPS:    false,
		},
		Camera: CameraConfig{
			Position:    math.Vec3{X: 0, Y: 0, Z: 2},
			FOV:         90,
			Speed:       0.004,
			Sensitivity: 0.1,
			Yaw:         -90,
			Pitch:       0,
			Near:        0.1,
			Far:         100,
		},
		Mesh: MeshConfig{
			Faces:         4,
			RotationSpeed: 0.04,
		},
		Light: LightConfig{
			Position:        math.Vec4{X: 1.2, Y: 1.0, Z: 2.0, W: 0.2},
			Color:           math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
			AmbientColor:    math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
			AmbientStrength: 0.1,
			ColorSpeed:      0.0005,
		},
		Render: RenderConfig{
			ClearColor: math.Vec4{X: 0, Y: 0, Z: 0, W: 1},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Mesh.Faces < 3 {
		return fmt.Errorf("mesh: faces must be at least 3, got %d", c.Mesh.Faces)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: invalid clip planes near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera: fov must be in (0, 180), got %g", c.Camera.FOV)
	}
	switch c.Screenshot.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format)
	}
	return nil
}
