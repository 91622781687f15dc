package app

import (
	"github.com/Faultbox/prismview/internal/config"
	"github.com/Faultbox/prismview/internal/engine/lighting"
	"github.com/Faultbox/prismview/internal/viewer"
)

// viewerSettings translates the loaded configuration into viewer settings.
func viewerSettings(cfg *config.Config) viewer.Settings {
	return viewer.Settings{
		Faces:          cfg.Mesh.Faces,
		RotationSpeed:  cfg.Mesh.RotationSpeed,
		ColorSpeed:     cfg.Light.ColorSpeed,
		CameraPosition: cfg.Camera.Position,
		FOV:            cfg.Camera.FOV,
		Speed:          cfg.Camera.Speed,
		Sensitivity:    cfg.Camera.Sensitivity,
		Yaw:            cfg.Camera.Yaw,
		Pitch:          cfg.Camera.Pitch,
		Near:           cfg.Camera.Near,
		Far:            cfg.Camera.Far,
		Light: lighting.Light{
			Position:        cfg.Light.Position,
			Color:           cfg.Light.Color,
			AmbientColor:    cfg.Light.AmbientColor,
			AmbientStrength: cfg.Light.AmbientStrength,
		},
	}
}
