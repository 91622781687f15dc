package shader

import (
	_ "embed"
	"fmt"
	"os"
)

// DefaultVertexShader is the built-in prism vertex shader.
//
//go:embed glsl/prism.vert
var DefaultVertexShader string

// DefaultFragmentShader is the built-in Phong fragment shader.
//
//go:embed glsl/prism.frag
var DefaultFragmentShader string

// Sources returns the vertex and fragment shader sources. An empty path
// selects the built-in shader for that stage.
func Sources(vertPath, fragPath string) (vert, frag string, err error) {
	vert, err = readSource(vertPath, DefaultVertexShader)
	if err != nil {
		return "", "", fmt.Errorf("vertex shader: %w", err)
	}
	frag, err = readSource(fragPath, DefaultFragmentShader)
	if err != nil {
		return "", "", fmt.Errorf("fragment shader: %w", err)
	}
	return vert, frag, nil
}

func readSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load reads both stages and links them into a program.
func Load(vertPath, fragPath string) (uint32, error) {
	vert, frag, err := Sources(vertPath, fragPath)
	if err != nil {
		return 0, err
	}
	return CompileProgram(vert, frag)
}
