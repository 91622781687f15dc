// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/prismview/internal/engine/shader"
	"github.com/Faultbox/prismview/internal/engine/texture"
	"github.com/Faultbox/prismview/internal/logger"
	"github.com/Faultbox/prismview/internal/mesh"
	"github.com/Faultbox/prismview/internal/viewer"
	"github.com/Faultbox/prismview/pkg/math"
)

// sceneBinding is the uniform buffer binding point of the Scene block.
const sceneBinding = 0

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	ClearColor     math.Vec4
	VertexShader   string // empty selects the built-in shader
	FragmentShader string
	Texture        string // empty selects a white placeholder
}

// Renderer owns the GPU resources of the prism: one vertex buffer, one
// uniform buffer, one shader program and one texture.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	vao     uint32
	vbo     uint32
	ubo     uint32
	tex     *texture.Texture

	vertexCount int32
	vertexBuf   []float32
	uniformBuf  []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		uniformBuf: make([]float32, 0, viewer.UniformFloats),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, c.W)

	var err error
	r.program, err = shader.Load(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	if err := shader.BindUniformBlock(r.program, "Scene", sceneBinding); err != nil {
		r.Close()
		return nil, err
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(shader.GetUniform(r.program, "uTexture"), 0)

	r.createBuffers()
	r.tex = texture.Load(cfg.Texture)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// createBuffers sets up the VAO with the interleaved vertex layout and
// allocates the uniform buffer.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ubo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	attrib := func(index uint32, size int32, offset int) {
		gl.EnableVertexAttribArray(index)
		gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, mesh.Stride, uintptr(offset))
	}
	attrib(0, 3, mesh.PositionOffset)
	attrib(1, 4, mesh.ColorOffset)
	attrib(2, 3, mesh.NormalOffset)
	attrib(3, 2, mesh.UVOffset)

	gl.BindVertexArray(0)

	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, viewer.UniformSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, sceneBinding, r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// UploadVertices replaces the vertex buffer contents.
func (r *Renderer) UploadVertices(vertices []mesh.Vertex) {
	r.vertexBuf = mesh.Flatten(vertices)
	r.vertexCount = int32(len(vertices))
	if len(r.vertexBuf) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertexBuf)*4, unsafe.Pointer(&r.vertexBuf[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("vertex buffer uploaded", zap.Int32("vertices", r.vertexCount))
}

// UploadUniforms writes the per-frame uniform snapshot.
func (r *Renderer) UploadUniforms(u *viewer.Uniforms) {
	r.uniformBuf = u.AppendTo(r.uniformBuf[:0])

	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, viewer.UniformSize, unsafe.Pointer(&r.uniformBuf[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.tex != nil {
		r.tex.Delete()
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ubo != 0 {
		gl.DeleteBuffers(1, &r.ubo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the framebuffer and draws the prism.
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	r.tex.Bind(0)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
