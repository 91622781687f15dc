package texture

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/prismview/internal/logger"
)

// Texture is a 2D RGBA8 texture on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Upload creates a mipmapped, repeating texture from img. The image must
// already be in OpenGL row order (see FlipVertical).
func Upload(img *image.RGBA) *Texture {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: texID, Width: w, Height: h}
}

// Load uploads the image at path. An empty path, or any read or decode
// failure, yields the white placeholder so rendering can continue.
func Load(path string) *Texture {
	log := logger.Named("texture")
	if path == "" {
		return Upload(Placeholder())
	}

	img, err := LoadFile(path)
	if err != nil {
		log.Warn("failed to load texture, using placeholder", zap.String("path", path), zap.Error(err))
		return Upload(Placeholder())
	}

	FlipVertical(img)
	t := Upload(img)
	log.Info("texture loaded",
		zap.String("path", path),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
	)
	return t
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GPU texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
