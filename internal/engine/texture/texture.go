// Package texture provides image decoding and texture upload utilities.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// decoders maps a file extension to its decoder. TGA has no magic number,
// so formats are chosen by name rather than sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tga":  tga.Decode,
}

// Decode decodes PNG, JPEG, BMP or TGA data into RGBA. ext is the file
// extension including the dot, in any case.
func Decode(data []byte, ext string) (*image.RGBA, error) {
	decode, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("texture: unsupported format %q", ext)
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", ext, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture: empty %s image", ext)
	}
	return ToRGBA(img), nil
}

// LoadFile reads and decodes an image file.
func LoadFile(path string) (*image.RGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return img, nil
}

// ToRGBA converts any image to an RGBA image anchored at (0, 0).
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical mirrors img top to bottom in place. OpenGL expects the
// first row of texel data to be the bottom of the image.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowSize := img.Bounds().Dx() * 4
	tmp := make([]byte, rowSize)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Placeholder returns a 1x1 opaque white image. Sampling it leaves the
// vertex colour unchanged.
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
