package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// testImage returns a 2x2 image with a distinct colour per texel.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func assertTexel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("texel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, err := Decode(buf.Bytes(), ".PNG")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertTexel(t, img, 0, 0, color.RGBA{R: 255, A: 255})
	assertTexel(t, img, 1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	img, err := Decode(buf.Bytes(), ".bmp")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertTexel(t, img, 1, 0, color.RGBA{G: 255, A: 255})
	assertTexel(t, img, 0, 1, color.RGBA{B: 255, A: 255})
}

func TestDecodeTGA(t *testing.T) {
	// Uncompressed true-colour, 2x1, 24 bpp, top-left origin.
	header := []byte{
		0, 0, 2,
		0, 0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 1, 0,
		24, 0x20,
	}
	pixels := []byte{
		0, 0, 255, // red (BGR)
		255, 0, 0, // blue
	}

	img, err := Decode(append(header, pixels...), ".tga")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v, want 2x1", img.Bounds())
	}
	assertTexel(t, img, 0, 0, color.RGBA{R: 255, A: 255})
	assertTexel(t, img, 1, 0, color.RGBA{B: 255, A: 255})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		ext  string
	}{
		{"unsupported extension", []byte("GIF89a"), ".gif"},
		{"corrupt png", []byte("not a png"), ".png"},
		{"empty bmp", nil, ".bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data, tt.ext); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prism.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	assertTexel(t, img, 1, 0, color.RGBA{G: 255, A: 255})

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToRGBAReanchors(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, color.RGBA{R: 10, A: 255})

	dst := ToRGBA(src)
	if dst.Bounds().Min != (image.Point{}) {
		t.Errorf("min = %v, want origin", dst.Bounds().Min)
	}
	assertTexel(t, dst, 0, 0, color.RGBA{R: 10, A: 255})
}

func TestToRGBAPassThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if ToRGBA(src) != src {
		t.Error("origin-anchored RGBA image should be returned as is")
	}
}

func TestFlipVertical(t *testing.T) {
	tests := []struct {
		name   string
		height int
	}{
		{"even", 2},
		{"odd", 3},
		{"single row", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 1, tt.height))
			for y := 0; y < tt.height; y++ {
				img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
			}

			FlipVertical(img)

			for y := 0; y < tt.height; y++ {
				want := color.RGBA{R: uint8(tt.height - 1 - y), A: 255}
				assertTexel(t, img, 0, y, want)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder()
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v, want 1x1", img.Bounds())
	}
	assertTexel(t, img, 0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
