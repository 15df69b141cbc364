package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
)

// testImage is a 2x2 image: white, red on top and green, blue below
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func writeFile(t *testing.T, path string, encode func(io.Writer) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

// TestLoadImage writes the test image in each supported format and verifies loading
func TestLoadImage(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format string
		encode func(io.Writer, image.Image) error
	}{
		{"png", "test.png", "png", png.Encode},
		{"bmp", "test.bmp", "bmp", bmp.Encode},
		{"tiff", "test.tiff", "tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
		{"tga", "test.tga", "tga", tga.Encode},
	}

	expected := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, func(w io.Writer) error { return tt.encode(w, testImage()) })

			imageData, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if imageData.Format != tt.format {
				t.Errorf("Expected format %q, got %q", tt.format, imageData.Format)
			}
			if imageData.Width() != 2 || imageData.Height() != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width(), imageData.Height())
			}

			// Verify colors (row-major order)
			const tolerance = 0.01
			for i, want := range expected {
				got := imageData.Pixels[i]
				if abs(got.X-want.X) > tolerance || abs(got.Y-want.Y) > tolerance || abs(got.Z-want.Z) > tolerance {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, got)
				}
			}
		})
	}
}

// TestLoadImageJPEG uses a flat color since JPEG chroma subsampling blends
// neighbouring pixels
func TestLoadImageJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 204, G: 102, B: 51, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "test.jpg")
	writeFile(t, path, func(w io.Writer) error { return jpeg.Encode(w, img, &jpeg.Options{Quality: 100}) })

	imageData, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Format != "jpeg" {
		t.Errorf("Expected format %q, got %q", "jpeg", imageData.Format)
	}
	if imageData.Width() != 8 || imageData.Height() != 8 {
		t.Fatalf("Expected 8x8 image, got %dx%d", imageData.Width(), imageData.Height())
	}

	const tolerance = 0.03
	want := core.NewVec3(0.8, 0.4, 0.2)
	for i, got := range imageData.Pixels {
		if abs(got.X-want.X) > tolerance || abs(got.Y-want.Y) > tolerance || abs(got.Z-want.Z) > tolerance {
			t.Fatalf("Pixel %d: expected %v, got %v", i, want, got)
		}
	}
}

// TestLoadImageTGAGarbage verifies a .tga file with a bad header is a decode error
func TestLoadImageTGAGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.tga")
	if err := os.WriteFile(path, []byte("not a tga"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadImage(path); !IsDecodeError(err) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	var imageErr *ImageError
	if !errors.As(err, &imageErr) || imageErr.Kind != ImageErrorIO {
		t.Errorf("Expected an IO ImageError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected the cause to be fs.ErrNotExist, got %v", err)
	}
	if IsDecodeError(err) {
		t.Error("A missing file is not a decode error")
	}
}

func TestLoadImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadImage(path)
	if !IsDecodeError(err) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestImageData_PixelBounds(t *testing.T) {
	data := FromImage(testImage())

	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, 0, false},
		{0, 2, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		if _, ok := data.Pixel(tt.x, tt.y); ok != tt.ok {
			t.Errorf("Pixel(%d,%d): expected ok=%t, got %t", tt.x, tt.y, tt.ok, ok)
		}
	}

	// Images decoded with a non-zero origin are shifted to (0,0)
	sub := testImage().SubImage(image.Rect(1, 1, 2, 2))
	shifted := FromImage(sub)
	if c, _ := shifted.Pixel(0, 0); c.Z < 0.99 {
		t.Errorf("Expected blue at the shifted origin, got %v", c)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
