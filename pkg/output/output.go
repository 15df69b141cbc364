package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Supported output formats
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatJPEG = "jpeg"
)

// Formats lists the names accepted by Encode and Save
func Formats() []string {
	return []string{FormatPNG, FormatWebP, FormatJPEG}
}

// FormatFromPath infers the output format from a file extension, defaulting to PNG
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

// ToImage quantizes row-major colors with channels in [0,1] to an RGBA image.
// Channels are expected to be gamma encoded already.
func ToImage(width, height int, colors []core.Vec3) (*image.RGBA, error) {
	if len(colors) != width*height {
		return nil, fmt.Errorf("expected %d colors for %dx%d image, got %d", width*height, width, height, len(colors))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := colors[y*width+x].Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(c.X),
				G: quantize(c.Y),
				B: quantize(c.Z),
				A: 255,
			})
		}
	}
	return img, nil
}

// quantize maps [0,1] to [0,255] the way the classic PPM writer does
func quantize(c float64) uint8 {
	return uint8(255.999 * c)
}

// Thumbnail scales img so that its longest side is at most maxDim pixels.
// Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}

	width, height := maxDim, maxDim
	if b.Dx() >= b.Dy() {
		height = max(1, b.Dy()*maxDim/b.Dx())
	} else {
		width = max(1, b.Dx()*maxDim/b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img in the given format. quality applies to JPEG only;
// PNG and WebP are lossless.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatJPEG:
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("unsupported output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

// Save writes img to path, creating parent directories as needed
func Save(path string, img image.Image, format string, quality int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(f, img, format, quality); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
