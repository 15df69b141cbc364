package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageErrorKind classifies image loading failures
type ImageErrorKind int

const (
	ImageErrorIO     ImageErrorKind = iota // File could not be read
	ImageErrorDecode                       // File contents are not a supported image
)

func (k ImageErrorKind) String() string {
	switch k {
	case ImageErrorIO:
		return "io"
	case ImageErrorDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ImageError reports a failed image load
type ImageError struct {
	Kind ImageErrorKind
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	switch e.Kind {
	case ImageErrorIO:
		return fmt.Sprintf("failed to open image file %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
	}
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is an image decode failure
func IsDecodeError(err error) bool {
	var imageErr *ImageError
	return errors.As(err, &imageErr) && imageErr.Kind == ImageErrorDecode
}

// ImageData contains loaded image data as a row-major Vec3 color array with
// channels in [0, 1]. It implements core.Image.
type ImageData struct {
	width  int
	height int
	Pixels []core.Vec3
	Format string // Decoder name, e.g. "png" or "tga"
}

// NewImageData wraps a row-major pixel array
func NewImageData(width, height int, pixels []core.Vec3) *ImageData {
	return &ImageData{width: width, height: height, Pixels: pixels}
}

// Width returns the image width in pixels
func (d *ImageData) Width() int {
	return d.width
}

// Height returns the image height in pixels
func (d *ImageData) Height() int {
	return d.height
}

// Pixel returns the color at (x, y), or false outside the image
func (d *ImageData) Pixel(x, y int) (core.Vec3, bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return core.Vec3{}, false
	}
	return d.Pixels[y*d.width+x], true
}

// LoadImage loads a PNG, JPEG, GIF, TGA, BMP, TIFF or WebP image and converts
// it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ImageError{Kind: ImageErrorIO, Path: filename, Err: err}
	}
	defer file.Close()

	img, format, err := decode(file, filename)
	if err != nil {
		return nil, &ImageError{Kind: ImageErrorDecode, Path: filename, Err: err}
	}

	data := FromImage(img)
	data.Format = format
	return data, nil
}

// decoder matches a file header against magic bytes, where '?' matches any byte
type decoder struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}

// decoders are tried in order. image.Decode is not used because the tga
// package registers itself with an empty magic that matches every file.
var decoders = []decoder{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8?a", gif.Decode},
	{"bmp", "BM????\x00\x00\x00\x00", bmp.Decode},
	{"tiff", "II\x2a\x00", tiff.Decode},
	{"tiff", "MM\x00\x2a", tiff.Decode},
	{"webp", "RIFF????WEBPVP8", webp.Decode},
}

func matchMagic(magic string, header []byte) bool {
	if len(header) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != header[i] {
			return false
		}
	}
	return true
}

// decode picks a decoder from the file header. TGA has no magic, so it is
// selected by extension.
func decode(r io.Reader, filename string) (image.Image, string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".tga") {
		img, err := tga.Decode(r)
		return img, "tga", err
	}

	br := bufio.NewReader(r)
	header, _ := br.Peek(16)
	for _, d := range decoders {
		if matchMagic(d.magic, header) {
			img, err := d.decode(br)
			return img, d.name, err
		}
	}
	return nil, "", image.ErrFormat
}

// FromImage converts a decoded image to ImageData
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageData(width, height, pixels)
}
