package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame holds rendered colors for a rectangular pixel region in row-major
// order. Colors are gamma encoded and lie in [0, 1].
type Frame struct {
	Bounds image.Rectangle
	Pixels []core.Vec3
}

// NewFrame allocates a black frame covering bounds
func NewFrame(bounds image.Rectangle) *Frame {
	return &Frame{
		Bounds: bounds,
		Pixels: make([]core.Vec3, bounds.Dx()*bounds.Dy()),
	}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int {
	return f.Bounds.Dx()
}

// Height returns the frame height in pixels
func (f *Frame) Height() int {
	return f.Bounds.Dy()
}

// At returns the color at absolute image coordinates (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[f.index(x, y)]
}

// Set stores the color at absolute image coordinates (x, y). Tiles write
// disjoint pixels, so concurrent Sets from different tiles are safe.
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[f.index(x, y)] = color
}

func (f *Frame) index(x, y int) int {
	return (y-f.Bounds.Min.Y)*f.Bounds.Dx() + (x - f.Bounds.Min.X)
}
