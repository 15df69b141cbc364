package texture

import "github.com/df07/go-pathtracer/pkg/core"

// missingPixel marks lookups that fall outside the image
var missingPixel = core.NewVec3(0, 1, 1)

// ImageTexture samples a shared image with nearest-neighbor lookup
type ImageTexture struct {
	image core.Image
}

// NewImageTexture creates a texture backed by image
func NewImageTexture(image core.Image) *ImageTexture {
	return &ImageTexture{image: image}
}

// Value clamps (u, v) to [0,1], flips v so v=1 is the top row, and returns
// the pixel there. Coordinates past the last pixel return cyan.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	u = core.NewInterval(0, 1).Clamp(u)
	v = 1 - core.NewInterval(0, 1).Clamp(v)

	i := int(u * float64(t.image.Width()))
	j := int(v * float64(t.image.Height()))

	if color, ok := t.image.Pixel(i, j); ok {
		return color
	}
	return missingPixel
}
