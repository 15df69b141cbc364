package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two textures on a 3D grid of cubes
type CheckerTexture struct {
	invScale float64
	even     core.Texture
	odd      core.Texture
}

// NewCheckerTexture creates a checker with cubes of side scale
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1 / scale, even: even, odd: odd}
}

// NewCheckerTextureFromColors creates a checker of two solid colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture from the cell containing point
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.even.Value(u, v, point)
	}
	return c.odd.Value(u, v, point)
}
