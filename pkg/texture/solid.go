package texture

import "github.com/df07/go-pathtracer/pkg/core"

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the stored color regardless of coordinates
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}
