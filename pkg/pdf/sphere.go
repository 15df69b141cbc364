package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SpherePDF is the uniform density over all directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniformly distributed unit vector
func (SpherePDF) Generate(random core.Random) core.Vec3 {
	return core.RandomUnit(random)
}
