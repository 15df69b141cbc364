package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CosinePDF samples directions in the hemisphere around a normal with
// density proportional to the cosine of the angle to the normal
type CosinePDF struct {
	basis core.OrthonormalBasis
}

// NewCosinePDF creates a cosine-weighted PDF around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{basis: core.NewOrthonormalBasis(normal)}
}

// Value returns max(0, cosθ)/π for the given direction
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := p.basis.W.Dot(direction.Unit())
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a direction from the cosine-weighted hemisphere. A
// degenerate sample falls back to the normal.
func (p *CosinePDF) Generate(random core.Random) core.Vec3 {
	direction := p.basis.Transform(randomCosineDirection(random))
	if direction.NearZero() {
		return p.basis.W
	}
	return direction
}

// randomCosineDirection returns a local-space direction with z >= 0
func randomCosineDirection(random core.Random) core.Vec3 {
	r1 := random.Rand()
	r2 := random.Rand()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return core.NewVec3(x, y, z)
}
