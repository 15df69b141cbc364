package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Refractive represents a transparent material like glass that can both reflect and refract
type Refractive struct {
	// RefractiveIndex is relative to the enclosing medium (1.5 for glass in air)
	RefractiveIndex float64
}

// NewRefractive creates a new refractive material
func NewRefractive(refractiveIndex float64) *Refractive {
	return &Refractive{RefractiveIndex: refractiveIndex}
}

// Scatter reflects on total internal reflection or with the Schlick
// probability, and refracts otherwise. Clear glass never absorbs.
func (r *Refractive) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	refractionRatio := r.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / r.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	var direction core.Vec3
	if !unitDirection.CanRefract(hit.Normal, refractionRatio) || Reflectance(cosTheta, refractionRatio) > random.Rand() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRayWithTime(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is unused for specular materials
func (r *Refractive) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Reflectance is Schlick's approximation of the Fresnel reflection coefficient
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
