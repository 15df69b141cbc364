package material

import "github.com/df07/go-pathtracer/pkg/core"

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal and perturbs it by a random unit
// vector scaled by fuzz. It always scatters.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal).Unit()
	reflected = reflected.Add(core.RandomUnit(random).Multiply(m.Fuzz))

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   core.NewRayWithTime(hit.Point, reflected, rayIn.Time),
	}, true
}

// ScatteringPDF is unused for specular materials
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
