package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Isotropic scatters uniformly in every direction, for participating media
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter samples a uniform direction over the sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF is the uniform sphere density 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
