package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns the texture color and a cosine-weighted PDF around the normal.
// It never consumes random numbers; the integrator samples the PDF.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns max(0, cosθ)/π where θ is measured from the normal
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Unit())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
