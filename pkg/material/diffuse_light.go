package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// DiffuseLight represents a light-emitting material. It emits from its front
// face only and never scatters.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a light with a uniform emitted color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission is read from a texture
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always absorbs: lights only emit
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF is zero since lights never scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission for front-face hits and black otherwise
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emission.Value(hit.U, hit.V, hit.Point)
}
