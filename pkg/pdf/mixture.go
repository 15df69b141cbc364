package pdf

import "github.com/df07/go-pathtracer/pkg/core"

// MixturePDF blends two PDFs with equal weight
type MixturePDF struct {
	first  core.PDF
	second core.PDF
}

// NewMixturePDF creates an equal-weight mixture of two PDFs
func NewMixturePDF(first, second core.PDF) *MixturePDF {
	return &MixturePDF{first: first, second: second}
}

// Value returns the average of the two densities
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.first.Value(direction) + 0.5*p.second.Value(direction)
}

// Generate flips a fair coin and samples the chosen PDF
func (p *MixturePDF) Generate(random core.Random) core.Vec3 {
	if random.Rand() < 0.5 {
		return p.first.Generate(random)
	}
	return p.second.Generate(random)
}
