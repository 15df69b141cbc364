package pdf

import "github.com/df07/go-pathtracer/pkg/core"

// HitTablePDF samples directions from a fixed origin toward a scene node,
// typically the light list, delegating to the node's own sampling.
type HitTablePDF struct {
	origin core.Vec3
	node   core.Node
}

// NewHitTablePDF creates a PDF over directions from origin toward node
func NewHitTablePDF(origin core.Vec3, node core.Node) *HitTablePDF {
	return &HitTablePDF{origin: origin, node: node}
}

// Value returns the node's solid-angle density for direction
func (p *HitTablePDF) Value(direction core.Vec3) float64 {
	return p.node.PDFValue(p.origin, direction)
}

// Generate returns a direction from the origin toward the node
func (p *HitTablePDF) Generate(random core.Random) core.Vec3 {
	return p.node.RandomDirection(p.origin, random)
}
