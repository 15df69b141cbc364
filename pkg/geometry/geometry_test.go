package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const tolerance = 1e-9

// universe is the interval the integrator uses for primary hits
var universe = core.NewInterval(0.001, math.Inf(1))

// countingNode is a test node with fixed sampling behavior
type countingNode struct {
	pdfValue  float64
	direction core.Vec3
	calls     int
}

func (c *countingNode) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return nil, false
}
func (c *countingNode) BoundingBox() core.AABB { return core.NewAABBFromPoints(core.Vec3{}) }
func (c *countingNode) PDFValue(origin, direction core.Vec3) float64 {
	return c.pdfValue
}
func (c *countingNode) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	c.calls++
	return c.direction
}

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
