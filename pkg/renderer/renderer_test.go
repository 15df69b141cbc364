package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const tolerance = 1e-12

// MockNode implements core.Node for testing
type MockNode struct {
	hitFn     func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool)
	pdfValue  float64
	direction core.Vec3
	hitCalls  int
	dirCalls  int
}

func (m *MockNode) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	m.hitCalls++
	if m.hitFn == nil {
		return nil, false
	}
	return m.hitFn(ray, rayT)
}
func (m *MockNode) BoundingBox() core.AABB { return core.EmptyAABB }
func (m *MockNode) PDFValue(origin, direction core.Vec3) float64 {
	return m.pdfValue
}
func (m *MockNode) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	m.dirCalls++
	return m.direction
}

// MockMaterial implements core.Material for testing
type MockMaterial struct {
	scatterFn     func(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool)
	scatteringPDF float64
	scatterCalls  int
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	m.scatterCalls++
	if m.scatterFn == nil {
		return core.ScatterResult{}, false
	}
	return m.scatterFn(rayIn, hit, random)
}
func (m *MockMaterial) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return m.scatteringPDF
}

// emissiveMock adds core.Emitter to MockMaterial
type emissiveMock struct {
	*MockMaterial
	emission core.Vec3
}

func (e emissiveMock) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	return e.emission
}

// MockPDF implements core.PDF with a fixed value and direction
type MockPDF struct {
	value     float64
	direction core.Vec3
}

func (m MockPDF) Value(direction core.Vec3) float64     { return m.value }
func (m MockPDF) Generate(random core.Random) core.Vec3 { return m.direction }

// hitOnce returns a hit function that reports a hit with material only for
// the first ray it sees
func hitOnce(material core.Material) func(core.Ray, core.Interval) (*core.HitRecord, bool) {
	calls := 0
	return func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
		calls++
		if calls > 1 {
			return nil, false
		}
		return &core.HitRecord{
			Point:     core.NewVec3(0, 0, 0),
			Normal:    core.NewVec3(0, 0, 1),
			T:         1,
			FrontFace: true,
			Material:  material,
		}, true
	}
}

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// testCamera looks down -z from z=5 at the origin with a 90 degree view
func testCamera(width, samples, depth int, background core.Vec3) *Camera {
	builder := NewCameraBuilder()
	builder.ImageWidth = width
	builder.AspectRatio = 1
	builder.SamplesPerPixel = samples
	builder.MaxDepth = depth
	builder.VerticalFOV = 90
	builder.LookFrom = core.NewVec3(0, 0, 5)
	builder.LookAt = core.NewVec3(0, 0, 0)
	builder.FocusDistance = 5
	builder.Background = background
	return builder.Build()
}
