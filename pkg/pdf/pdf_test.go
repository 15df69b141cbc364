package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

const sampleCount = 100000

// fixedPDF is a test PDF with a constant value and direction
type fixedPDF struct {
	value     float64
	direction core.Vec3
}

func (f fixedPDF) Value(direction core.Vec3) float64     { return f.value }
func (f fixedPDF) Generate(random core.Random) core.Vec3 { return f.direction }

// mockNode records the arguments it was sampled with
type mockNode struct {
	pdfValue  float64
	direction core.Vec3
	origin    core.Vec3
}

func (m *mockNode) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) { return nil, false }
func (m *mockNode) BoundingBox() core.AABB                                       { return core.EmptyAABB }
func (m *mockNode) PDFValue(origin, direction core.Vec3) float64 {
	m.origin = origin
	return m.pdfValue
}
func (m *mockNode) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	m.origin = origin
	return m.direction
}

func TestCosinePDF_SamplesInHemisphere(t *testing.T) {
	random := core.NewRandom(42)
	normals := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(-0.3, 0.8, 0.2).Unit(),
	}

	for _, normal := range normals {
		p := NewCosinePDF(normal)
		for i := 0; i < 10000; i++ {
			direction := p.Generate(random)
			if direction.Dot(normal) < -1e-12 {
				t.Fatalf("normal %v: sample %v points below the surface", normal, direction)
			}
		}
	}
}

func TestCosinePDF_InverseDensityIntegratesToHemisphere(t *testing.T) {
	random := core.NewRandom(42)
	p := NewCosinePDF(core.NewVec3(0, 1, 0))

	sum := 0.0
	for i := 0; i < sampleCount; i++ {
		value := p.Value(p.Generate(random))
		if value > 0 {
			sum += 1 / value
		}
	}
	estimate := sum / sampleCount

	expected := 2 * math.Pi
	if math.Abs(estimate-expected)/expected > 0.02 {
		t.Errorf("Expected E[1/pdf] ≈ %f, got %f", expected, estimate)
	}
}

func TestCosinePDF_DensityIntegratesToOne(t *testing.T) {
	random := core.NewRandom(7)
	p := NewCosinePDF(core.NewVec3(0, 0, 1))

	sum := 0.0
	for i := 0; i < sampleCount; i++ {
		sum += p.Value(core.RandomUnit(random))
	}
	integral := 4 * math.Pi * sum / sampleCount

	if math.Abs(integral-1) > 0.02 {
		t.Errorf("Expected density to integrate to 1, got %f", integral)
	}
}

func TestCosinePDF_BelowSurfaceIsZero(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 0, 1))
	if v := p.Value(core.NewVec3(0.2, 0.1, -1)); v != 0 {
		t.Errorf("Expected zero density below the surface, got %f", v)
	}
	if v := p.Value(core.NewVec3(0, 0, 3)); math.Abs(v-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", v)
	}
}

func TestSpherePDF_InverseDensityIntegratesToSphere(t *testing.T) {
	random := core.NewRandom(3)
	p := NewSpherePDF()

	sum := 0.0
	for i := 0; i < sampleCount; i++ {
		direction := p.Generate(random)
		if math.Abs(direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit sample, got length %f", direction.Length())
		}
		sum += 1 / p.Value(direction)
	}
	estimate := sum / sampleCount

	if math.Abs(estimate-4*math.Pi) > 1e-6 {
		t.Errorf("Expected E[1/pdf] = 4π, got %f", estimate)
	}
}

func TestSpherePDF_SamplesCoverBothHemispheres(t *testing.T) {
	random := core.NewRandom(5)
	p := NewSpherePDF()

	up := 0
	for i := 0; i < 10000; i++ {
		if p.Generate(random).Z > 0 {
			up++
		}
	}
	if up < 4700 || up > 5300 {
		t.Errorf("Expected roughly half the samples in the upper hemisphere, got %d/10000", up)
	}
}

func TestMixturePDF_Value(t *testing.T) {
	m := NewMixturePDF(fixedPDF{value: 0.2}, fixedPDF{value: 0.6})
	if v := m.Value(core.NewVec3(0, 1, 0)); math.Abs(v-0.4) > 1e-12 {
		t.Errorf("Expected 0.4, got %f", v)
	}
}

func TestMixturePDF_Generate(t *testing.T) {
	first := fixedPDF{direction: core.NewVec3(1, 0, 0)}
	second := fixedPDF{direction: core.NewVec3(0, 1, 0)}
	m := NewMixturePDF(first, second)

	tests := []struct {
		name     string
		coin     float64
		expected core.Vec3
	}{
		{"low coin picks first", 0.25, first.direction},
		{"coin at one half picks second", 0.5, second.direction},
		{"high coin picks second", 0.9, second.direction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Generate(core.NewSequenceRandom(tt.coin))
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMixturePDF_CoinIsFair(t *testing.T) {
	m := NewMixturePDF(fixedPDF{direction: core.NewVec3(1, 0, 0)}, fixedPDF{direction: core.NewVec3(0, 1, 0)})
	random := core.NewRandom(99)

	firstCount := 0
	for i := 0; i < 10000; i++ {
		if m.Generate(random).X == 1 {
			firstCount++
		}
	}
	if firstCount < 4700 || firstCount > 5300 {
		t.Errorf("Expected a fair coin, first PDF chosen %d/10000 times", firstCount)
	}
}

func TestHitTablePDF_DelegatesToNode(t *testing.T) {
	node := &mockNode{pdfValue: 0.125, direction: core.NewVec3(0, -1, 0)}
	origin := core.NewVec3(1, 2, 3)
	p := NewHitTablePDF(origin, node)

	if v := p.Value(core.NewVec3(0, 1, 0)); v != 0.125 {
		t.Errorf("Expected node density 0.125, got %f", v)
	}
	if node.origin != origin {
		t.Errorf("Expected PDFValue called with origin %v, got %v", origin, node.origin)
	}

	node.origin = core.Vec3{}
	if d := p.Generate(core.NewRandom(1)); d != node.direction {
		t.Errorf("Expected node direction %v, got %v", node.direction, d)
	}
	if node.origin != origin {
		t.Errorf("Expected RandomDirection called with origin %v, got %v", origin, node.origin)
	}
}
