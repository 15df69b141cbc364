package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture is smooth gray Perlin noise remapped into [0,1]
type NoiseTexture struct {
	noise *core.Perlin
	scale float64
}

// NewNoiseTexture builds its own Perlin tables from random
func NewNoiseTexture(random core.Random, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: core.NewPerlin(random), scale: scale}
}

// Value returns 0.5·(1 + noise(scale·p)) in every channel
func (t *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	n := 0.5 * (1 + t.noise.Noise(point.Multiply(t.scale)))
	return core.NewVec3(n, n, n)
}

// PerlinTurbulenceTexture is a marble-like pattern: sine bands along z
// phase-shifted by turbulence.
type PerlinTurbulenceTexture struct {
	noise *core.Perlin
	scale float64
	depth int
}

// NewPerlinTurbulenceTexture builds its own Perlin tables from random.
// depth is the number of turbulence octaves.
func NewPerlinTurbulenceTexture(random core.Random, scale float64, depth int) *PerlinTurbulenceTexture {
	return &PerlinTurbulenceTexture{noise: core.NewPerlin(random), scale: scale, depth: depth}
}

// Value returns 0.5·(1 + sin(scale·z + 10·turbulence(p, depth)))
func (t *PerlinTurbulenceTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	s := 0.5 * (1 + math.Sin(t.scale*point.Z+10*t.noise.Turbulence(point, t.depth)))
	return core.NewVec3(s, s, s)
}
