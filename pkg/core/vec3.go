package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector. It is also used for RGB colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Unit returns the vector divided by its length.
// The result is undefined (NaN/Inf) for zero-length vectors; callers must guard.
func (v Vec3) Unit() Vec3 {
	return v.Divide(v.Length())
}

// NearZero reports whether every component is smaller than 1e-8 in magnitude
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Axis returns the component for axis 0=X, 1=Y, 2=Z
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Reflect mirrors v about the normal n: v - 2·dot(v,n)·n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with normal n using Snell's law.
// etaRatio is eta_incident / eta_transmitted. The caller must check CanRefract
// first; under total internal reflection the result is meaningless.
func (v Vec3) Refract(n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// CanRefract reports whether the unit vector v can be transmitted through a
// surface with normal n, i.e. k = 1 - eta²(1-cos²θ) is non-negative.
func (v Vec3) CanRefract(n Vec3, etaRatio float64) bool {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	k := 1.0 - etaRatio*etaRatio*(1.0-cosTheta*cosTheta)
	return k >= 0
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// GammaEncode applies gamma 2 encoding (square root) to each channel.
// Negative channels encode to zero.
func (v Vec3) GammaEncode() Vec3 {
	return Vec3{
		X: linearToGamma(v.X),
		Y: linearToGamma(v.Y),
		Z: linearToGamma(v.Z),
	}
}

func linearToGamma(c float64) float64 {
	if c > 0 {
		return math.Sqrt(c)
	}
	return 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(random Random, min, max float64) Vec3 {
	return Vec3{
		X: random.RandInterval(min, max),
		Y: random.RandInterval(min, max),
		Z: random.RandInterval(min, max),
	}
}

// RandomUnit returns a uniformly distributed unit vector.
// Candidates are drawn from the cube [-1,1)³ until the squared length lies in
// (1e-80, 1], which keeps the normalization away from zero.
func RandomUnit(random Random) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		lensq := p.LengthSquared()
		if 1e-80 < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk returns a point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(random Random) Vec3 {
	for {
		p := NewVec3(random.RandInterval(-1, 1), random.RandInterval(-1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
