package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. The center may move linearly over the
// shutter interval: it is stored as a ray evaluated at the ray's time.
type Sphere struct {
	center   core.Ray
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	s := &Sphere{
		center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   math.Max(0, radius),
		Material: material,
	}

	rvec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABBFromPoints(s.center.At(0).Subtract(rvec), s.center.At(0).Add(rvec))
	box1 := core.NewAABBFromPoints(s.center.At(1).Subtract(rvec), s.center.At(1).Add(rvec))
	s.bbox = box0.Union(box1)

	return s
}

// Center returns the sphere's center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	currentCenter := s.center.At(ray.Time)
	oc := currentCenter.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root inside the interval
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(currentCenter).Divide(s.Radius)
	u, v := sphereUV(outwardNormal)

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    point,
		U:        u,
		V:        v,
		Material: s.Material,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox bounds the sphere at both ends of its motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns the solid-angle density of directions toward the sphere
// as seen from origin. Only exact for stationary spheres.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1))); !ok {
		return 0
	}

	distanceSquared := s.center.At(0).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// RandomDirection samples the cone of directions from origin that the sphere subtends
func (s *Sphere) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	direction := s.center.At(0).Subtract(origin)
	distanceSquared := direction.LengthSquared()
	basis := core.NewOrthonormalBasis(direction)
	return basis.Transform(randomToSphere(random, s.Radius, distanceSquared))
}

// randomToSphere returns a local-space direction inside the cone around +z
// subtended by a sphere of radius at squared distance distanceSquared
func randomToSphere(random core.Random, radius, distanceSquared float64) core.Vec3 {
	r1 := random.Rand()
	r2 := random.Rand()
	z := 1 + r2*(math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))-1)

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)

	return core.NewVec3(x, y, z)
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the y axis starting at -x, v runs from the south pole (0)
// to the north pole (1).
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}
