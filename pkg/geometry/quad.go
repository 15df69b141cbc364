package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = D
	W        core.Vec3     // Cached vector for planar coordinates
	Area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Unit()

	bbox := core.NewAABBFromPoints(corner, corner.Add(u).Add(v)).
		Union(core.NewAABBFromPoints(corner.Add(u), corner.Add(v))).
		Pad(0.0001)

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        normal.Multiply(1.0 / normal.Dot(cross)),
		Area:     cross.Length(),
		bbox:     bbox,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the quad's box, padded so it is never flat
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue converts the uniform area density 1/A into solid angle from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())

	return distanceSquared / (cosine * q.Area)
}

// RandomDirection points from origin to a uniformly chosen point on the quad
func (q *Quad) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	p := q.Corner.Add(q.U.Multiply(random.Rand())).Add(q.V.Multiply(random.Rand()))
	return p.Subtract(origin)
}

// NewBox returns the six quads of an axis-aligned box spanning corners a and b
func NewBox(a, b core.Vec3, material core.Material) *Group {
	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return NewGroup(
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, material),          // bottom
	)
}
