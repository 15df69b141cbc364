package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the tightest AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	box := AABB{
		X: Interval{points[0].X, points[0].X},
		Y: Interval{points[0].Y, points[0].Y},
		Z: Interval{points[0].Z, points[0].Z},
	}
	for _, p := range points[1:] {
		box.X = Interval{math.Min(box.X.Min, p.X), math.Max(box.X.Max, p.X)}
		box.Y = Interval{math.Min(box.Y.Min, p.Y), math.Max(box.Y.Max, p.Y)}
		box.Z = Interval{math.Min(box.Z.Min, p.Z), math.Max(box.Z.Max, p.Z)}
	}
	return box
}

// Union returns the tightest AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(aabb.X, other.X),
		Y: NewIntervalFromIntervals(aabb.Y, other.Y),
		Z: NewIntervalFromIntervals(aabb.Z, other.Z),
	}
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// A zero direction component is handled explicitly: the ray can only hit if
// its origin lies inside that slab.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if direction == 0 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Centroid returns the center of the box along one axis
func (aabb AABB) Centroid(axis int) float64 {
	i := aabb.Axis(axis)
	return 0.5 * (i.Min + i.Max)
}

// Pad widens any axis thinner than delta so planar shapes get a usable box
func (aabb AABB) Pad(delta float64) AABB {
	pad := func(i Interval) Interval {
		if i.Size() < delta {
			return i.Expand(delta)
		}
		return i
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}
