package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates in [0,1]
	FrontFace bool     // Whether the ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Node is anything in the scene graph a ray can intersect: a primitive, a
// group, or an acceleration structure.
type Node interface {
	// Hit returns the nearest intersection with T inside rayT
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
	// BoundingBox bounds the node over the whole shutter interval
	BoundingBox() AABB
	// PDFValue is the solid-angle density of sampling direction from origin
	// toward this node with RandomDirection; 0 if the direction misses.
	PDFValue(origin, direction Vec3) float64
	// RandomDirection returns a direction from origin toward the node
	RandomDirection(origin Vec3, random Random) Vec3
}

// ScatterResult contains the result of material scattering. Diffuse
// materials set PDF; specular materials leave PDF nil and set Scattered.
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation
	PDF         PDF  // Sampling density for the outgoing direction (nil for specular)
	Scattered   Ray  // Explicit outgoing ray (specular only)
}

// IsSpecular returns true if the result carries an explicit ray rather than a PDF
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Material decides how light scatters at a surface hit
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, random Random) (ScatterResult, bool)
	// ScatteringPDF is the material's own density for the scattered direction.
	// Only consulted when Scatter returned a PDF.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit *HitRecord) Vec3
}

// PDF samples and evaluates directions
type PDF interface {
	Value(direction Vec3) float64
	Generate(random Random) Vec3
}

// Texture maps surface coordinates and position to a color
type Texture interface {
	Value(u, v float64, point Vec3) Vec3
}

// Image is a read-only RGB raster used by image textures
type Image interface {
	Width() int
	Height() int
	// Pixel returns the color at (x, y) with (0,0) at the top-left, or false
	// when the coordinates are out of bounds.
	Pixel(x, y int) (Vec3, bool)
}
