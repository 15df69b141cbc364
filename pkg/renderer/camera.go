package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// CameraBuilder collects camera parameters. Build derives the viewport once;
// the resulting Camera is immutable.
type CameraBuilder struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Random samples per pixel
	MaxDepth        int       // Maximum number of ray bounces
	VerticalFOV     float64   // Vertical view angle in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Cone angle in degrees of rays through each pixel
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
	Background      core.Vec3 // Color returned for rays that escape the scene
}

// NewCameraBuilder returns a builder with sensible defaults
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VerticalFOV:     90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
		Background:      core.NewVec3(0.70, 0.80, 1.00),
	}
}

// Build derives the camera basis, viewport and defocus disk
func (b *CameraBuilder) Build() *Camera {
	imageHeight := max(1, int(float64(b.ImageWidth)/b.AspectRatio))
	samples := max(1, b.SamplesPerPixel)

	theta := degreesToRadians(b.VerticalFOV)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * b.FocusDistance
	viewportWidth := viewportHeight * (float64(b.ImageWidth) / float64(imageHeight))

	w := b.LookFrom.Subtract(b.LookAt).Unit()
	u := b.Up.Cross(w).Unit()
	v := w.Cross(u)

	// Viewport edges: across the image and down the image
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(b.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := b.LookFrom.
		Subtract(w.Multiply(b.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := b.FocusDistance * math.Tan(degreesToRadians(b.DefocusAngle/2))

	return &Camera{
		imageWidth:        b.ImageWidth,
		imageHeight:       imageHeight,
		samplesPerPixel:   samples,
		pixelSamplesScale: 1.0 / float64(samples),
		maxDepth:          b.MaxDepth,
		center:            b.LookFrom,
		pixel00:           pixel00,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		u:                 u,
		v:                 v,
		w:                 w,
		defocusAngle:      b.DefocusAngle,
		defocusDiskU:      u.Multiply(defocusRadius),
		defocusDiskV:      v.Multiply(defocusRadius),
		background:        b.Background,
	}
}

// Camera generates rays for rendering and estimates pixel colors
type Camera struct {
	imageWidth        int
	imageHeight       int
	samplesPerPixel   int
	pixelSamplesScale float64
	maxDepth          int
	center            core.Vec3
	pixel00           core.Vec3 // Center of pixel (0, 0)
	pixelDeltaU       core.Vec3 // Offset to the pixel on the right
	pixelDeltaV       core.Vec3 // Offset to the pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusAngle      float64
	defocusDiskU      core.Vec3
	defocusDiskV      core.Vec3
	background        core.Vec3
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.imageWidth
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SamplesPerPixel returns the number of samples averaged per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.samplesPerPixel
}

// MaxDepth returns the bounce limit
func (c *Camera) MaxDepth() int {
	return c.maxDepth
}

// Render estimates the color of pixel (x, y), with (0, 0) at the top-left.
// The result is gamma encoded and clamped to [0, 1]. lights may be nil.
func (c *Camera) Render(x, y int, world, lights core.Node, random core.Random) core.Vec3 {
	color := core.Vec3{}
	for sample := 0; sample < c.samplesPerPixel; sample++ {
		ray := c.GetRay(x, y, random)
		color = color.Add(c.RayColor(ray, c.maxDepth, world, lights, random))
	}
	return color.Multiply(c.pixelSamplesScale).GammaEncode().Clamp(0, 1)
}

// GetRay returns a ray from the defocus disk through a jittered point in pixel (x, y)
func (c *Camera) GetRay(x, y int, random core.Random) core.Ray {
	offsetX := random.Rand() - 0.5
	offsetY := random.Rand() - 0.5
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(y) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), random.Rand())
}

func (c *Camera) defocusDiskSample(random core.Random) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// RayColor is the recursive radiance estimator. depth is the number of
// bounces left; at zero no more light is gathered.
func (c *Camera) RayColor(ray core.Ray, depth int, world, lights core.Node, random core.Random) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return c.background
	}

	emitted := core.Vec3{}
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(ray, hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		return emitted.Add(scatter.Attenuation.MultiplyVec(
			c.RayColor(scatter.Scattered, depth-1, world, lights, random)))
	}

	samplingPDF := scatter.PDF
	if hasLights(lights) {
		samplingPDF = pdf.NewMixturePDF(scatter.PDF, pdf.NewHitTablePDF(hit.Point, lights))
	}

	scattered := core.NewRayWithTime(hit.Point, samplingPDF.Generate(random), ray.Time)
	pdfValue := samplingPDF.Value(scattered.Direction)
	if pdfValue < minPDFValue {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	sampleColor := c.RayColor(scattered, depth-1, world, lights, random)
	weight := scatter.Attenuation.Multiply(scatteringPDF / pdfValue)

	return emitted.Add(weight.MultiplyVec(sampleColor))
}

// minPDFValue is the smallest sampling density that can still reweight a sample
const minPDFValue = 1e-12

// hasLights reports whether lights can be sampled: nil and empty groups cannot
func hasLights(lights core.Node) bool {
	if lights == nil {
		return false
	}
	if sized, ok := lights.(interface{ Len() int }); ok {
		return sized.Len() > 0
	}
	return true
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
