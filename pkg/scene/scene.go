package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *renderer.Camera
	World  core.Node       // Objects in the scene, usually behind a BVH
	Lights *geometry.Group // Emitters sampled directly; may be empty
}

// Options adjust a scene as it is built. Zero values keep the scene's defaults.
type Options struct {
	Width      int         // Image width in pixels
	Samples    int         // Samples per pixel
	MaxDepth   int         // Bounce limit
	TextureDir string      // Directory searched for image textures
	Seed       int64       // Seed for randomized scene content
	Logger     core.Logger // Receives warnings such as missing textures; may be nil
}

type builder func(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error)

type entry struct {
	description string
	build       builder
}

var registry = map[string]entry{
	"three-spheres":     {"Diffuse, glass and metal spheres on a ground sphere", newThreeSpheres},
	"random-spheres":    {"Field of random spheres with motion blur and depth of field", newRandomSpheres},
	"checkered-spheres": {"Two large checker-textured spheres", newCheckeredSpheres},
	"perlin-spheres":    {"Perlin noise textured ground and sphere", newPerlinSpheres},
	"earth":             {"Image textured globe", newEarth},
	"quads":             {"Five colored quads facing the camera", newQuads},
	"cornell-light":     {"Cornell box with an area light and two boxes", newCornellLight},
	"glass-fog":         {"Glass sphere around a scattering core under a quad light", newGlassFog},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a scene
func Describe(name string) (string, bool) {
	e, ok := registry[name]
	return e.description, ok
}

// Create builds the named scene with opts applied to its camera
func Create(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	camera, world, lights, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	if lights == nil {
		lights = geometry.NewGroup()
	}

	if opts.Width > 0 {
		camera.ImageWidth = opts.Width
	}
	if opts.Samples > 0 {
		camera.SamplesPerPixel = opts.Samples
	}
	if opts.MaxDepth > 0 {
		camera.MaxDepth = opts.MaxDepth
	}

	return &Scene{
		Name:   name,
		Camera: camera.Build(),
		World:  world,
		Lights: lights,
	}, nil
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// newGroundQuad creates a large horizontal quad centered at center, facing up
func newGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v points along +Y
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}
