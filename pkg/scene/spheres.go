package scene

import (
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// EarthTexture is the file the earth scene loads from Options.TextureDir
const EarthTexture = "earthmap.jpg"

// skyBackground is the pale blue used by the outdoor scenes
var skyBackground = core.NewVec3(0.70, 0.80, 1.00)

func outdoorCamera() *renderer.CameraBuilder {
	camera := renderer.NewCameraBuilder()
	camera.AspectRatio = 16.0 / 9.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 100
	camera.MaxDepth = 50
	camera.Background = skyBackground
	return camera
}

func newThreeSpheres(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewRefractive(1.5)
	bubble := material.NewRefractive(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewBVH([]core.Node{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble), // Air bubble inside the glass
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	})

	camera := outdoorCamera()
	camera.VerticalFOV = 20
	camera.LookFrom = core.NewVec3(-2, 2, 1)
	camera.LookAt = core.NewVec3(0, 0, -1)
	camera.DefocusAngle = 10
	camera.FocusDistance = 3.4

	return camera, world, nil, nil
}

func newRandomSpheres(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	random := core.NewRandom(opts.Seed)

	checker := texture.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	nodes := []core.Node{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Rand()
			center := core.NewVec3(float64(a)+0.9*random.Rand(), 0.2, float64(b)+0.9*random.Rand())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce during the exposure
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				end := center.Add(core.NewVec3(0, random.RandInterval(0, 0.5), 0))
				nodes = append(nodes, geometry.NewMovingSphere(center, end, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := random.RandInterval(0, 0.5)
				nodes = append(nodes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				nodes = append(nodes, geometry.NewSphere(center, 0.2, material.NewRefractive(1.5)))
			}
		}
	}

	nodes = append(nodes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewRefractive(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	camera := outdoorCamera()
	camera.VerticalFOV = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.DefocusAngle = 0.6
	camera.FocusDistance = 10

	return camera, geometry.NewBVH(nodes), nil, nil
}

func newCheckeredSpheres(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	checker := material.NewTexturedLambertian(
		texture.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world := geometry.NewBVH([]core.Node{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	})

	camera := outdoorCamera()
	camera.VerticalFOV = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return camera, world, nil, nil
}

func newPerlinSpheres(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	random := core.NewRandom(opts.Seed)
	marble := material.NewTexturedLambertian(texture.NewPerlinTurbulenceTexture(random, 4, 7))
	noise := material.NewTexturedLambertian(texture.NewNoiseTexture(random, 4))

	world := geometry.NewBVH([]core.Node{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	})

	camera := outdoorCamera()
	camera.VerticalFOV = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return camera, world, nil, nil
}

func newEarth(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	surface, err := earthTexture(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	world := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface))

	camera := outdoorCamera()
	camera.VerticalFOV = 20
	camera.LookFrom = core.NewVec3(0, 0, 12)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return camera, world, nil, nil
}

// earthTexture loads the earth map. A missing file falls back to a checker;
// a file that exists but cannot be decoded is an error.
func earthTexture(opts Options) (core.Texture, error) {
	fallback := texture.NewCheckerTextureFromColors(0.5, core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.2, 0.6, 0.2))
	if opts.TextureDir == "" {
		opts.logf("No texture directory set, using checker texture for earth\n")
		return fallback, nil
	}

	path := filepath.Join(opts.TextureDir, EarthTexture)
	img, err := loaders.LoadImage(path)
	if err != nil {
		if loaders.IsDecodeError(err) {
			return nil, err
		}
		opts.logf("Texture %s unavailable (%v), using checker texture for earth\n", path, err)
		return fallback, nil
	}

	return texture.NewImageTexture(img), nil
}
