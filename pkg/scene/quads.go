package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func newQuads(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewBVH([]core.Node{
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	})

	camera := renderer.NewCameraBuilder()
	camera.AspectRatio = 1.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 100
	camera.MaxDepth = 50
	camera.VerticalFOV = 80
	camera.LookFrom = core.NewVec3(0, 0, 9)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.Background = skyBackground

	return camera, world, nil, nil
}

// cornellCamera looks into a 555 unit box from outside its open front
func cornellCamera() *renderer.CameraBuilder {
	camera := renderer.NewCameraBuilder()
	camera.AspectRatio = 1.0
	camera.ImageWidth = 600
	camera.SamplesPerPixel = 64
	camera.MaxDepth = 50
	camera.VerticalFOV = 40
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.Background = core.NewVec3(0, 0, 0)
	return camera
}

// cornellWalls returns the five walls of the box plus its ceiling light.
// The light faces down so only its front face emits into the box.
func cornellWalls() ([]core.Node, *geometry.Quad) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	lamp := geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light)

	return []core.Node{
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
		lamp,
	}, lamp
}

func newCornellLight(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)

	nodes, lamp := cornellWalls()
	tall := geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), aluminum)
	short := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)
	nodes = append(nodes, tall.Nodes()...)
	nodes = append(nodes, short.Nodes()...)

	return cornellCamera(), geometry.NewBVH(nodes), geometry.NewGroup(lamp), nil
}

func newGlassFog(opts Options) (*renderer.CameraBuilder, core.Node, *geometry.Group, error) {
	glass := material.NewRefractive(1.5)
	haze := material.NewIsotropic(core.NewVec3(0.9, 0.9, 0.9))

	nodes, lamp := cornellWalls()
	nodes = append(nodes,
		geometry.NewSphere(core.NewVec3(278, 150, 278), 120, glass),
		// The scattering core sends light in every direction
		geometry.NewSphere(core.NewVec3(278, 150, 278), 70, haze),
	)

	return cornellCamera(), geometry.NewBVH(nodes), geometry.NewGroup(lamp), nil
}
