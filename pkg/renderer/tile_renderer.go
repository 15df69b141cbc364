package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// TileRenderer renders tiles of one scene with one camera. It holds only
// read-only scene data and can be shared by all workers.
type TileRenderer struct {
	camera *Camera
	world  core.Node
	lights core.Node
}

// NewTileRenderer creates a tile renderer. lights may be nil.
func NewTileRenderer(camera *Camera, world, lights core.Node) *TileRenderer {
	return &TileRenderer{camera: camera, world: world, lights: lights}
}

// RenderTile renders every pixel of tile into frame using the tile's random stream
func (tr *TileRenderer) RenderTile(tile *Tile, frame *Frame) RenderStats {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			frame.Set(x, y, tr.camera.Render(x, y, tr.world, tr.lights, tile.Random))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * tr.camera.SamplesPerPixel(),
		Tiles:        1,
	}
}
