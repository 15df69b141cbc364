package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier within its grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random core.Random     // Tile-specific random stream for deterministic results
}

// NewTile creates a tile whose random stream is derived from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: core.NewRandom(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering region
func NewTileGrid(region image.Rectangle, tileSize int, seed int64) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []*Tile
	tileID := 0
	for y0 := region.Min.Y; y0 < region.Max.Y; y0 += tileSize {
		for x0 := region.Min.X; x0 < region.Max.X; x0 += tileSize {
			// Don't exceed region bounds
			x1 := min(x0+tileSize, region.Max.X)
			y1 := min(y0+tileSize, region.Max.Y)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
