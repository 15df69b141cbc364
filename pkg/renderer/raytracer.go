package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultTileSize is the tile edge length used when none is configured
const DefaultTileSize = 32

// Config contains frame rendering configuration
type Config struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   DefaultTileSize,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders whole frames or regions of a frame in parallel tiles.
// Output depends only on the scene, the camera and Config.Seed: each tile
// owns a random stream, so the worker count does not change the image.
type Raytracer struct {
	camera       *Camera
	tileRenderer *TileRenderer
	config       Config
	logger       core.Logger
}

// NewRaytracer creates a raytracer for one scene. lights may be nil; logger
// may be nil to discard progress output.
func NewRaytracer(camera *Camera, world, lights core.Node, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		camera:       camera,
		tileRenderer: NewTileRenderer(camera, world, lights),
		config:       config,
		logger:       logger,
	}
}

// Render renders the full frame
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	return rt.RenderRegion(ctx, image.Rect(0, 0, rt.camera.ImageWidth(), rt.camera.ImageHeight()))
}

// RenderRegion renders only the pixels inside region, which is clipped to
// the image. Cancelling ctx stops the render between tiles.
func (rt *Raytracer) RenderRegion(ctx context.Context, region image.Rectangle) (*Frame, RenderStats, error) {
	full := image.Rect(0, 0, rt.camera.ImageWidth(), rt.camera.ImageHeight())
	region = region.Intersect(full)
	if region.Empty() {
		return nil, RenderStats{}, fmt.Errorf("render region outside %dx%d image", full.Dx(), full.Dy())
	}

	startTime := time.Now()
	frame := NewFrame(region)
	tiles := NewTileGrid(region, rt.config.TileSize, rt.config.Seed)

	workerPool := NewWorkerPool(rt.tileRenderer, rt.config.NumWorkers, len(tiles))
	workerPool.Start(ctx)
	defer workerPool.Stop()

	rt.logger.Printf("Rendering %dx%d region in %d tiles (%d samples/pixel, %d workers)...\n",
		region.Dx(), region.Dy(), len(tiles), rt.camera.SamplesPerPixel(), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Frame: frame})
	}

	var stats RenderStats
	var firstErr error
	lastReported := 0
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)

		if percent := 100 * (i + 1) / len(tiles); percent/10 > lastReported/10 {
			lastReported = percent
			rt.logger.Printf("Progress: %d%% (%d/%d tiles)\n", percent, i+1, len(tiles))
		}
	}

	if firstErr != nil {
		rt.logger.Printf("Rendering cancelled after %d of %d tiles\n", stats.Tiles, len(tiles))
		return nil, stats, fmt.Errorf("render cancelled: %w", firstErr)
	}

	stats.Finalize(time.Since(startTime))
	rt.logger.Printf("Render completed in %v (%.0f samples/sec)\n", stats.Duration, stats.SamplesPerSecond())

	return frame, stats, nil
}

// nopLogger discards all output
type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}
