package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Duration       time.Duration // Wall-clock time of the render
}

// Merge adds the counters of a tile into the totals
func (s *RenderStats) Merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
	s.Tiles += tile.Tiles
}

// Finalize computes derived statistics after all tiles are merged
func (s *RenderStats) Finalize(duration time.Duration) {
	s.Duration = duration
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// SamplesPerSecond returns the sampling throughput, or 0 before Finalize
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
