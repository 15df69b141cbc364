package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/logger"
	"github.com/df07/go-pathtracer/pkg/output"
)

// Config represents the main configuration
type Config struct {
	Render   RenderConfig `yaml:"render"`
	Scene    SceneConfig  `yaml:"scene"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

// RenderConfig contains sampling and parallelism settings. Zero values for
// width, samples and max_depth keep the scene's own camera settings.
type RenderConfig struct {
	Width    int   `yaml:"width"`
	Samples  int   `yaml:"samples"`
	MaxDepth int   `yaml:"max_depth"`
	Workers  int   `yaml:"workers"` // 0 = physical core count
	TileSize int   `yaml:"tile_size"`
	Seed     int64 `yaml:"seed"`
}

// SceneConfig selects the scene to render
type SceneConfig struct {
	Name       string `yaml:"name"`
	TextureDir string `yaml:"texture_dir"` // Directory searched for image textures
}

// OutputConfig controls where and how the image is written
type OutputConfig struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`    // png, webp or jpeg; empty = from path extension
	Quality   int    `yaml:"quality"`   // JPEG quality 1-100
	Thumbnail int    `yaml:"thumbnail"` // Longest side of an extra preview image; 0 = none
}

// Flags holds command-line overrides. Nil fields were not given.
type Flags struct {
	Scene    *string
	Output   *string
	Format   *string
	Width    *int
	Samples  *int
	MaxDepth *int
	Workers  *int
	Seed     *int64
	LogLevel *string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			TileSize: 32,
			Seed:     42,
		},
		Scene: SceneConfig{
			Name: "three-spheres",
		},
		Output: OutputConfig{
			Path:    "output/render.png",
			Quality: 90,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal serializes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}
	return data, nil
}

// Resolve applies command-line overrides, which win over file values
func (c *Config) Resolve(f Flags) {
	if f.Scene != nil {
		c.Scene.Name = *f.Scene
	}
	if f.Output != nil {
		c.Output.Path = *f.Output
	}
	if f.Format != nil {
		c.Output.Format = *f.Format
	}
	if f.Width != nil {
		c.Render.Width = *f.Width
	}
	if f.Samples != nil {
		c.Render.Samples = *f.Samples
	}
	if f.MaxDepth != nil {
		c.Render.MaxDepth = *f.MaxDepth
	}
	if f.Workers != nil {
		c.Render.Workers = *f.Workers
	}
	if f.Seed != nil {
		c.Render.Seed = *f.Seed
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
}

// OutputFormat returns the explicit format or the one implied by the output path
func (c *Config) OutputFormat() string {
	if c.Output.Format != "" {
		return c.Output.Format
	}
	return output.FormatFromPath(c.Output.Path)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width must not be negative, got %d", c.Render.Width)
	}
	if c.Render.Samples < 0 {
		return fmt.Errorf("render.samples must not be negative, got %d", c.Render.Samples)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("render.max_depth must not be negative, got %d", c.Render.MaxDepth)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Render.TileSize < 0 {
		return fmt.Errorf("render.tile_size must not be negative, got %d", c.Render.TileSize)
	}
	if c.Scene.Name == "" {
		return fmt.Errorf("scene.name is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}

	format := c.OutputFormat()
	supported := false
	for _, f := range output.Formats() {
		if f == format {
			supported = true
		}
	}
	if !supported {
		return fmt.Errorf("unsupported output.format %q", format)
	}

	if c.Output.Quality < 0 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be in [0,100], got %d", c.Output.Quality)
	}
	if c.Output.Thumbnail < 0 {
		return fmt.Errorf("output.thumbnail must not be negative, got %d", c.Output.Thumbnail)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WorkerCount returns the configured worker count, or the number of physical
// cores when it is zero
func (c *Config) WorkerCount() int {
	if c.Render.Workers > 0 {
		return c.Render.Workers
	}
	return physicalCores()
}

func physicalCores() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
