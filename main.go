package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/logger"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, renders the selected scene and writes the image. It
// returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	sceneName := fs.String("scene", "", "Scene to render (see -list)")
	outputPath := fs.String("output", "", "Output image path")
	format := fs.String("format", "", "Output format: "+strings.Join(output.Formats(), ", ")+" (default: from extension)")
	width := fs.Int("width", 0, "Image width in pixels (default: scene setting)")
	samples := fs.Int("samples", 0, "Samples per pixel (default: scene setting)")
	depth := fs.Int("depth", 0, "Maximum bounce depth (default: scene setting)")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = physical cores)")
	seed := fs.Int64("seed", 0, "Base random seed")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	list := fs.Bool("list", false, "List available scenes and exit")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		fmt.Fprintln(stdout, "Path Tracer")
		fmt.Fprintln(stdout, "Usage: pathtracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
		return 0
	}

	if *list {
		printScenes(stdout)
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	var flags config.Flags
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			flags.Scene = sceneName
		case "output":
			flags.Output = outputPath
		case "format":
			flags.Format = format
		case "width":
			flags.Width = width
		case "samples":
			flags.Samples = samples
		case "depth":
			flags.MaxDepth = depth
		case "workers":
			flags.Workers = workers
		case "seed":
			flags.Seed = seed
		case "log-level":
			flags.LogLevel = logLevel
		}
	})
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	level, _ := logger.ParseLevel(cfg.LogLevel) // Checked by Validate
	log := logger.NewWithWriter(level, stdout)

	if err := render(ctx, cfg, log); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// render builds the configured scene, renders it and saves the result
func render(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if log.Level() == logger.DEBUG {
		log.Debugf("Host: %s", config.DescribeHost())
	}

	s, err := scene.Create(cfg.Scene.Name, scene.Options{
		Width:      cfg.Render.Width,
		Samples:    cfg.Render.Samples,
		MaxDepth:   cfg.Render.MaxDepth,
		TextureDir: cfg.Scene.TextureDir,
		Seed:       cfg.Render.Seed,
		Logger:     loggerFunc(log.Warnf),
	})
	if err != nil {
		return err
	}

	log.Infof("Rendering scene %s at %dx%d, %d samples/pixel, depth %d",
		s.Name, s.Camera.ImageWidth(), s.Camera.ImageHeight(), s.Camera.SamplesPerPixel(), s.Camera.MaxDepth())

	rt := renderer.NewRaytracer(s.Camera, s.World, s.Lights, renderer.Config{
		TileSize:   cfg.Render.TileSize,
		NumWorkers: cfg.WorkerCount(),
		Seed:       cfg.Render.Seed,
	}, log)

	frame, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}
	log.Infof("Average %.1f samples/pixel over %d tiles", stats.AverageSamples, stats.Tiles)

	img, err := output.ToImage(frame.Width(), frame.Height(), frame.Pixels)
	if err != nil {
		return err
	}

	format := cfg.OutputFormat()
	if err := output.Save(cfg.Output.Path, img, format, cfg.Output.Quality); err != nil {
		return err
	}
	log.Infof("Render saved as %s", cfg.Output.Path)

	if cfg.Output.Thumbnail > 0 {
		thumbPath := thumbnailPath(cfg.Output.Path)
		if err := output.Save(thumbPath, output.Thumbnail(img, cfg.Output.Thumbnail), format, cfg.Output.Quality); err != nil {
			return err
		}
		log.Infof("Thumbnail saved as %s", thumbPath)
	}

	return nil
}

// thumbnailPath inserts "_thumb" before the extension
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		description, _ := scene.Describe(name)
		fmt.Fprintf(w, "  %-18s %s\n", name, description)
	}
}

// loggerFunc adapts a leveled logging method to core.Logger
type loggerFunc func(format string, args ...interface{})

func (f loggerFunc) Printf(format string, args ...interface{}) {
	f(format, args...)
}
