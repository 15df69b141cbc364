package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func smallOptions() Options {
	return Options{Width: 8, Samples: 1, MaxDepth: 3, Seed: 1}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Errorf("Expected 8 scenes, got %d: %v", len(names), names)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names should be sorted: %v", names)
	}
	for _, name := range names {
		if description, ok := Describe(name); !ok || description == "" {
			t.Errorf("Scene %q has no description", name)
		}
	}
}

func TestCreate_AllScenesRender(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, smallOptions())
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if s.Camera.ImageWidth() != 8 || s.Camera.SamplesPerPixel() != 1 || s.Camera.MaxDepth() != 3 {
				t.Errorf("Options not applied: width %d, samples %d, depth %d",
					s.Camera.ImageWidth(), s.Camera.SamplesPerPixel(), s.Camera.MaxDepth())
			}
			if s.Lights == nil {
				t.Fatal("Lights should never be nil")
			}

			random := core.NewRandom(5)
			for y := 0; y < s.Camera.ImageHeight(); y++ {
				for x := 0; x < s.Camera.ImageWidth(); x++ {
					c := s.Camera.Render(x, y, s.World, s.Lights, random)
					for _, channel := range []float64{c.X, c.Y, c.Z} {
						if channel < 0 || channel > 1 || math.IsNaN(channel) {
							t.Fatalf("Pixel (%d,%d) = %v outside [0,1]", x, y, c)
						}
					}
				}
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	_, err := Create("teapot", Options{})
	if err == nil || !strings.Contains(err.Error(), "teapot") {
		t.Errorf("Expected unknown scene error, got %v", err)
	}
}

func TestCreate_KeepsSceneDefaults(t *testing.T) {
	s, err := Create("quads", Options{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.Camera.ImageWidth() != 400 || s.Camera.SamplesPerPixel() != 100 || s.Camera.MaxDepth() != 50 {
		t.Errorf("Expected scene defaults 400/100/50, got %d/%d/%d",
			s.Camera.ImageWidth(), s.Camera.SamplesPerPixel(), s.Camera.MaxDepth())
	}
}

func TestCreate_LitScenesHaveLights(t *testing.T) {
	tests := map[string]int{
		"cornell-light": 1,
		"glass-fog":     1,
		"three-spheres": 0,
	}
	for name, expected := range tests {
		s, err := Create(name, smallOptions())
		if err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
		if s.Lights.Len() != expected {
			t.Errorf("%s: expected %d lights, got %d", name, expected, s.Lights.Len())
		}
	}
}

func TestCreate_RandomSpheresFollowSeed(t *testing.T) {
	// Distance along a ray that grazes the field of small spheres
	trace := func(seed int64) float64 {
		opts := smallOptions()
		opts.Seed = seed
		s, err := Create("random-spheres", opts)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ray := core.NewRay(core.NewVec3(13, 2, 3), core.NewVec3(-13, -1.8, -3))
		hit, ok := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
		if !ok {
			t.Fatal("Expected the ray to hit the ground at least")
		}
		return hit.T
	}

	if a, b := trace(3), trace(3); a != b {
		t.Errorf("The same seed should build the same scene: t=%f vs t=%f", a, b)
	}
}

func TestEarth_FallsBackWithoutTexture(t *testing.T) {
	logger := &recordingLogger{}
	opts := smallOptions()
	opts.TextureDir = t.TempDir()
	opts.Logger = logger

	if _, err := Create("earth", opts); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], "checker") {
		t.Errorf("Expected one fallback warning, got %q", logger.lines)
	}
}

func TestEarth_LoadsTexture(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, EarthTexture))
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode texture: %v", err)
	}
	f.Close()

	logger := &recordingLogger{}
	opts := smallOptions()
	opts.TextureDir = dir
	opts.Logger = logger
	opts.MaxDepth = 1

	s, err := Create("earth", opts)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(logger.lines) != 0 {
		t.Errorf("Expected no warnings, got %q", logger.lines)
	}

	// The globe fills the center of the view and is pure red
	ray := core.NewRay(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected to hit the globe")
	}
	scatter, ok := hit.Material.Scatter(ray, hit, core.NewRandom(1))
	if !ok || scatter.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red albedo from the texture, got %v", scatter.Attenuation)
	}
}

func TestEarth_CorruptTextureFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EarthTexture), []byte("not a jpeg"), 0644); err != nil {
		t.Fatalf("Failed to write texture: %v", err)
	}

	opts := smallOptions()
	opts.TextureDir = dir
	if _, err := Create("earth", opts); err == nil {
		t.Error("Expected an error for a corrupt texture")
	}
}
