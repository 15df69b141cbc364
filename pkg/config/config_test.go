package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
render:
  samples: 64
  max_depth: 20
  workers: 3
scene:
  name: cornell-light
output:
  path: out/cornell.webp
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.Samples != 64 || cfg.Render.MaxDepth != 20 || cfg.Render.Workers != 3 {
		t.Errorf("Unexpected render section %+v", cfg.Render)
	}
	if cfg.Render.TileSize != 32 || cfg.Render.Seed != 42 {
		t.Errorf("Unset keys should keep defaults, got %+v", cfg.Render)
	}
	if cfg.Scene.Name != "cornell-light" {
		t.Errorf("Expected scene cornell-light, got %q", cfg.Scene.Name)
	}
	if cfg.OutputFormat() != "webp" {
		t.Errorf("Expected webp inferred from path, got %q", cfg.OutputFormat())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") }, "failed to read"},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "render: [unclosed") }, "failed to parse"},
		{"unknown key", func(t *testing.T) string { return writeConfig(t, "render:\n  spp: 3\n") }, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.message) || !strings.Contains(err.Error(), path) {
				t.Errorf("Expected %q with path in error, got %v", tt.message, err)
			}
		})
	}
}

func TestResolve_FlagsWin(t *testing.T) {
	cfg := Default()
	cfg.Render.Samples = 16

	scene := "quads"
	samples := 4
	seed := int64(7)
	cfg.Resolve(Flags{Scene: &scene, Samples: &samples, Seed: &seed})

	if cfg.Scene.Name != "quads" || cfg.Render.Samples != 4 || cfg.Render.Seed != 7 {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.Output.Path != Default().Output.Path {
		t.Errorf("Unset flags should not change values, got output %q", cfg.Output.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative samples", func(c *Config) { c.Render.Samples = -1 }},
		{"negative depth", func(c *Config) { c.Render.MaxDepth = -2 }},
		{"negative workers", func(c *Config) { c.Render.Workers = -1 }},
		{"empty scene", func(c *Config) { c.Scene.Name = "" }},
		{"empty output", func(c *Config) { c.Output.Path = "" }},
		{"bad format", func(c *Config) { c.Output.Format = "gif" }},
		{"bad quality", func(c *Config) { c.Output.Quality = 101 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scene.Name = "earth"
	cfg.Scene.TextureDir = "textures"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	loaded, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}

func TestWorkerCount(t *testing.T) {
	cfg := Default()
	cfg.Render.Workers = 5
	if cfg.WorkerCount() != 5 {
		t.Errorf("Expected explicit worker count 5, got %d", cfg.WorkerCount())
	}

	cfg.Render.Workers = 0
	if cfg.WorkerCount() < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.WorkerCount())
	}
}

func TestDescribeHost(t *testing.T) {
	info := DescribeHost()
	if info.PhysicalCores < 1 {
		t.Errorf("Expected at least one core, got %d", info.PhysicalCores)
	}
	if info.String() == "" {
		t.Error("Expected a host description")
	}
}
