package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window size = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Hello, cube!" {
		t.Errorf("default title = %q", cfg.Window.Title)
	}
	if len(cfg.Shaders.Bindings) != 10 {
		t.Errorf("default bindings = %d entries, want one per digit key", len(cfg.Shaders.Bindings))
	}
	for digit := 0; digit <= 9; digit++ {
		pair, ok := cfg.Binding(digit)
		if !ok {
			t.Errorf("digit %d has no binding", digit)
			continue
		}
		if pair.Vertex == "" || pair.Fragment == "" {
			t.Errorf("digit %d binding is incomplete: %+v", digit, pair)
		}
	}
	if cfg.Shaders.Startup.Vertex == "" || cfg.Shaders.Startup.Fragment == "" {
		t.Error("no startup shader pair configured")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadConfig() on a missing file returned no error")
	}
	if cfg == nil {
		t.Fatal("LoadConfig() on a missing file returned no config")
	}
	if cfg.Window.Width != 800 {
		t.Errorf("fallback config width = %d, want default 800", cfg.Window.Width)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`window:
  width: 1024
  height: 768
shaders:
  bindings:
    5:
      vertex: shaders/mine.vs.glsl
      fragment: shaders/mine.fs.glsl
diagnostics:
  gl_checks: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window size = %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Hello, cube!" {
		t.Errorf("title = %q, want the default preserved", cfg.Window.Title)
	}
	pair, ok := cfg.Binding(5)
	if !ok || pair.Vertex != "shaders/mine.vs.glsl" {
		t.Errorf("binding 5 = %+v, %v", pair, ok)
	}
	if !cfg.Diagnostics.GLChecks {
		t.Error("gl_checks flag not applied")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: ["), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig() accepted malformed yaml")
	}
	if cfg == nil || cfg.Window.Width != 800 {
		t.Error("malformed yaml did not fall back to defaults")
	}
}

func TestBindingOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.Binding(12); ok {
		t.Error("Binding(12) reported a pair for a key that cannot exist")
	}
}
