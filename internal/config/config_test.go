package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Particles.Count != Default().Particles.Count {
		t.Errorf("missing file did not fall back to defaults")
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	data := `
particles:
  count: 500
tree:
  radius: 3.5
  height: 7
camera:
  parallax: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Particles.Count != 500 {
		t.Errorf("particles.count = %d, want 500", cfg.Particles.Count)
	}
	if cfg.Tree.Radius != 3.5 || cfg.Tree.Height != 7 {
		t.Errorf("tree = %+v, want radius 3.5 height 7", cfg.Tree)
	}
	if !cfg.Camera.Parallax {
		t.Error("camera.parallax not applied")
	}
	// Untouched keys keep their defaults.
	if cfg.ScatterRadius != Default().ScatterRadius {
		t.Errorf("scatterRadius = %v, want default %v", cfg.ScatterRadius, Default().ScatterRadius)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Zero particles", "particles:\n  count: 0\n"},
		{"Negative tree radius", "tree:\n  radius: -1\n"},
		{"Bad syntax", ":\n  - {{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
