package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tile_size: 32\nland_threshold: 200\nshallow_buffer: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TileSize != 32 || cfg.LandThreshold != 200 || cfg.ShallowBuffer != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tile_size: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Run from a scratch directory so no local configs/ is picked up.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultProcessConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultProcessConfig())
	}
}
