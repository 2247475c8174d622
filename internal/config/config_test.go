package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imgtogif.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Quantizer != "uniform" {
		t.Errorf("default quantizer = %q, want uniform", cfg.Defaults.Quantizer)
	}
	if !cfg.Watched("photo.PNG") {
		t.Error("default extensions should match .png case-insensitively")
	}
	if cfg.Watched("photo.gif") {
		t.Error(".gif must not be watched by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  width: 320
  quantizer: mediancut
  blur_sigma: 1.5
watch:
  extensions: [".png"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Width != 320 || cfg.Defaults.Height != 0 {
		t.Errorf("dimensions = %dx%d, want 320x0", cfg.Defaults.Width, cfg.Defaults.Height)
	}
	if cfg.Defaults.Quantizer != "mediancut" {
		t.Errorf("quantizer = %q", cfg.Defaults.Quantizer)
	}
	if cfg.Watched("a.jpg") {
		t.Error("overridden extension list should drop .jpg")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative width", "defaults:\n  width: -1\n"},
		{"negative blur", "defaults:\n  blur_sigma: -0.5\n"},
		{"dotless extension", "watch:\n  extensions: [\"png\"]\n"},
		{"bad yaml", "defaults: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
