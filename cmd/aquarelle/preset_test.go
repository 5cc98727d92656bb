package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopaint/aquarelle"
)

// TestPreset_OverlaysDefaults verifies present keys override and absent keys
// keep their defaults.
func TestPreset_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soft.yaml")
	doc := `
blur_radius: 4
posterize_levels: 6
color_space: lab
color_bleed_strength: 0.55
granulation_intensity: 0.3
multi_thread: true
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg := aquarelle.DefaultConfig()
	if err := p.apply(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if cfg.BlurRadius != 4 || cfg.PosterizeLevels != 6 {
		t.Errorf("overridden fields not applied: %+v", cfg)
	}
	if cfg.ColorSpace != aquarelle.ColorSpaceLab {
		t.Errorf("ColorSpace = %v, want lab", cfg.ColorSpace)
	}
	if cfg.ColorBleedStrength != 0.55 || cfg.GranulationIntensity != 0.3 {
		t.Errorf("float fields not applied: %+v", cfg)
	}
	if !cfg.MultiThread {
		t.Error("MultiThread not applied")
	}

	// Absent keys keep the defaults.
	if cfg.BloomRadius != 3 || cfg.Saturation != 1.1 {
		t.Errorf("absent keys modified: %+v", cfg)
	}
}

// TestPreset_BadColorSpace verifies invalid enum strings are rejected.
func TestPreset_BadColorSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("color_space: cmyk\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := aquarelle.DefaultConfig()
	if err := p.apply(&cfg); err == nil {
		t.Error("invalid color space accepted")
	}
}

// TestPreset_MalformedYAML verifies parse errors surface.
func TestPreset_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("blur_radius: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPreset(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}

// TestPreset_MissingFile verifies a useful error for nonexistent paths.
func TestPreset_MissingFile(t *testing.T) {
	if _, err := loadPreset(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing preset accepted")
	}
}
