package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gopaint/aquarelle"
)

// preset is a YAML overlay for the pipeline configuration. Every field is a
// pointer so absent keys leave the corresponding Config field alone.
//
// Example preset file:
//
//	blur_radius: 4
//	posterize_levels: 6
//	color_space: lab
//	color_bleed_strength: 0.5
//	granulation_intensity: 0.3
type preset struct {
	BlurRadius             *int     `yaml:"blur_radius"`
	PosterizeLevels        *int     `yaml:"posterize_levels"`
	ColorSpace             *string  `yaml:"color_space"`
	Precision              *string  `yaml:"precision"`
	ColorBleedStrength     *float64 `yaml:"color_bleed_strength"`
	ColorSpreadMaxOffset   *int     `yaml:"color_spread_max_offset"`
	EdgePreserve           *bool    `yaml:"edge_preserve"`
	EdgeDetectionThreshold *float64 `yaml:"edge_detection_threshold"`
	EdgeThreshold          *float64 `yaml:"edge_threshold"`
	WetInWetEffect         *float64 `yaml:"wet_in_wet_effect"`
	GranulationIntensity   *float64 `yaml:"granulation_intensity"`
	BloomRadius            *int     `yaml:"bloom_radius"`
	BloomIntensity         *float64 `yaml:"bloom_intensity"`
	Vibrance               *float64 `yaml:"vibrance"`
	Saturation             *float64 `yaml:"saturation"`
	MultiThread            *bool    `yaml:"multi_thread"`

	NoiseIntensity  *float64 `yaml:"noise_intensity"`
	TextureStrength *float64 `yaml:"texture_strength"`
	Contrast        *float64 `yaml:"contrast"`
	Brightness      *float64 `yaml:"brightness"`
	EdgeIntensity   *float64 `yaml:"edge_intensity"`
	Quality         *float64 `yaml:"quality"`
}

// loadPreset reads and parses a YAML preset file.
func loadPreset(path string) (*preset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: read: %w", err)
	}
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	return &p, nil
}

// apply overlays the preset's present fields onto cfg.
func (p *preset) apply(cfg *aquarelle.Config) error {
	if p.BlurRadius != nil {
		cfg.BlurRadius = *p.BlurRadius
	}
	if p.PosterizeLevels != nil {
		cfg.PosterizeLevels = *p.PosterizeLevels
	}
	if p.ColorSpace != nil {
		cs, err := aquarelle.ParseColorSpace(*p.ColorSpace)
		if err != nil {
			return fmt.Errorf("preset: %w", err)
		}
		cfg.ColorSpace = cs
	}
	if p.Precision != nil {
		pr, err := aquarelle.ParsePrecision(*p.Precision)
		if err != nil {
			return fmt.Errorf("preset: %w", err)
		}
		cfg.Precision = pr
	}
	if p.ColorBleedStrength != nil {
		cfg.ColorBleedStrength = *p.ColorBleedStrength
	}
	if p.ColorSpreadMaxOffset != nil {
		cfg.ColorSpreadMaxOffset = *p.ColorSpreadMaxOffset
	}
	if p.EdgePreserve != nil {
		cfg.EdgePreserve = *p.EdgePreserve
	}
	if p.EdgeDetectionThreshold != nil {
		cfg.EdgeDetectionThreshold = *p.EdgeDetectionThreshold
	}
	if p.EdgeThreshold != nil {
		cfg.EdgeThreshold = *p.EdgeThreshold
	}
	if p.WetInWetEffect != nil {
		cfg.WetInWetEffect = *p.WetInWetEffect
	}
	if p.GranulationIntensity != nil {
		cfg.GranulationIntensity = *p.GranulationIntensity
	}
	if p.BloomRadius != nil {
		cfg.BloomRadius = *p.BloomRadius
	}
	if p.BloomIntensity != nil {
		cfg.BloomIntensity = *p.BloomIntensity
	}
	if p.Vibrance != nil {
		cfg.Vibrance = *p.Vibrance
	}
	if p.Saturation != nil {
		cfg.Saturation = *p.Saturation
	}
	if p.MultiThread != nil {
		cfg.MultiThread = *p.MultiThread
	}

	if p.NoiseIntensity != nil {
		cfg.NoiseIntensity = *p.NoiseIntensity
	}
	if p.TextureStrength != nil {
		cfg.TextureStrength = *p.TextureStrength
	}
	if p.Contrast != nil {
		cfg.Contrast = *p.Contrast
	}
	if p.Brightness != nil {
		cfg.Brightness = *p.Brightness
	}
	if p.EdgeIntensity != nil {
		cfg.EdgeIntensity = *p.EdgeIntensity
	}
	if p.Quality != nil {
		cfg.Quality = *p.Quality
	}
	return nil
}
