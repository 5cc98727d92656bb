package aquarelle

import "fmt"

// ColorSpace selects the color space used by the posterization stage.
type ColorSpace int

const (
	// ColorSpaceSRGB quantizes each RGB channel uniformly.
	ColorSpaceSRGB ColorSpace = iota

	// ColorSpaceLab clusters pixels in CIELAB space with K-means.
	ColorSpaceLab
)

// String returns the lowercase name of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceSRGB:
		return "srgb"
	case ColorSpaceLab:
		return "lab"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

// ParseColorSpace parses "srgb" or "lab".
func ParseColorSpace(s string) (ColorSpace, error) {
	switch s {
	case "srgb":
		return ColorSpaceSRGB, nil
	case "lab":
		return ColorSpaceLab, nil
	default:
		return 0, fmt.Errorf("aquarelle: unknown color space %q", s)
	}
}

// Precision selects the sampling density of the granulation noise field.
// Lower precision uses a coarser noise lattice.
type Precision int

const (
	PrecisionLow Precision = iota
	PrecisionMedium
	PrecisionHigh
)

// String returns the lowercase name of the precision tier.
func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "low"
	case PrecisionMedium:
		return "medium"
	case PrecisionHigh:
		return "high"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision parses "low", "medium" or "high".
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "low":
		return PrecisionLow, nil
	case "medium":
		return PrecisionMedium, nil
	case "high":
		return PrecisionHigh, nil
	default:
		return 0, fmt.Errorf("aquarelle: unknown precision %q", s)
	}
}

// noiseScale maps the precision tier to the noise sampling scale.
// Coarser lattices (smaller scale) for lower tiers.
func (p Precision) noiseScale() float64 {
	switch p {
	case PrecisionLow:
		return 0.05
	case PrecisionHigh:
		return 0.2
	default:
		return 0.1
	}
}

// Config holds every tunable of the watercolor pipeline. A Config is a plain
// value: build one with NewConfig (or DefaultConfig plus field assignments)
// and pass it to Process. No stage mutates it and there is no package-level
// default to configure.
type Config struct {
	// BlurRadius is the Gaussian blur radius of the initial softening pass,
	// in pixels. Zero disables the blur; negative values are rejected.
	BlurRadius int

	// PosterizeLevels is the number of color levels (sRGB mode) or Lab
	// clusters (Lab mode). sRGB mode requires at least 2.
	PosterizeLevels int

	// ColorSpace selects sRGB quantization or Lab K-means posterization.
	ColorSpace ColorSpace

	// ColorBleedStrength is the blend weight of the bled-in neighbor color,
	// in [0,1]. Zero disables bleeding.
	ColorBleedStrength float64

	// ColorSpreadMaxOffset is the maximum flow-vector offset of the color
	// bleed stage, in pixels, per axis.
	ColorSpreadMaxOffset int

	// EdgePreserve enables the Sobel edge mask blended over the blur pass.
	EdgePreserve bool

	// EdgeDetectionThreshold is the Sobel gradient magnitude above which a
	// pixel counts as an edge.
	EdgeDetectionThreshold float64

	// EdgeThreshold is the mean-lightness gate of the granulation stage:
	// only pixels lighter than this receive pigment texture.
	EdgeThreshold float64

	// WetInWetEffect is the blend weight of the 8-neighbor average, in [0,1].
	WetInWetEffect float64

	// GranulationIntensity scales the pigment noise added to light pixels.
	GranulationIntensity float64

	// BloomRadius is the blur radius of the bloom stage, in pixels.
	BloomRadius int

	// BloomIntensity is the blend weight of the blurred copy, in [0,1].
	BloomIntensity float64

	// Vibrance boosts muted colors toward the dominant channel.
	Vibrance float64

	// Saturation scales chroma around perceptual gray. 1 is neutral.
	Saturation float64

	// Precision selects the granulation noise density.
	Precision Precision

	// MultiThread fans the independent per-pixel stages out across rows.
	// Output is byte-identical to single-threaded execution.
	MultiThread bool

	// Seed seeds the pipeline's pseudo-random source (color bleed, Lab
	// centroid initialization). Zero draws a fresh seed per call, making
	// those stages intentionally non-deterministic.
	Seed uint64

	// Reserved tone tunables, carried so presets can round-trip them.
	// The fixed stage sequence does not read them.
	NoiseIntensity  float64
	TextureStrength float64
	Contrast        float64
	Brightness      float64
	EdgeIntensity   float64
	Quality         float64
}

// DefaultConfig returns the default watercolor parameters.
func DefaultConfig() Config {
	return Config{
		BlurRadius:             2,
		PosterizeLevels:        8,
		ColorSpace:             ColorSpaceSRGB,
		ColorBleedStrength:     0.4,
		ColorSpreadMaxOffset:   4,
		EdgePreserve:           true,
		EdgeDetectionThreshold: 25,
		EdgeThreshold:          150,
		WetInWetEffect:         0.3,
		GranulationIntensity:   0.2,
		BloomRadius:            3,
		BloomIntensity:         0.15,
		Vibrance:               1.0,
		Saturation:             1.1,
		Precision:              PrecisionMedium,
		MultiThread:            false,

		NoiseIntensity:  20,
		TextureStrength: 0.25,
		Contrast:        1.1,
		Brightness:      15,
		EdgeIntensity:   35,
		Quality:         0.95,
	}
}

// Validate checks the configuration invariants. It is called by Process
// before any pixel is touched, so an invalid Config never partially
// transforms a buffer.
func (c Config) Validate() error {
	if c.BlurRadius < 0 {
		return &ConfigurationError{Field: "BlurRadius", Reason: "must not be negative"}
	}
	if c.BloomRadius < 0 {
		return &ConfigurationError{Field: "BloomRadius", Reason: "must not be negative"}
	}
	if c.ColorSpreadMaxOffset < 0 {
		return &ConfigurationError{Field: "ColorSpreadMaxOffset", Reason: "must not be negative"}
	}
	switch c.ColorSpace {
	case ColorSpaceSRGB:
		// The quantization step is 255/(levels-1).
		if c.PosterizeLevels < 2 {
			return &ConfigurationError{Field: "PosterizeLevels", Reason: "must be at least 2 in sRGB mode"}
		}
	case ColorSpaceLab:
		if c.PosterizeLevels < 1 {
			return &ConfigurationError{Field: "PosterizeLevels", Reason: "must be at least 1 in Lab mode"}
		}
	default:
		return &ConfigurationError{Field: "ColorSpace", Reason: fmt.Sprintf("unknown value %d", int(c.ColorSpace))}
	}
	return nil
}
