package aquarelle

// Option configures a Config during creation with NewConfig.
//
// Example:
//
//	// Default watercolor parameters
//	cfg := aquarelle.NewConfig()
//
//	// Heavier blur, Lab posterization, reproducible randomness
//	cfg := aquarelle.NewConfig(
//	    aquarelle.WithBlurRadius(4),
//	    aquarelle.WithColorSpace(aquarelle.ColorSpaceLab),
//	    aquarelle.WithSeed(42),
//	)
type Option func(*Config)

// NewConfig builds a Config from the defaults with the given options applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBlurRadius sets the initial Gaussian blur radius in pixels.
func WithBlurRadius(r int) Option {
	return func(c *Config) { c.BlurRadius = r }
}

// WithPosterizeLevels sets the number of posterization levels or clusters.
func WithPosterizeLevels(n int) Option {
	return func(c *Config) { c.PosterizeLevels = n }
}

// WithColorSpace selects sRGB quantization or Lab K-means posterization.
func WithColorSpace(cs ColorSpace) Option {
	return func(c *Config) { c.ColorSpace = cs }
}

// WithColorBleed sets the bleed blend strength and maximum flow offset.
func WithColorBleed(strength float64, maxOffset int) Option {
	return func(c *Config) {
		c.ColorBleedStrength = strength
		c.ColorSpreadMaxOffset = maxOffset
	}
}

// WithEdgePreserve toggles the Sobel edge mask over the blur pass and sets
// the gradient magnitude threshold.
func WithEdgePreserve(enabled bool, threshold float64) Option {
	return func(c *Config) {
		c.EdgePreserve = enabled
		c.EdgeDetectionThreshold = threshold
	}
}

// WithWetInWet sets the 8-neighbor blending strength.
func WithWetInWet(strength float64) Option {
	return func(c *Config) { c.WetInWetEffect = strength }
}

// WithGranulation sets the pigment texture intensity and the lightness gate
// above which pixels receive texture.
func WithGranulation(intensity, lightnessGate float64) Option {
	return func(c *Config) {
		c.GranulationIntensity = intensity
		c.EdgeThreshold = lightnessGate
	}
}

// WithBloom sets the bloom blur radius and blend intensity.
func WithBloom(radius int, intensity float64) Option {
	return func(c *Config) {
		c.BloomRadius = radius
		c.BloomIntensity = intensity
	}
}

// WithTone sets the final vibrance and saturation adjustment.
func WithTone(vibrance, saturation float64) Option {
	return func(c *Config) {
		c.Vibrance = vibrance
		c.Saturation = saturation
	}
}

// WithPrecision selects the granulation noise density tier.
func WithPrecision(p Precision) Option {
	return func(c *Config) { c.Precision = p }
}

// WithMultiThread fans the independent per-pixel stages out across rows.
func WithMultiThread(enabled bool) Option {
	return func(c *Config) { c.MultiThread = enabled }
}

// WithSeed seeds the pipeline's pseudo-random source. A non-zero seed makes
// the stochastic stages (color bleed, Lab centroid seeding) reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}
