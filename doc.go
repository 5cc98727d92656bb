// Package aquarelle transforms raster images into stylized watercolor
// renderings.
//
// # Overview
//
// aquarelle runs a fixed sequence of per-pixel and neighborhood transforms
// over an RGBA pixel buffer: Gaussian blur (optionally edge-preserving),
// color posterization (uniform RGB or CIELAB K-means), stochastic color
// bleed, wet-in-wet neighborhood blending, noise-driven pigment granulation,
// bloom, and a final vibrance/saturation adjustment.
//
// # Quick Start
//
//	import "github.com/gopaint/aquarelle"
//
//	pm := aquarelle.FromImage(img)
//	cfg := aquarelle.NewConfig(
//	    aquarelle.WithBlurRadius(3),
//	    aquarelle.WithPosterizeLevels(6),
//	)
//	if err := aquarelle.Process(pm, cfg); err != nil {
//	    log.Fatal(err)
//	}
//	out := pm.ToImage()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Config, Process
//   - Internal: filter (per-stage transforms), colorspace (sRGB/XYZ/Lab),
//     noise (gradient noise field), parallel (row fan-out), imageio (codecs)
//
// # Determinism
//
// Two stages are stochastic: color bleed and Lab-mode posterization seeding.
// Supply a non-zero seed via WithSeed for reproducible output; with the zero
// seed each run draws fresh randomness.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner; X increases right, Y increases down.
// Buffers are row-major interleaved RGBA, 8 bits per channel.
package aquarelle

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
