// Package filter implements the per-stage pixel transforms of the watercolor
// pipeline: separable Gaussian blur, Sobel edge masking, posterization,
// stochastic color bleed, wet-in-wet blending, granulation, bloom, and tone
// adjustment.
//
// Every function operates on a raw row-major interleaved RGBA byte slice
// (4 bytes per pixel) and mutates it in place unless documented otherwise.
// Callers validate dimensions and parameters; filter functions assume
// len(px) == width*height*4 and in-range parameters.
//
// Functions taking a workers argument split their work into row bands when
// workers > 1. Parallel output is byte-identical to sequential output.
package filter
