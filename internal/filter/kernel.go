package filter

import "math"

// GaussianKernel generates the 1D Gaussian kernel for the given radius:
// 2*radius+1 weights, sigma = radius/2, normalized to sum 1.0.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius int) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	sigma := float64(radius) / 2
	twoSigmaSq := 2 * sigma * sigma
	size := 2*radius + 1

	kernel := make([]float64, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}
