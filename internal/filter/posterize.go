package filter

import (
	"math"
	"math/rand/v2"

	"github.com/gopaint/aquarelle/internal/colorspace"
	"github.com/gopaint/aquarelle/internal/parallel"
)

// kmeansIterations is the fixed Lloyd iteration count of Lab posterization.
// Five rounds is enough for flat watercolor bands; running to convergence
// buys nothing visible.
const kmeansIterations = 5

// PosterizeRGB snaps each color channel to the nearest of `levels` uniform
// steps. levels=256 is the identity. Alpha is untouched.
//
// Callers must ensure levels >= 2; the step is 255/(levels-1).
func PosterizeRGB(px []uint8, width, height, levels, workers int) {
	step := 255.0 / float64(levels-1)
	parallel.Rows(height, workers, func(y0, y1 int) {
		for i := y0 * width * 4; i < y1*width*4; i += 4 {
			px[i+0] = clampByte(math.Round(float64(px[i+0])/step) * step)
			px[i+1] = clampByte(math.Round(float64(px[i+1])/step) * step)
			px[i+2] = clampByte(math.Round(float64(px[i+2])/step) * step)
		}
	})
}

// PosterizeLab clusters all pixels in CIELAB space with K-means and rewrites
// each pixel as its centroid, using the approximate Lab→RGB mapping from the
// colorspace package. Alpha is untouched.
//
// Centroids are seeded uniformly at random (L in [0,100], a and b in
// [-128,128]) from rng, then refined with a fixed number of Lloyd rounds.
// Assignment ties break toward the earlier centroid. A centroid that
// attracts no pixels keeps its previous position rather than being reseeded.
func PosterizeLab(px []uint8, width, height, levels int, rng *rand.Rand) {
	n := width * height
	labs := make([]colorspace.Lab, n)
	for i := 0; i < n; i++ {
		o := i * 4
		labs[i] = colorspace.RGBToLab(px[o+0], px[o+1], px[o+2])
	}

	centroids := make([]colorspace.Lab, levels)
	for k := range centroids {
		centroids[k] = colorspace.Lab{
			L: rng.Float64() * 100,
			A: rng.Float64()*256 - 128,
			B: rng.Float64()*256 - 128,
		}
	}

	assign := make([]int, n)
	sumL := make([]float64, levels)
	sumA := make([]float64, levels)
	sumB := make([]float64, levels)
	count := make([]int, levels)

	for iter := 0; iter < kmeansIterations; iter++ {
		for i, p := range labs {
			assign[i] = nearestCentroid(centroids, p)
		}

		for k := range centroids {
			sumL[k], sumA[k], sumB[k] = 0, 0, 0
			count[k] = 0
		}
		for i, p := range labs {
			k := assign[i]
			sumL[k] += p.L
			sumA[k] += p.A
			sumB[k] += p.B
			count[k]++
		}
		for k := range centroids {
			if count[k] == 0 {
				// Degenerate cluster: freeze it in place.
				continue
			}
			inv := 1 / float64(count[k])
			centroids[k] = colorspace.Lab{
				L: sumL[k] * inv,
				A: sumA[k] * inv,
				B: sumB[k] * inv,
			}
		}
	}

	for i, p := range labs {
		r, g, b := colorspace.LabToRGBApprox(centroids[nearestCentroid(centroids, p)])
		o := i * 4
		px[o+0] = r
		px[o+1] = g
		px[o+2] = b
	}
}

// nearestCentroid returns the index of the centroid closest to p by
// Euclidean distance in Lab space. The first minimum wins.
func nearestCentroid(centroids []colorspace.Lab, p colorspace.Lab) int {
	best := 0
	bestDist := math.Inf(1)
	for k, c := range centroids {
		dl := p.L - c.L
		da := p.A - c.A
		db := p.B - c.B
		d := dl*dl + da*da + db*db
		if d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}
