package filter

import "github.com/gopaint/aquarelle/internal/parallel"

// Blur applies a separable Gaussian blur to the buffer in place. The
// separable algorithm runs a horizontal pass into a temporary float buffer
// and a vertical pass back into the byte buffer, achieving O(w*h*radius)
// complexity instead of O(w*h*radius²).
//
// Sampling is clamped at the borders: out-of-range taps are skipped and the
// remaining weights renormalized, so a uniform image stays uniform. The
// alpha channel is blurred like the color channels.
//
// radius <= 0 is a no-op.
func Blur(px []uint8, width, height, radius, workers int) {
	if radius <= 0 {
		return
	}
	kernel := GaussianKernel(radius)
	tmp := make([]float64, len(px))

	// Pass 1: horizontal, px -> tmp.
	parallel.Rows(height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * width * 4
			for x := 0; x < width; x++ {
				var acc [4]float64
				sum := 0.0
				for t := -radius; t <= radius; t++ {
					sx := x + t
					if sx < 0 || sx >= width {
						continue
					}
					w := kernel[t+radius]
					i := row + sx*4
					acc[0] += w * float64(px[i+0])
					acc[1] += w * float64(px[i+1])
					acc[2] += w * float64(px[i+2])
					acc[3] += w * float64(px[i+3])
					sum += w
				}
				o := row + x*4
				tmp[o+0] = acc[0] / sum
				tmp[o+1] = acc[1] / sum
				tmp[o+2] = acc[2] / sum
				tmp[o+3] = acc[3] / sum
			}
		}
	})

	// Pass 2: vertical, tmp -> px.
	parallel.Rows(height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				var acc [4]float64
				sum := 0.0
				for t := -radius; t <= radius; t++ {
					sy := y + t
					if sy < 0 || sy >= height {
						continue
					}
					w := kernel[t+radius]
					i := (sy*width + x) * 4
					acc[0] += w * tmp[i+0]
					acc[1] += w * tmp[i+1]
					acc[2] += w * tmp[i+2]
					acc[3] += w * tmp[i+3]
					sum += w
				}
				o := (y*width + x) * 4
				px[o+0] = clampByte(acc[0] / sum)
				px[o+1] = clampByte(acc[1] / sum)
				px[o+2] = clampByte(acc[2] / sum)
				px[o+3] = clampByte(acc[3] / sum)
			}
		}
	})
}
