package filter

import "github.com/gopaint/aquarelle/internal/parallel"

// Bloom softens highlights by blending the buffer with a blurred copy of
// itself: the blurred result contributes intensity, the original
// 1-intensity, per color channel. Alpha is left as the blur pass produced
// it rather than re-blended.
//
// radius <= 0 is a no-op.
func Bloom(px []uint8, width, height, radius int, intensity float64, workers int) {
	if radius <= 0 {
		return
	}
	src := snapshot(px)
	Blur(px, width, height, radius, workers)
	keep := 1 - intensity

	parallel.Rows(height, workers, func(y0, y1 int) {
		for i := y0 * width * 4; i < y1*width*4; i += 4 {
			px[i+0] = clampByte(float64(src[i+0])*keep + float64(px[i+0])*intensity)
			px[i+1] = clampByte(float64(src[i+1])*keep + float64(px[i+1])*intensity)
			px[i+2] = clampByte(float64(src[i+2])*keep + float64(px[i+2])*intensity)
		}
	})
}
