package filter

import (
	"math"

	"github.com/gopaint/aquarelle/internal/parallel"
)

// SobelMask detects edges and returns them as a standalone RGBA mask the
// same size as the input; the input is not modified.
//
// Luminance is the unweighted mean of R, G and B. The 3×3 Sobel operator is
// applied to interior pixels only; a marked pixel gets R=G=B=255, an
// unmarked one R=G=B=0, both with alpha 255. The 1-pixel border stays
// zeroed (transparent).
func SobelMask(px []uint8, width, height int, threshold float64, workers int) []uint8 {
	mask := make([]uint8, len(px))
	if width < 3 || height < 3 {
		return mask
	}

	lum := make([]float64, width*height)
	parallel.Rows(height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				i := (y*width + x) * 4
				lum[y*width+x] = (float64(px[i+0]) + float64(px[i+1]) + float64(px[i+2])) / 3
			}
		}
	})

	parallel.Rows(height-2, workers, func(y0, y1 int) {
		for y := y0 + 1; y < y1+1; y++ {
			for x := 1; x < width-1; x++ {
				tl := lum[(y-1)*width+x-1]
				tc := lum[(y-1)*width+x]
				tr := lum[(y-1)*width+x+1]
				ml := lum[y*width+x-1]
				mr := lum[y*width+x+1]
				bl := lum[(y+1)*width+x-1]
				bc := lum[(y+1)*width+x]
				br := lum[(y+1)*width+x+1]

				gx := -tl + tr - 2*ml + 2*mr - bl + br
				gy := -tl - 2*tc - tr + bl + 2*bc + br
				mag := math.Sqrt(gx*gx + gy*gy)

				var v uint8
				if mag > threshold {
					v = 255
				}
				o := (y*width + x) * 4
				mask[o+0] = v
				mask[o+1] = v
				mask[o+2] = v
				mask[o+3] = 255
			}
		}
	})

	return mask
}

// PreserveEdges blends the mask's luminance into the buffer wherever the
// mask marks an edge: marked pixels keep 60% of their (blurred) color and
// take 40% from the mask value. Unmarked pixels are untouched.
func PreserveEdges(px, mask []uint8, width, height, workers int) {
	parallel.Rows(height, workers, func(y0, y1 int) {
		for i := y0 * width * 4; i < y1*width*4; i += 4 {
			if mask[i] == 0 {
				continue
			}
			m := float64(mask[i])
			px[i+0] = clampByte(float64(px[i+0])*0.6 + m*0.4)
			px[i+1] = clampByte(float64(px[i+1])*0.6 + m*0.4)
			px[i+2] = clampByte(float64(px[i+2])*0.6 + m*0.4)
		}
	})
}
