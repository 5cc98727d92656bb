package filter

import (
	"github.com/gopaint/aquarelle/internal/noise"
	"github.com/gopaint/aquarelle/internal/parallel"
)

// Granulate injects pigment texture into light regions. A pixel whose mean
// lightness exceeds lightnessGate receives its noise field sample scaled by
// intensity*30, added at full strength to R and slightly damped (0.9, 0.95)
// to G and B, imitating how pigment granules settle unevenly per channel.
// Darker pixels are left byte-for-byte unchanged.
func Granulate(px []uint8, width, height int, field *noise.Field, intensity, lightnessGate float64, workers int) {
	if intensity <= 0 {
		return
	}
	scale := intensity * 30

	parallel.Rows(height, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				i := (y*width + x) * 4
				mean := (float64(px[i+0]) + float64(px[i+1]) + float64(px[i+2])) / 3
				if mean <= lightnessGate {
					continue
				}
				n := field.At(x, y) * scale
				px[i+0] = clampByte(float64(px[i+0]) + n)
				px[i+1] = clampByte(float64(px[i+1]) + n*0.9)
				px[i+2] = clampByte(float64(px[i+2]) + n*0.95)
			}
		}
	})
}
