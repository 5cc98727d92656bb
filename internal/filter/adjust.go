package filter

import "github.com/gopaint/aquarelle/internal/parallel"

// Adjust applies the final tone pass: vibrance first, then saturation, with
// saturation operating on the vibrance-adjusted values. Alpha is untouched.
//
// Vibrance pulls each channel toward the per-pixel maximum in proportion to
// how far the pixel already is from gray: amt = (max-mean)*vibrance*0.3,
// applied as a normalized pull factor amt/255. Saturation scales each
// channel's distance from the perceptual gray 0.2989R+0.5870G+0.1140B.
func Adjust(px []uint8, width, height int, vibrance, saturation float64, workers int) {
	parallel.Rows(height, workers, func(y0, y1 int) {
		for i := y0 * width * 4; i < y1*width*4; i += 4 {
			r := float64(px[i+0])
			g := float64(px[i+1])
			b := float64(px[i+2])

			mx := r
			if g > mx {
				mx = g
			}
			if b > mx {
				mx = b
			}
			mean := (r + g + b) / 3
			pull := (mx - mean) * vibrance * 0.3 / 255
			r += (mx - r) * pull
			g += (mx - g) * pull
			b += (mx - b) * pull

			gray := 0.2989*r + 0.5870*g + 0.1140*b
			r = gray + (r-gray)*saturation
			g = gray + (g-gray)*saturation
			b = gray + (b-gray)*saturation

			px[i+0] = clampByte(r)
			px[i+1] = clampByte(g)
			px[i+2] = clampByte(b)
		}
	})
}
