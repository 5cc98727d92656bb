package filter

import "math/rand/v2"

// Bleed diffuses color between nearby pixels. Each pixel draws a random flow
// vector with independent uniform offsets in [-maxOffset, maxOffset], samples
// the pre-bleed buffer at the clamped destination, and blends the sampled
// color in: the sample contributes strength, the original 1-strength.
// Alpha is untouched.
//
// This stage is sequential: pixel order is part of the random stream, so
// seeded runs reproduce exactly.
func Bleed(px []uint8, width, height int, strength float64, maxOffset int, rng *rand.Rand) {
	if strength <= 0 {
		return
	}
	src := snapshot(px)
	span := 2*maxOffset + 1
	keep := 1 - strength

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := rng.IntN(span) - maxOffset
			dy := rng.IntN(span) - maxOffset

			sx := x + dx
			if sx < 0 {
				sx = 0
			} else if sx >= width {
				sx = width - 1
			}
			sy := y + dy
			if sy < 0 {
				sy = 0
			} else if sy >= height {
				sy = height - 1
			}

			o := (y*width + x) * 4
			s := (sy*width + sx) * 4
			px[o+0] = clampByte(float64(px[o+0])*keep + float64(src[s+0])*strength)
			px[o+1] = clampByte(float64(px[o+1])*keep + float64(src[s+1])*strength)
			px[o+2] = clampByte(float64(px[o+2])*keep + float64(src[s+2])*strength)
		}
	}
}
