package filter

import "github.com/gopaint/aquarelle/internal/parallel"

// WetInWet simulates pigments mixing on wet paper: every interior pixel is
// blended with the average of its 8 neighbors from a pre-stage snapshot.
// The average contributes strength, the original 1-strength. The 1-pixel
// border and the alpha channel are never modified.
func WetInWet(px []uint8, width, height int, strength float64, workers int) {
	if strength <= 0 || width < 3 || height < 3 {
		return
	}
	src := snapshot(px)
	keep := 1 - strength

	parallel.Rows(height-2, workers, func(y0, y1 int) {
		for y := y0 + 1; y < y1+1; y++ {
			for x := 1; x < width-1; x++ {
				var sumR, sumG, sumB float64
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						s := ((y+dy)*width + x + dx) * 4
						sumR += float64(src[s+0])
						sumG += float64(src[s+1])
						sumB += float64(src[s+2])
					}
				}
				o := (y*width + x) * 4
				px[o+0] = clampByte(float64(px[o+0])*keep + sumR/8*strength)
				px[o+1] = clampByte(float64(px[o+1])*keep + sumG/8*strength)
				px[o+2] = clampByte(float64(px[o+2])*keep + sumB/8*strength)
			}
		}
	})
}
