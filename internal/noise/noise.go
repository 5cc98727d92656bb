// Package noise provides a deterministic 2D gradient noise field used by the
// granulation stage to texture pigment deposits.
package noise

// Field holds one precomputed noise sample per pixel. Samples lie roughly in
// [-1,1] and are fully determined by the pixel coordinates and the lattice
// scale; there is no external randomness.
type Field struct {
	width   int
	height  int
	samples []float64
}

// NewField precomputes a width×height noise field. scale sets the lattice
// density: smaller values give a coarser, blotchier texture.
func NewField(width, height int, scale float64) *Field {
	f := &Field{
		width:   width,
		height:  height,
		samples: make([]float64, width*height),
	}
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.samples[i] = sample(float64(x)*scale, float64(y)*scale)
			i++
		}
	}
	return f
}

// At returns the noise sample for a pixel. Out-of-range coordinates return 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.samples[y*f.width+x]
}

// sample evaluates gradient noise at a lattice-space coordinate: hash the
// four surrounding lattice corners, dot each corner gradient with the offset
// to the sample point, and interpolate with the quintic fade curve.
func sample(x, y float64) float64 {
	xi, yi := floor(x), floor(y)
	tx, ty := x-float64(xi), y-float64(yi)

	d00 := gradDot(xi, yi, tx, ty)
	d10 := gradDot(xi+1, yi, tx-1, ty)
	d01 := gradDot(xi, yi+1, tx, ty-1)
	d11 := gradDot(xi+1, yi+1, tx-1, ty-1)

	u := fade(tx)
	v := fade(ty)

	return lerp(lerp(d00, d10, u), lerp(d01, d11, u), v)
}

// gradients are the eight unit/diagonal directions selected by the low bits
// of the lattice hash.
var gradients = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// gradDot picks the gradient at lattice point (xi,yi) and dots it with the
// offset (dx,dy) from that corner to the sample point.
func gradDot(xi, yi int, dx, dy float64) float64 {
	g := gradients[hash(xi, yi)&7]
	return g[0]*dx + g[1]*dy
}

// hash mixes the lattice coordinates with multiply/xor avalanche steps.
func hash(x, y int) uint32 {
	h := uint32(x)*0x27d4eb2d ^ uint32(y)*0x9e3779b9
	h ^= h >> 15
	h *= 0x85ebca6b
	h ^= h >> 13
	return h
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at the lattice points, hiding the grid.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// floor for the small coordinate ranges noise operates on.
func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
