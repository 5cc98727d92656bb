// Package colorspace provides the sRGB → XYZ → CIELAB conversions used by
// Lab-mode posterization, plus the approximate Lab → RGB reconstruction the
// pipeline writes back.
package colorspace

import "math"

// Lab is a CIELAB color: L in [0,100], a and b roughly in [-128,128].
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white, 2° observer.
const (
	refX = 95.047
	refY = 100.000
	refZ = 108.883
)

// RGBToXYZ converts 8-bit sRGB channels to XYZ scaled to [0,100].
// Channels are linearized with the piecewise sRGB inverse gamma before the
// 3×3 matrix is applied.
func RGBToXYZ(r, g, b uint8) (x, y, z float64) {
	rl := linearize(float64(r) / 255)
	gl := linearize(float64(g) / 255)
	bl := linearize(float64(b) / 255)

	rl *= 100
	gl *= 100
	bl *= 100

	x = rl*0.4124 + gl*0.3576 + bl*0.1805
	y = rl*0.2126 + gl*0.7152 + bl*0.0722
	z = rl*0.0193 + gl*0.1192 + bl*0.9505
	return x, y, z
}

// linearize applies the piecewise sRGB inverse gamma to a [0,1] channel.
func linearize(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// XYZToLab converts XYZ (scaled to [0,100]) to CIELAB.
func XYZToLab(x, y, z float64) Lab {
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labF is the piecewise cube-root used by the CIELAB forward transform.
func labF(t float64) float64 {
	const epsilon = 0.008856
	if t > epsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// RGBToLab converts 8-bit sRGB channels directly to CIELAB.
func RGBToLab(r, g, b uint8) Lab {
	return XYZToLab(RGBToXYZ(r, g, b))
}

// LabToRGBApprox maps a Lab color back to RGB bytes with the cheap
// channel-wise approximation used by posterization: L rescaled to [0,255],
// a and b offset by 128. This is NOT the CIELAB inverse; it trades
// colorimetric accuracy for a stable, monotonic mapping of cluster
// centroids onto displayable bytes.
func LabToRGBApprox(c Lab) (r, g, b uint8) {
	r = clampByte(c.L * 255 / 100)
	g = clampByte(c.A + 128)
	b = clampByte(c.B + 128)
	return r, g, b
}

// clampByte clamps a float to [0,255] and rounds to a byte.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
