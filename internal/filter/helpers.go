package filter

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

// snapshot returns a copy of the pixel slice for stages that read the
// pre-stage buffer while writing the live one.
func snapshot(px []uint8) []uint8 {
	return append([]uint8(nil), px...)
}
