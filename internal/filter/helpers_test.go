package filter

import "testing"

// uniformBuffer returns a w×h RGBA buffer filled with one color.
func uniformBuffer(w, h int, r, g, b, a uint8) []uint8 {
	px := make([]uint8, w*h*4)
	for i := 0; i < len(px); i += 4 {
		px[i+0] = r
		px[i+1] = g
		px[i+2] = b
		px[i+3] = a
	}
	return px
}

// patternBuffer returns a deterministic non-uniform w×h RGBA buffer.
func patternBuffer(w, h int) []uint8 {
	px := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			px[i+0] = uint8((x*37 + y*11) % 256)
			px[i+1] = uint8((x*13 + y*59) % 256)
			px[i+2] = uint8((x * y) % 256)
			px[i+3] = 255
		}
	}
	return px
}

// assertEqualBytes fails if two buffers differ, reporting the first mismatch.
func assertEqualBytes(t *testing.T, got, want []uint8) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
