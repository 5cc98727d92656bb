package filter

import (
	"testing"

	"github.com/gopaint/aquarelle/internal/noise"
)

// TestGranulate_DarkPixelsUntouched verifies pixels at or below the
// lightness gate are byte-for-byte unchanged.
func TestGranulate_DarkPixelsUntouched(t *testing.T) {
	const w, h = 16, 16
	// Top half dark, bottom half bright.
	px := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		v := uint8(40)
		if y >= h/2 {
			v = 220
		}
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			px[i], px[i+1], px[i+2], px[i+3] = v, v, v, 255
		}
	}
	want := snapshot(px)

	field := noise.NewField(w, h, 0.37)
	Granulate(px, w, h, field, 0.8, 150, 1)

	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			for c := 0; c < 4; c++ {
				if px[i+c] != want[i+c] {
					t.Fatalf("dark pixel (%d,%d) channel %d modified", x, y, c)
				}
			}
		}
	}
}

// TestGranulate_TexturesLightPixels verifies light regions actually change.
func TestGranulate_TexturesLightPixels(t *testing.T) {
	const w, h = 16, 16
	px := uniformBuffer(w, h, 220, 220, 220, 255)
	want := snapshot(px)

	field := noise.NewField(w, h, 0.37)
	Granulate(px, w, h, field, 0.8, 150, 1)

	changed := 0
	for i := range px {
		if px[i] != want[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("no light pixel received texture")
	}
}

// TestGranulate_ZeroIntensityNoOp verifies intensity 0 disables the stage.
func TestGranulate_ZeroIntensityNoOp(t *testing.T) {
	const w, h = 8, 8
	px := uniformBuffer(w, h, 220, 220, 220, 255)
	want := snapshot(px)
	Granulate(px, w, h, noise.NewField(w, h, 0.1), 0, 150, 1)
	assertEqualBytes(t, px, want)
}

// TestGranulate_ParallelMatchesSequential verifies fan-out determinism.
func TestGranulate_ParallelMatchesSequential(t *testing.T) {
	const w, h = 48, 48
	seq := uniformBuffer(w, h, 200, 190, 210, 255)
	par := snapshot(seq)
	field := noise.NewField(w, h, 0.1)
	Granulate(seq, w, h, field, 0.5, 150, 1)
	Granulate(par, w, h, field, 0.5, 150, 4)
	assertEqualBytes(t, par, seq)
}
