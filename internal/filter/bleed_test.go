package filter

import (
	"math/rand/v2"
	"testing"
)

// TestBleed_ZeroStrengthNoOp verifies strength 0 disables the stage entirely.
func TestBleed_ZeroStrengthNoOp(t *testing.T) {
	px := patternBuffer(12, 12)
	want := snapshot(px)
	Bleed(px, 12, 12, 0, 4, rand.New(rand.NewPCG(1, 1)))
	assertEqualBytes(t, px, want)
}

// TestBleed_AlphaUntouched verifies only color channels are diffused.
func TestBleed_AlphaUntouched(t *testing.T) {
	px := patternBuffer(12, 12)
	want := snapshot(px)
	Bleed(px, 12, 12, 0.5, 3, rand.New(rand.NewPCG(2, 2)))
	for i := 3; i < len(px); i += 4 {
		if px[i] != want[i] {
			t.Fatalf("alpha modified at byte %d: got %d, want %d", i, px[i], want[i])
		}
	}
}

// TestBleed_SeededReproducible verifies identical seeds give identical output.
func TestBleed_SeededReproducible(t *testing.T) {
	a := patternBuffer(20, 20)
	b := snapshot(a)
	Bleed(a, 20, 20, 0.4, 4, rand.New(rand.NewPCG(7, 7)))
	Bleed(b, 20, 20, 0.4, 4, rand.New(rand.NewPCG(7, 7)))
	assertEqualBytes(t, a, b)
}

// TestBleed_ZeroOffsetNoOp verifies a zero flow range samples the pixel
// itself, leaving the buffer unchanged.
func TestBleed_ZeroOffsetNoOp(t *testing.T) {
	px := patternBuffer(8, 8)
	want := snapshot(px)
	Bleed(px, 8, 8, 0.7, 0, rand.New(rand.NewPCG(3, 3)))
	assertEqualBytes(t, px, want)
}

// TestBleed_UniformInvariant verifies a uniform image cannot bleed into
// anything different.
func TestBleed_UniformInvariant(t *testing.T) {
	px := uniformBuffer(10, 10, 60, 120, 180, 255)
	want := snapshot(px)
	Bleed(px, 10, 10, 0.9, 4, rand.New(rand.NewPCG(4, 4)))
	assertEqualBytes(t, px, want)
}
