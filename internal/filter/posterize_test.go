package filter

import (
	"math/rand/v2"
	"testing"
)

// TestPosterizeRGB_Identity verifies levels=256 is the identity transform.
func TestPosterizeRGB_Identity(t *testing.T) {
	px := patternBuffer(16, 16)
	want := snapshot(px)
	PosterizeRGB(px, 16, 16, 256, 1)
	assertEqualBytes(t, px, want)
}

// TestPosterizeRGB_StepMultiples verifies every output channel is an exact
// multiple of 255/(levels-1).
func TestPosterizeRGB_StepMultiples(t *testing.T) {
	px := patternBuffer(16, 16)
	PosterizeRGB(px, 16, 16, 4, 1)

	// step = 85: allowed values 0, 85, 170, 255.
	allowed := map[uint8]bool{0: true, 85: true, 170: true, 255: true}
	for i := 0; i < len(px); i += 4 {
		for c := 0; c < 3; c++ {
			if !allowed[px[i+c]] {
				t.Fatalf("pixel %d channel %d: %d is not a quantization level", i/4, c, px[i+c])
			}
		}
	}
}

// TestPosterizeRGB_AlphaUntouched verifies alpha passes through.
func TestPosterizeRGB_AlphaUntouched(t *testing.T) {
	px := uniformBuffer(4, 4, 10, 20, 30, 123)
	PosterizeRGB(px, 4, 4, 2, 1)
	for i := 3; i < len(px); i += 4 {
		if px[i] != 123 {
			t.Fatalf("alpha modified at byte %d: %d", i, px[i])
		}
	}
}

// TestPosterizeRGB_ParallelMatchesSequential verifies fan-out determinism.
func TestPosterizeRGB_ParallelMatchesSequential(t *testing.T) {
	seq := patternBuffer(48, 48)
	par := snapshot(seq)
	PosterizeRGB(seq, 48, 48, 5, 1)
	PosterizeRGB(par, 48, 48, 5, 4)
	assertEqualBytes(t, par, seq)
}

// TestPosterizeLab_SingleCluster verifies that with one cluster every output
// pixel converges to the same color.
func TestPosterizeLab_SingleCluster(t *testing.T) {
	px := patternBuffer(8, 8)
	PosterizeLab(px, 8, 8, 1, rand.New(rand.NewPCG(1, 2)))

	r0, g0, b0 := px[0], px[1], px[2]
	for i := 4; i < len(px); i += 4 {
		if px[i] != r0 || px[i+1] != g0 || px[i+2] != b0 {
			t.Fatalf("pixel %d = (%d,%d,%d), want (%d,%d,%d)",
				i/4, px[i], px[i+1], px[i+2], r0, g0, b0)
		}
	}
}

// TestPosterizeLab_ReducesColors verifies the output palette has at most
// `levels` distinct colors.
func TestPosterizeLab_ReducesColors(t *testing.T) {
	px := patternBuffer(24, 24)
	const levels = 4
	PosterizeLab(px, 24, 24, levels, rand.New(rand.NewPCG(3, 4)))

	colors := map[[3]uint8]bool{}
	for i := 0; i < len(px); i += 4 {
		colors[[3]uint8{px[i], px[i+1], px[i+2]}] = true
	}
	if len(colors) > levels {
		t.Errorf("output has %d distinct colors, want at most %d", len(colors), levels)
	}
}

// TestPosterizeLab_SeededReproducible verifies identical seeds give identical
// output.
func TestPosterizeLab_SeededReproducible(t *testing.T) {
	a := patternBuffer(16, 16)
	b := snapshot(a)
	PosterizeLab(a, 16, 16, 6, rand.New(rand.NewPCG(9, 9)))
	PosterizeLab(b, 16, 16, 6, rand.New(rand.NewPCG(9, 9)))
	assertEqualBytes(t, a, b)
}

// TestPosterizeLab_AlphaUntouched verifies alpha passes through.
func TestPosterizeLab_AlphaUntouched(t *testing.T) {
	px := uniformBuffer(6, 6, 200, 40, 90, 201)
	PosterizeLab(px, 6, 6, 2, rand.New(rand.NewPCG(5, 6)))
	for i := 3; i < len(px); i += 4 {
		if px[i] != 201 {
			t.Fatalf("alpha modified at byte %d: %d", i, px[i])
		}
	}
}
