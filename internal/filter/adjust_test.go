package filter

import "testing"

// TestAdjust_GrayInvariant verifies neutral gray pixels are fixed points:
// vibrance has no distance-from-gray to amplify and saturation scales a
// zero chroma.
func TestAdjust_GrayInvariant(t *testing.T) {
	px := uniformBuffer(8, 8, 128, 128, 128, 255)
	want := snapshot(px)
	Adjust(px, 8, 8, 1.5, 1.3, 1)
	assertEqualBytes(t, px, want)
}

// TestAdjust_NeutralParamsIdentity verifies vibrance 0 and saturation 1
// leave any buffer unchanged.
func TestAdjust_NeutralParamsIdentity(t *testing.T) {
	px := patternBuffer(16, 16)
	want := snapshot(px)
	Adjust(px, 16, 16, 0, 1, 1)
	assertEqualBytes(t, px, want)
}

// TestAdjust_SaturationPushesFromGray verifies saturation > 1 moves channels
// away from the perceptual gray.
func TestAdjust_SaturationPushesFromGray(t *testing.T) {
	px := uniformBuffer(1, 1, 200, 100, 50, 255)
	Adjust(px, 1, 1, 0, 1.5, 1)

	// gray = 0.2989*200 + 0.5870*100 + 0.1140*50 = 124.18
	// r: 124.18 + (200-124.18)*1.5 = 237.9 -> 238
	// b: 124.18 + (50-124.18)*1.5 = 12.9 -> 13
	if px[0] != 238 {
		t.Errorf("red: got %d, want 238", px[0])
	}
	if px[2] != 13 {
		t.Errorf("blue: got %d, want 13", px[2])
	}
}

// TestAdjust_VibrancePullsTowardMax verifies the dominant channel stays put
// while the others move toward it.
func TestAdjust_VibrancePullsTowardMax(t *testing.T) {
	px := uniformBuffer(1, 1, 200, 100, 50, 255)
	Adjust(px, 1, 1, 1.0, 1.0, 1)

	if px[0] != 200 {
		t.Errorf("max channel moved: got %d, want 200", px[0])
	}
	if px[1] <= 100 {
		t.Errorf("green not pulled up: got %d", px[1])
	}
	if px[2] <= 50 {
		t.Errorf("blue not pulled up: got %d", px[2])
	}
}

// TestAdjust_AlphaUntouched verifies alpha passes through.
func TestAdjust_AlphaUntouched(t *testing.T) {
	px := uniformBuffer(4, 4, 30, 60, 90, 77)
	Adjust(px, 4, 4, 1.2, 1.1, 1)
	for i := 3; i < len(px); i += 4 {
		if px[i] != 77 {
			t.Fatalf("alpha modified at byte %d: %d", i, px[i])
		}
	}
}

// TestAdjust_ParallelMatchesSequential verifies fan-out determinism.
func TestAdjust_ParallelMatchesSequential(t *testing.T) {
	seq := patternBuffer(64, 64)
	par := snapshot(seq)
	Adjust(seq, 64, 64, 1.0, 1.1, 1)
	Adjust(par, 64, 64, 1.0, 1.1, 4)
	assertEqualBytes(t, par, seq)
}
