package calculator

import (
	"math"
	"testing"
)

func TestComputeRevealRatio_QuietStart(t *testing.T) {
	r := ComputeRevealRatio(0, 0, 0)
	if r.ProgressAdjusted != 0 {
		t.Errorf("progressAdjusted = %v, want 0", r.ProgressAdjusted)
	}
	if r.Ratio != 0.5 {
		t.Errorf("ratio = %v, want 0.5 (half the pool visible at the top of the hour)", r.Ratio)
	}
}

func TestComputeRevealRatio_HourComplete(t *testing.T) {
	for _, participants := range []int{0, 500, 5000} {
		for _, games := range []int{0, 10, 100} {
			r := ComputeRevealRatio(1, participants, games)
			if math.Abs(r.ProgressAdjusted-1) > 1e-12 {
				t.Errorf("participants=%d games=%d: progressAdjusted = %v, want 1", participants, games, r.ProgressAdjusted)
			}
			if math.Abs(r.Ratio-1.0) > 1e-12 {
				t.Errorf("participants=%d games=%d: ratio = %v, want 1.0", participants, games, r.Ratio)
			}
		}
	}
}

func TestComputeRevealRatio_Bounds(t *testing.T) {
	inputs := []struct {
		progress     float64
		participants int
		games        int
	}{
		{-5, 0, 0},
		{0.25, 100, 5},
		{0.5, 2000, 20},
		{0.75, 99999, 9999},
		{2, 50, 1},
	}
	for _, in := range inputs {
		r := ComputeRevealRatio(in.progress, in.participants, in.games)
		if r.Ratio < 0.5 || r.Ratio > 1.0 {
			t.Errorf("ComputeRevealRatio(%v, %d, %d).Ratio = %v, out of [0.5, 1.0]",
				in.progress, in.participants, in.games, r.Ratio)
		}
		if r.ProgressAdjusted < 0 || r.ProgressAdjusted > 1 {
			t.Errorf("ComputeRevealRatio(%v, %d, %d).ProgressAdjusted = %v, out of [0, 1]",
				in.progress, in.participants, in.games, r.ProgressAdjusted)
		}
	}
}

func TestComputeRevealRatio_MonotonicInProgress(t *testing.T) {
	fixtures := []struct {
		participants int
		games        int
	}{
		{0, 0},
		{1000, 10},
		{2000, 20},
		{10000, 100},
	}
	for _, fx := range fixtures {
		prev := -1.0
		for step := 0; step <= 100; step++ {
			progress := float64(step) / 100
			r := ComputeRevealRatio(progress, fx.participants, fx.games)
			if r.Ratio < prev {
				t.Fatalf("participants=%d games=%d: ratio decreased at progress %.2f (%.6f < %.6f)",
					fx.participants, fx.games, progress, r.Ratio, prev)
			}
			prev = r.Ratio
		}
	}
}

func TestComputeRevealRatio_ActivityAcceleratesReveal(t *testing.T) {
	quiet := ComputeRevealRatio(0.5, 0, 0)
	busy := ComputeRevealRatio(0.5, 2000, 20)
	if busy.Ratio <= quiet.Ratio {
		t.Errorf("busy hour should reveal faster mid-window: busy=%.4f quiet=%.4f", busy.Ratio, quiet.Ratio)
	}
}
