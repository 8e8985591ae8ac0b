package calculator

import (
	"math"
	"testing"
)

func TestWeightedShare(t *testing.T) {
	counts := map[string]int{"A": 2, "B": 1}
	mults := map[string]float64{"A": 1.5, "B": 1}

	// weighted: A = 2×1.5 = 3, B = 1×1 = 1, total = 4
	if got := WeightedShare(counts, mults, "A"); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("share(A) = %v, want 0.75", got)
	}
	if got := WeightedShare(counts, mults, "B"); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("share(B) = %v, want 0.25", got)
	}
}

func TestWeightedShare_MissingMultiplierDefaultsToOne(t *testing.T) {
	counts := map[string]int{"A": 1, "B": 1}
	mults := map[string]float64{"A": 3}

	// A = 3, B = 1 (default), total = 4
	if got := WeightedShare(counts, mults, "B"); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("share(B) = %v, want 0.25", got)
	}
}

func TestWeightedShare_ZeroTotal(t *testing.T) {
	if got := WeightedShare(map[string]int{}, map[string]float64{}, "A"); got != 0 {
		t.Errorf("share over empty counts = %v, want 0", got)
	}
	if got := WeightedShare(map[string]int{"A": 0}, nil, "A"); got != 0 {
		t.Errorf("share with zero counts = %v, want 0", got)
	}
}

func TestWeightedShare_UnknownSelected(t *testing.T) {
	counts := map[string]int{"A": 5}
	if got := WeightedShare(counts, nil, "Z"); got != 0 {
		t.Errorf("share of absent category = %v, want 0", got)
	}
}

func TestDisplayAmount(t *testing.T) {
	got := DisplayAmount(10000, 0.75, 0.5)
	if math.Abs(got-3750) > 1e-9 {
		t.Errorf("DisplayAmount = %v, want 3750", got)
	}
}
