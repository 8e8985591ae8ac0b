package economy

import (
	"math"
	"testing"

	"PointWave/internal/model"
)

func ctxWithActivity(a float64) model.EconomicContext {
	return model.EconomicContext{UserLevel: 1, PlatformActivity: a}
}

func TestPMPToPMCRate_Endpoints(t *testing.T) {
	if got := PMPToPMCRate(ctxWithActivity(0)); got != 1.0 {
		t.Errorf("rate at zero activity = %v, want 1.0", got)
	}
	if got := PMPToPMCRate(ctxWithActivity(1)); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("rate at full activity = %v, want 0.8", got)
	}
}

func TestPMPToPMCRate_BoundsAndMonotonicity(t *testing.T) {
	prev := math.Inf(1)
	for a := -0.5; a <= 1.5; a += 0.1 {
		got := PMPToPMCRate(ctxWithActivity(a))
		if got < 0.5 || got > 1.0 {
			t.Errorf("rate at activity %v = %v, out of [0.5, 1.0]", a, got)
		}
		if got > prev {
			t.Errorf("rate increased at activity %v: %v > %v", a, got, prev)
		}
		prev = got
	}
}

func TestConvertPMPToPMC_Floored(t *testing.T) {
	// activity 0.5 → rate 0.9; 105 × 0.9 = 94.5 → 94
	got := ConvertPMPToPMC(105, ctxWithActivity(0.5))
	if got != 94 {
		t.Errorf("converted = %d, want 94 (floored)", got)
	}
}

func TestConvertPMPToPMC_NonPositiveAmount(t *testing.T) {
	if got := ConvertPMPToPMC(0, ctxWithActivity(0)); got != 0 {
		t.Errorf("converting 0 PMP = %d, want 0", got)
	}
	if got := ConvertPMPToPMC(-10, ctxWithActivity(0)); got != 0 {
		t.Errorf("converting negative PMP = %d, want 0", got)
	}
}
