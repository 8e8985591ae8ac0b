package economy

import (
	"math"

	"PointWave/internal/calculator"
	"PointWave/internal/model"
)

// PMPToPMCRate returns the current PMP→PMC exchange rate in [0.5, 1.0].
// Higher aggregate platform activity yields a worse rate — a scarcity
// lever, floor-capped at 0.5 so users never lose more than half the
// nominal value.
func PMPToPMCRate(ctx model.EconomicContext) float64 {
	activity := calculator.Clamp01(ctx.PlatformActivity)
	return math.Max(0.5, 1.0*(1-activity*0.2))
}

// ConvertPMPToPMC converts a PMP amount at the current rate, floored.
// The caller must verify sufficient PMP balance before invoking this;
// the engine does not check balances.
func ConvertPMPToPMC(pmpAmount float64, ctx model.EconomicContext) int {
	if pmpAmount <= 0 {
		return 0
	}
	return int(math.Floor(pmpAmount * PMPToPMCRate(ctx)))
}
