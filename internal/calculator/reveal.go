package calculator

import "math"

// Reveal is the output of ComputeRevealRatio.
type Reveal struct {
	ProgressAdjusted float64
	Ratio            float64 // 0.5 ~ 1.0
}

// Saturation targets for the activity boost blend.
const (
	participantTarget = 2000.0
	activeGamesTarget = 20.0
)

// ComputeRevealRatio computes how much of the hourly pool value is
// visible at the given progress through the hour.
//
// The ratio always starts at 0.5 at the top of the hour and rises
// monotonically to 1.0 as the hour completes. Platform activity — a
// 60/40 blend of participant count and active game count, each
// saturating at its own target — steepens the ease-out curve so busy
// hours reveal their final value faster.
func ComputeRevealRatio(progress float64, participantTotal, totalActiveGames int) Reveal {
	activityBoost := Clamp01(
		0.6*math.Min(1, float64(participantTotal)/participantTarget) +
			0.4*math.Min(1, float64(totalActiveGames)/activeGamesTarget))

	progressClamped := Clamp01(progress)
	progressAdjusted := 1 - math.Pow(1-progressClamped, 1+activityBoost*2)

	return Reveal{
		ProgressAdjusted: progressAdjusted,
		Ratio:            0.5 + 0.5*progressAdjusted,
	}
}
