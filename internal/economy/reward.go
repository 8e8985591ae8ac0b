package economy

import (
	"math"

	"PointWave/internal/model"
)

// baseRewards maps each action type to its base PMP payout.
var baseRewards = map[model.RewardSource]float64{
	model.SourcePredictionSuccess:       50,
	model.SourcePredictionParticipation: 15,
	model.SourceContentCreation:         30,
	model.SourceReferral:                40,
	model.SourceInvestment:              25,
	model.SourceDonation:                20,
	model.SourceStreakBonus:             10,
	model.SourceDailyBonus:              5,
}

// fallbackBaseReward is paid for action types not in the table, so a new
// action type added elsewhere in the platform degrades gracefully instead
// of failing the reward path.
const fallbackBaseReward = 10.0

// CalculateReward computes the PMP earned for an action:
// floor(base × difficulty × accuracy × level × wave). The result is
// truncated, never rounded, so the platform never over-pays.
func CalculateReward(action model.ActionDescriptor, ctx model.EconomicContext) int {
	base, ok := baseRewards[action.Type]
	if !ok {
		base = fallbackBaseReward
	}

	reward := base *
		difficultyMultiplier(action.Difficulty) *
		accuracyMultiplier(action.Accuracy) *
		levelMultiplier(ctx.UserLevel) *
		waveMultiplier(ctx.CurrentWave)

	if reward < 0 {
		return 0
	}
	return int(math.Floor(reward))
}

// difficultyMultiplier scales around a neutral difficulty of 5:
// ±10% per step, clamped to [0.5, 3.0]. Absent difficulty is neutral.
func difficultyMultiplier(difficulty *float64) float64 {
	if difficulty == nil {
		return 1.0
	}
	return clampRange(1+(*difficulty-5)*0.1, 0.5, 3.0)
}

// accuracyMultiplier maps accuracy to [0.1, 2.0]. Perfect accuracy yields
// exactly 2×; near-zero accuracy is floored at 0.1× so a participant
// always earns something for trying.
func accuracyMultiplier(accuracy *float64) float64 {
	if accuracy == nil {
		return 1.0
	}
	return clampRange(*accuracy*2, 0.1, 2.0)
}

// levelMultiplier grants 5% per level above 1, never below 1×.
func levelMultiplier(level int) float64 {
	return math.Max(1.0, 1+float64(level-1)*0.05)
}

func waveMultiplier(wave *model.WaveRef) float64 {
	if wave == nil {
		return 1.0
	}
	return wave.Multiplier
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
