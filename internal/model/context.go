package model

// WaveRef is the slice of an active Money Wave that calculations need.
type WaveRef struct {
	ID         string
	Category   WaveCategory
	Multiplier float64
}

// EconomicContext is a read-only snapshot passed into every calculation.
type EconomicContext struct {
	CurrentWave      *WaveRef
	UserLevel        int
	UserReputation   float64
	PlatformActivity float64 // aggregate recent activity, 0.0 ~ 1.0
}

// ActionDescriptor describes one reward-earning action.
// Difficulty / Accuracy are optional: nil means "not applicable" and the
// corresponding multiplier stays at 1.0. Impact is recorded with the event
// but is not yet priced into the reward.
type ActionDescriptor struct {
	Type       RewardSource
	Difficulty *float64 // 1 ~ 10
	Accuracy   *float64 // 0.0 ~ 1.0
	Impact     *float64 // 1 ~ 10
	Context    map[string]any
}

// SpendRequest is a proposed PMC spend awaiting validation.
type SpendRequest struct {
	Purpose     SpendPurpose
	Amount      float64
	UserBalance float64
	UserLevel   int
}

// SpendResult is the outcome of validating a SpendRequest.
// Reason is human-readable and surfaced verbatim to the end user.
type SpendResult struct {
	Valid  bool
	Reason string
}
