package model

// RewardSource identifies the platform action that earns PMP.
type RewardSource string

const (
	SourcePredictionSuccess       RewardSource = "prediction_success"
	SourcePredictionParticipation RewardSource = "prediction_participation"
	SourceContentCreation         RewardSource = "content_creation"
	SourceReferral                RewardSource = "referral"
	SourceInvestment              RewardSource = "investment"
	SourceDonation                RewardSource = "donation"
	SourceStreakBonus             RewardSource = "streak_bonus"
	SourceDailyBonus              RewardSource = "daily_bonus"
)

// SpendPurpose identifies what PMC is being spent on.
type SpendPurpose string

const (
	PurposePrediction SpendPurpose = "prediction"
	PurposeDonation   SpendPurpose = "donation"
	PurposeInvestment SpendPurpose = "investment"
)

// WaveCategory classifies a Money Wave's boost target.
type WaveCategory string

const (
	CategoryLocalEconomy WaveCategory = "local_economy"
	CategorySocialCause  WaveCategory = "social_cause"
	CategoryEducation    WaveCategory = "education"
	CategoryEnvironment  WaveCategory = "environment"
	CategoryInnovation   WaveCategory = "innovation"
)

// AllCategories lists every known wave category.
var AllCategories = []WaveCategory{
	CategoryLocalEconomy,
	CategorySocialCause,
	CategoryEducation,
	CategoryEnvironment,
	CategoryInnovation,
}
