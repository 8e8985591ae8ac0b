package recorder

// EarnEvent records one PMP payout.
type EarnEvent struct {
	UserID     string
	Source     string
	Amount     int
	UserLevel  int
	WaveID     string // empty when no wave boosted the payout
	Multiplier float64
}

// SpendEvent records one spend validation, accepted or not.
type SpendEvent struct {
	UserID    string
	Purpose   string
	Amount    float64
	Balance   float64
	UserLevel int
	Valid     bool
	Reason    string
}

// ConversionEvent records one PMP→PMC conversion.
type ConversionEvent struct {
	UserID           string
	PMPAmount        float64
	Rate             float64
	PMCAmount        int
	PlatformActivity float64
}

// WaveEvent records a wave lifecycle transition or contribution.
type WaveEvent struct {
	WaveID        string
	EventType     string // "CREATED", "ACTIVATED", "CONTRIBUTION", "COMPLETED", "EXPIRED", "CANCELLED"
	Category      string
	AmountBefore  float64
	AmountAfter   float64
	TargetAmount  float64
	Contributions int
	Status        string
	Note          string
}

// AllocationSnapshot records one category's displayed pool amount at a
// reveal tick.
type AllocationSnapshot struct {
	Category      string
	Count         int
	Multiplier    float64
	Share         float64
	Progress      float64
	RevealRatio   float64
	PoolTotal     float64
	DisplayAmount float64
}

// Recorder persists historical economy data for analysis.
type Recorder interface {
	RecordEarn(evt *EarnEvent) error
	RecordSpend(evt *SpendEvent) error
	RecordConversion(evt *ConversionEvent) error
	RecordWaveEvent(evt *WaveEvent) error
	RecordAllocation(snap *AllocationSnapshot) error
	Close() error
}
