package wave

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"PointWave/internal/model"
)

// Status is a wave's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Transition contract violations. These indicate a caller bug, not a
// recoverable user error.
var (
	ErrNotPending = errors.New("wave is not pending")
	ErrNotActive  = errors.New("wave is not active")
	ErrTerminal   = errors.New("wave is in a terminal state")
)

// Wave is one shared, time-boxed reward pool. Identity and metadata are
// immutable after creation; CurrentAmount only increases until a
// terminal status. The struct carries no locking of its own — the
// Manager serializes mutations per wave.
type Wave struct {
	ID          string `json:"id"`
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`

	Category   model.WaveCategory `json:"category"`
	Multiplier float64            `json:"multiplier"` // >= 1, the boost granted while active

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    Status    `json:"status"`

	// ContributionCount increments once per AddContribution call, not
	// per distinct contributor: the same user contributing twice counts
	// twice. Named to keep that semantic visible.
	ContributionCount int `json:"contribution_count"`

	CreatedAt time.Time `json:"created_at"`
}

// New constructs a pending wave ending durationHours after now.
func New(creatorID, title, description string, targetAmount float64, category model.WaveCategory, multiplier, durationHours float64, now time.Time) (*Wave, error) {
	if targetAmount <= 0 {
		return nil, fmt.Errorf("target amount must be positive, got %.2f", targetAmount)
	}
	if durationHours <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %.2f hours", durationHours)
	}
	if multiplier < 1 {
		multiplier = 1
	}
	return &Wave{
		ID:           uuid.NewString(),
		CreatorID:    creatorID,
		Title:        title,
		Description:  description,
		TargetAmount: targetAmount,
		Category:     category,
		Multiplier:   multiplier,
		StartTime:    now,
		EndTime:      now.Add(time.Duration(durationHours * float64(time.Hour))),
		Status:       StatusPending,
		CreatedAt:    now,
	}, nil
}

// Activate moves a pending wave to active and restarts its clock.
func (w *Wave) Activate(now time.Time) error {
	if w.Status != StatusPending {
		return fmt.Errorf("activate wave %s in status %s: %w", w.ID, w.Status, ErrNotPending)
	}
	w.Status = StatusActive
	w.StartTime = now
	return nil
}

// AddContribution adds amount to the pool and counts one contribution.
// Legal only while active. Reaching the target completes the wave.
func (w *Wave) AddContribution(amount float64, contributorID string) error {
	if w.Status != StatusActive {
		return fmt.Errorf("contribute to wave %s in status %s: %w", w.ID, w.Status, ErrNotActive)
	}
	if amount <= 0 {
		return fmt.Errorf("contribution amount must be positive, got %.2f", amount)
	}

	// contributorID is recorded by the host; contributions are not
	// deduplicated here, so the same user contributing twice counts twice.
	w.CurrentAmount += amount
	w.ContributionCount++

	if w.CurrentAmount >= w.TargetAmount {
		w.Status = StatusCompleted
	}
	return nil
}

// CheckExpiration expires an active wave whose window has elapsed.
// Idempotent; safe to call repeatedly. Returns true if the wave
// transitioned on this call.
func (w *Wave) CheckExpiration(now time.Time) bool {
	if w.Status == StatusActive && now.After(w.EndTime) {
		w.Status = StatusExpired
		return true
	}
	return false
}

// Cancel terminates a wave from any non-terminal state.
func (w *Wave) Cancel() error {
	if w.IsTerminal() {
		return fmt.Errorf("cancel wave %s in status %s: %w", w.ID, w.Status, ErrTerminal)
	}
	w.Status = StatusCancelled
	return nil
}

// IsTerminal reports whether no further mutation is permitted.
func (w *Wave) IsTerminal() bool {
	return w.Status == StatusCompleted || w.Status == StatusExpired || w.Status == StatusCancelled
}

// IsActive reports whether the wave is active and within its window.
func (w *Wave) IsActive(now time.Time) bool {
	return w.Status == StatusActive && !now.After(w.EndTime)
}

// CompletionPercentage returns progress toward the target, capped at 100.
func (w *Wave) CompletionPercentage() float64 {
	return math.Min(100, w.CurrentAmount/w.TargetAmount*100)
}

// EconomicMultiplier is the boost the wave grants right now: the base
// multiplier plus up to a 20% bonus as the wave approaches its target.
// Inactive waves grant no boost.
func (w *Wave) EconomicMultiplier(now time.Time) float64 {
	if !w.IsActive(now) {
		return 1.0
	}
	return w.Multiplier + (w.CompletionPercentage()/100)*0.2
}

// Ref returns the calculation-facing view of this wave.
func (w *Wave) Ref() *model.WaveRef {
	return &model.WaveRef{ID: w.ID, Category: w.Category, Multiplier: w.Multiplier}
}
