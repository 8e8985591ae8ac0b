package engine

import (
	"log"

	"PointWave/internal/economy"
	"PointWave/internal/model"
	"PointWave/internal/recorder"
	"PointWave/internal/wave"
)

// Facade is the single seam the rest of the application calls into for
// the four economy operations: earn, spend, convert, and wave lifecycle.
// It delegates to the calculators and the wave manager and records each
// outcome; it has no economic logic of its own. Construct one per
// process with its dependencies passed in.
type Facade struct {
	waves *wave.Manager
	rec   recorder.Recorder
}

// New creates a Facade.
func New(waves *wave.Manager, rec recorder.Recorder) *Facade {
	return &Facade{waves: waves, rec: rec}
}

// Waves exposes the wave manager for read-side callers (row sources,
// reporting).
func (f *Facade) Waves() *wave.Manager {
	return f.waves
}

// ContextFor assembles the calculation snapshot for a user, resolving
// the active wave for the given category from the manager.
func (f *Facade) ContextFor(userLevel int, reputation, platformActivity float64, category model.WaveCategory) model.EconomicContext {
	return model.EconomicContext{
		CurrentWave:      f.waves.ActiveWaveRef(category),
		UserLevel:        userLevel,
		UserReputation:   reputation,
		PlatformActivity: platformActivity,
	}
}

// Earn computes the PMP payout for an action and records it.
func (f *Facade) Earn(userID string, action model.ActionDescriptor, ctx model.EconomicContext) int {
	amount := economy.CalculateReward(action, ctx)

	evt := &recorder.EarnEvent{
		UserID:     userID,
		Source:     string(action.Type),
		Amount:     amount,
		UserLevel:  ctx.UserLevel,
		Multiplier: 1.0,
	}
	if ctx.CurrentWave != nil {
		evt.WaveID = ctx.CurrentWave.ID
		evt.Multiplier = ctx.CurrentWave.Multiplier
	}
	if err := f.rec.RecordEarn(evt); err != nil {
		log.Printf("[ERROR] record earn: %v", err)
	}
	return amount
}

// ValidateSpend checks a proposed PMC spend and records the outcome,
// rejections included.
func (f *Facade) ValidateSpend(userID string, req model.SpendRequest) model.SpendResult {
	result := economy.ValidateSpend(req)

	if err := f.rec.RecordSpend(&recorder.SpendEvent{
		UserID:    userID,
		Purpose:   string(req.Purpose),
		Amount:    req.Amount,
		Balance:   req.UserBalance,
		UserLevel: req.UserLevel,
		Valid:     result.Valid,
		Reason:    result.Reason,
	}); err != nil {
		log.Printf("[ERROR] record spend: %v", err)
	}
	return result
}

// ConversionRate returns the current PMP→PMC rate.
func (f *Facade) ConversionRate(ctx model.EconomicContext) float64 {
	return economy.PMPToPMCRate(ctx)
}

// Convert exchanges PMP for PMC at the current rate and records it.
// The caller must have verified the PMP balance.
func (f *Facade) Convert(userID string, pmpAmount float64, ctx model.EconomicContext) int {
	rate := economy.PMPToPMCRate(ctx)
	pmc := economy.ConvertPMPToPMC(pmpAmount, ctx)

	if err := f.rec.RecordConversion(&recorder.ConversionEvent{
		UserID:           userID,
		PMPAmount:        pmpAmount,
		Rate:             rate,
		PMCAmount:        pmc,
		PlatformActivity: ctx.PlatformActivity,
	}); err != nil {
		log.Printf("[ERROR] record conversion: %v", err)
	}
	return pmc
}

// CreateWave registers a pending wave.
func (f *Facade) CreateWave(creatorID, title, description string, targetAmount float64, category model.WaveCategory, multiplier, durationHours float64) (wave.Wave, error) {
	w, err := f.waves.Create(creatorID, title, description, targetAmount, category, multiplier, durationHours)
	if err != nil {
		return wave.Wave{}, err
	}
	f.recordWaveEvent(&w, "CREATED", w.CurrentAmount, "wave created")
	return w, nil
}

// ActivateWave starts a pending wave.
func (f *Facade) ActivateWave(id string) (wave.Wave, error) {
	w, err := f.waves.Activate(id)
	if err != nil {
		return wave.Wave{}, err
	}
	f.recordWaveEvent(&w, "ACTIVATED", w.CurrentAmount, "wave activated")
	return w, nil
}

// Contribute adds to an active wave and records the contribution; a
// completing contribution additionally records the COMPLETED transition.
func (f *Facade) Contribute(id string, amount float64, contributorID string) (wave.Wave, error) {
	w, err := f.waves.Contribute(id, amount, contributorID)
	if err != nil {
		return wave.Wave{}, err
	}
	f.recordWaveEvent(&w, "CONTRIBUTION", w.CurrentAmount-amount, "contribution by "+contributorID)
	if w.Status == wave.StatusCompleted {
		f.recordWaveEvent(&w, "COMPLETED", w.CurrentAmount, "target reached")
	}
	return w, nil
}

// CancelWave terminates a non-terminal wave.
func (f *Facade) CancelWave(id string) (wave.Wave, error) {
	w, err := f.waves.Cancel(id)
	if err != nil {
		return wave.Wave{}, err
	}
	f.recordWaveEvent(&w, "CANCELLED", w.CurrentAmount, "cancelled by host")
	return w, nil
}

// SweepExpired expires overdue waves and records each transition.
func (f *Facade) SweepExpired() []wave.Wave {
	expired := f.waves.SweepExpired()
	for i := range expired {
		f.recordWaveEvent(&expired[i], "EXPIRED", expired[i].CurrentAmount, "window elapsed")
	}
	return expired
}

func (f *Facade) recordWaveEvent(w *wave.Wave, eventType string, amountBefore float64, note string) {
	if err := f.rec.RecordWaveEvent(&recorder.WaveEvent{
		WaveID:        w.ID,
		EventType:     eventType,
		Category:      string(w.Category),
		AmountBefore:  amountBefore,
		AmountAfter:   w.CurrentAmount,
		TargetAmount:  w.TargetAmount,
		Contributions: w.ContributionCount,
		Status:        string(w.Status),
		Note:          note,
	}); err != nil {
		log.Printf("[ERROR] record wave event: %v", err)
	}
}
