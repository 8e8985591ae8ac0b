package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/robfig/cron/v3"

	"PointWave/internal/broadcast"
	"PointWave/internal/calculator"
	"PointWave/internal/engine"
	"PointWave/internal/recorder"
)

// RowSource supplies the untyped category rows and activity counts the
// reveal task feeds into the allocation math. In production this is
// backed by the platform database; the wave manager implements it
// in-process.
type RowSource interface {
	CategoryRows() []map[string]any
	ParticipantTotal() int
	ActiveGameCount() int
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron        *cron.Cron
	Engine      *engine.Facade
	Rows        RowSource
	Recorder    recorder.Recorder
	Broadcaster broadcast.Broadcaster
	HourlyPool  float64
	Ctx         context.Context

	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Facade, rows RowSource, rec recorder.Recorder, bc broadcast.Broadcaster, hourlyPool float64) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Engine:      eng,
		Rows:        rows,
		Recorder:    rec,
		Broadcaster: bc,
		HourlyPool:  hourlyPool,
		Ctx:         ctx,
		now:         time.Now,
	}
}

// RegisterAll registers the reveal, expiry-sweep, and daily-summary tasks.
func (s *Scheduler) RegisterAll(revealCron, sweepCron, summaryCron string) error {
	if _, err := s.Cron.AddFunc(revealCron, s.revealTask); err != nil {
		return fmt.Errorf("register reveal task: %w", err)
	}
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	if _, err := s.Cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRevealNow executes the reveal task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunRevealNow() {
	s.revealTask()
}

// revealTask recomputes every category's displayed wave amount for the
// current point in the hour, records the snapshots, and broadcasts the
// report.
func (s *Scheduler) revealTask() {
	progress := HourProgress(s.now())
	snaps := ComputeAllocations(
		s.Rows.CategoryRows(),
		s.HourlyPool,
		progress,
		s.Rows.ParticipantTotal(),
		s.Rows.ActiveGameCount(),
	)

	for _, snap := range snaps {
		if err := s.Recorder.RecordAllocation(snap); err != nil {
			log.Printf("[ERROR] record allocation: %v", err)
		}
	}
	s.tryBroadcast(broadcast.FormatAllocationReport(snaps))
}

// sweepTask expires overdue waves.
func (s *Scheduler) sweepTask() {
	expired := s.Engine.SweepExpired()
	for _, w := range expired {
		log.Printf("[INFO] wave expired: %s (%s)", w.ID, w.Category)
		s.tryBroadcast(broadcast.FormatWaveStatus(w))
	}
}

// summaryTask broadcasts the daily wave roundup.
func (s *Scheduler) summaryTask() {
	log.Println("[INFO] running daily summary")
	s.tryBroadcast(broadcast.FormatDailySummary(s.Engine.Waves().Snapshot()))
}

func (s *Scheduler) tryBroadcast(text string) {
	if err := s.Broadcaster.Broadcast(text); err != nil {
		log.Printf("[ERROR] broadcast: %v", err)
	}
}

// HourProgress returns the elapsed fraction of t's hour window.
func HourProgress(t time.Time) float64 {
	return float64(t.Minute()*60+t.Second()) / 3600
}

// ComputeAllocations runs the full weighted split for one reveal tick:
// count rows per category, build the multiplier table, compute the
// reveal ratio, and derive each category's displayed pool amount.
// Categories are returned in stable (sorted) order.
func ComputeAllocations(rows []map[string]any, hourlyPool, progress float64, participantTotal, totalActiveGames int) []*recorder.AllocationSnapshot {
	counts, _ := calculator.CountCategories(rows)
	multipliers := calculator.BuildMultiplierByCategory(rows)
	reveal := calculator.ComputeRevealRatio(progress, participantTotal, totalActiveGames)

	categories := make([]string, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	snaps := make([]*recorder.AllocationSnapshot, 0, len(categories))
	for _, cat := range categories {
		share := calculator.WeightedShare(counts, multipliers, cat)
		mult, ok := multipliers[cat]
		if !ok {
			mult = 1
		}
		snaps = append(snaps, &recorder.AllocationSnapshot{
			Category:      cat,
			Count:         counts[cat],
			Multiplier:    mult,
			Share:         share,
			Progress:      calculator.Clamp01(progress),
			RevealRatio:   reveal.Ratio,
			PoolTotal:     hourlyPool,
			DisplayAmount: calculator.DisplayAmount(hourlyPool, share, reveal.Ratio),
		})
	}
	return snaps
}
