package broadcast

import (
	"strings"
	"testing"
	"time"

	"PointWave/internal/model"
	"PointWave/internal/recorder"
	"PointWave/internal/wave"
)

func TestFormatAllocationReport(t *testing.T) {
	snaps := []*recorder.AllocationSnapshot{
		{Category: "local_economy", Share: 0.75, Multiplier: 1.5, Progress: 0.5, RevealRatio: 0.8, DisplayAmount: 6000},
		{Category: "social_cause", Share: 0.25, Multiplier: 1.0, Progress: 0.5, RevealRatio: 0.8, DisplayAmount: 2000},
	}
	report := FormatAllocationReport(snaps)

	for _, want := range []string{"local_economy", "social_cause", "6,000", "50%"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatAllocationReport_Empty(t *testing.T) {
	report := FormatAllocationReport(nil)
	if !strings.Contains(report, "no active waves") {
		t.Errorf("empty report = %q", report)
	}
}

func TestFormatDailySummary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w1, _ := wave.New("c", "a", "", 100, model.CategoryEducation, 1, 24, now)
	w1.Activate(now)
	w2, _ := wave.New("c", "b", "", 100, model.CategoryInnovation, 1, 24, now)
	w2.Cancel()

	summary := FormatDailySummary([]wave.Wave{*w1, *w2})
	for _, want := range []string{"active: 1", "cancelled: 1", "completed: 0"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
