package broadcast

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"PointWave/internal/recorder"
	"PointWave/internal/wave"
)

// FormatAllocationReport renders one reveal tick across categories.
func FormatAllocationReport(snaps []*recorder.AllocationSnapshot) string {
	if len(snaps) == 0 {
		return "💰 Money Wave: no active waves this hour"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("💰 Money Wave reveal | %.0f%% of hour | ratio %.2f\n",
		snaps[0].Progress*100, snaps[0].RevealRatio))
	for _, s := range snaps {
		b.WriteString(fmt.Sprintf("• %s: %s PMP (share %.0f%%, ×%.2f)\n",
			s.Category, humanize.Commaf(s.DisplayAmount), s.Share*100, s.Multiplier))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWaveStatus renders one wave for status messages.
func FormatWaveStatus(w wave.Wave) string {
	return fmt.Sprintf("🌊 %s [%s] %s/%s PMP (%.0f%%) | %d contributions | %s",
		w.Title, w.Category,
		humanize.Commaf(w.CurrentAmount), humanize.Commaf(w.TargetAmount),
		w.CompletionPercentage(), w.ContributionCount, w.Status)
}

// FormatDailySummary renders the end-of-day wave roundup.
func FormatDailySummary(waves []wave.Wave) string {
	var active, completed, expired, cancelled int
	var pooled float64
	for _, w := range waves {
		pooled += w.CurrentAmount
		switch w.Status {
		case wave.StatusActive:
			active++
		case wave.StatusCompleted:
			completed++
		case wave.StatusExpired:
			expired++
		case wave.StatusCancelled:
			cancelled++
		}
	}
	return fmt.Sprintf("📊 Daily wave summary\nactive: %d | completed: %d | expired: %d | cancelled: %d\ntotal pooled: %s PMP",
		active, completed, expired, cancelled, humanize.Commaf(pooled))
}
