package wave

import (
	"fmt"
	"log"
	"sync"
	"time"

	"PointWave/internal/model"
)

// Manager owns every wave in the process and serializes mutations, the
// single-writer host the entity's contract assumes. State is snapshotted
// to a JSON file after each mutation so restarts pick up where they left
// off.
type Manager struct {
	mu       sync.Mutex
	waves    map[string]*Wave
	filePath string
	now      func() time.Time
}

// NewManager creates a Manager, restoring saved waves from disk.
func NewManager(filePath string) (*Manager, error) {
	saved, err := LoadWaves(filePath)
	if err != nil {
		return nil, fmt.Errorf("load wave state: %w", err)
	}
	waves := make(map[string]*Wave, len(saved))
	for _, w := range saved {
		waves[w.ID] = w
	}
	return &Manager{waves: waves, filePath: filePath, now: time.Now}, nil
}

// Create registers a new pending wave and returns its snapshot.
func (m *Manager) Create(creatorID, title, description string, targetAmount float64, category model.WaveCategory, multiplier, durationHours float64) (Wave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := New(creatorID, title, description, targetAmount, category, multiplier, durationHours, m.now())
	if err != nil {
		return Wave{}, err
	}
	m.waves[w.ID] = w
	m.save()
	return *w, nil
}

// Activate transitions a pending wave to active.
func (m *Manager) Activate(id string) (Wave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.waves[id]
	if !ok {
		return Wave{}, fmt.Errorf("wave %s not found", id)
	}
	if err := w.Activate(m.now()); err != nil {
		return Wave{}, err
	}
	m.save()
	return *w, nil
}

// Contribute adds to an active wave's pool. The returned snapshot
// reflects the post-contribution state, including a completed status if
// this contribution reached the target.
func (m *Manager) Contribute(id string, amount float64, contributorID string) (Wave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.waves[id]
	if !ok {
		return Wave{}, fmt.Errorf("wave %s not found", id)
	}
	if err := w.AddContribution(amount, contributorID); err != nil {
		return Wave{}, err
	}
	m.save()
	return *w, nil
}

// Cancel terminates a non-terminal wave.
func (m *Manager) Cancel(id string) (Wave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.waves[id]
	if !ok {
		return Wave{}, fmt.Errorf("wave %s not found", id)
	}
	if err := w.Cancel(); err != nil {
		return Wave{}, err
	}
	m.save()
	return *w, nil
}

// Get returns a snapshot of one wave.
func (m *Manager) Get(id string) (Wave, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.waves[id]
	if !ok {
		return Wave{}, false
	}
	return *w, true
}

// SweepExpired runs the pull-based staleness check over every wave and
// returns the ones that expired on this sweep.
func (m *Manager) SweepExpired() []Wave {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var expired []Wave
	for _, w := range m.waves {
		if w.CheckExpiration(now) {
			expired = append(expired, *w)
		}
	}
	if len(expired) > 0 {
		m.save()
	}
	return expired
}

// ActiveWaveRef returns the calculation view of the active wave for a
// category, or nil when none is running.
func (m *Manager) ActiveWaveRef(category model.WaveCategory) *model.WaveRef {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for _, w := range m.waves {
		if w.Category == category && w.IsActive(now) {
			ref := w.Ref()
			ref.Multiplier = w.EconomicMultiplier(now)
			return ref
		}
	}
	return nil
}

// CategoryRows renders the active waves as untyped rows, the same shape
// the allocation math receives from the database in production.
func (m *Manager) CategoryRows() []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var rows []map[string]any
	for _, w := range m.waves {
		if !w.IsActive(now) {
			continue
		}
		rows = append(rows, map[string]any{
			"category":          string(w.Category),
			"reward_multiplier": w.Multiplier,
		})
	}
	return rows
}

// ParticipantTotal sums contribution counts across active waves.
func (m *Manager) ParticipantTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	total := 0
	for _, w := range m.waves {
		if w.IsActive(now) {
			total += w.ContributionCount
		}
	}
	return total
}

// ActiveGameCount stands in for the platform's running-game count at
// this seam: each active wave is counted as one game.
func (m *Manager) ActiveGameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	count := 0
	for _, w := range m.waves {
		if w.IsActive(now) {
			count++
		}
	}
	return count
}

// Snapshot returns copies of every wave, for reporting.
func (m *Manager) Snapshot() []Wave {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Wave, 0, len(m.waves))
	for _, w := range m.waves {
		out = append(out, *w)
	}
	return out
}

// save must be called with m.mu held.
func (m *Manager) save() {
	if m.filePath == "" {
		return
	}
	waves := make([]*Wave, 0, len(m.waves))
	for _, w := range m.waves {
		waves = append(waves, w)
	}
	if err := SaveWaves(m.filePath, waves); err != nil {
		log.Printf("[ERROR] failed to save wave state: %v", err)
	}
}
