package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/lib/pq"
)

// PostgresRecorder persists economy history to a Postgres database,
// for deployments where the platform already runs one.
type PostgresRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewPostgresRecorder connects to Postgres and ensures the schema.
func NewPostgresRecorder(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := &PostgresRecorder{db: db}
	if err := r.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Println("[INFO] postgres recorder connected")
	return r, nil
}

func (r *PostgresRecorder) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS earn_events (
			id         BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_id    TEXT,
			source     TEXT,
			amount     BIGINT,
			user_level INT,
			wave_id    TEXT,
			multiplier DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS spend_events (
			id         BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_id    TEXT,
			purpose    TEXT,
			amount     DOUBLE PRECISION,
			balance    DOUBLE PRECISION,
			user_level INT,
			valid      BOOLEAN,
			reason     TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS conversion_events (
			id                BIGSERIAL PRIMARY KEY,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			user_id           TEXT,
			pmp_amount        DOUBLE PRECISION,
			rate              DOUBLE PRECISION,
			pmc_amount        BIGINT,
			platform_activity DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS wave_history (
			id            BIGSERIAL PRIMARY KEY,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			wave_id       TEXT,
			event_type    TEXT,
			category      TEXT,
			amount_before DOUBLE PRECISION,
			amount_after  DOUBLE PRECISION,
			target_amount DOUBLE PRECISION,
			contributions INT,
			status        TEXT,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_wave_history_wave_id ON wave_history (wave_id)`,
		`CREATE TABLE IF NOT EXISTS allocation_snapshots (
			id             BIGSERIAL PRIMARY KEY,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			category       TEXT,
			count          INT,
			multiplier     DOUBLE PRECISION,
			share          DOUBLE PRECISION,
			progress       DOUBLE PRECISION,
			reveal_ratio   DOUBLE PRECISION,
			pool_total     DOUBLE PRECISION,
			display_amount DOUBLE PRECISION
		)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *PostgresRecorder) RecordEarn(evt *EarnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO earn_events
		(user_id, source, amount, user_level, wave_id, multiplier)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		evt.UserID, evt.Source, evt.Amount, evt.UserLevel, evt.WaveID, evt.Multiplier,
	)
	return err
}

func (r *PostgresRecorder) RecordSpend(evt *SpendEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO spend_events
		(user_id, purpose, amount, balance, user_level, valid, reason)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		evt.UserID, evt.Purpose, evt.Amount, evt.Balance, evt.UserLevel, evt.Valid, evt.Reason,
	)
	return err
}

func (r *PostgresRecorder) RecordConversion(evt *ConversionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO conversion_events
		(user_id, pmp_amount, rate, pmc_amount, platform_activity)
		VALUES ($1,$2,$3,$4,$5)`,
		evt.UserID, evt.PMPAmount, evt.Rate, evt.PMCAmount, evt.PlatformActivity,
	)
	return err
}

func (r *PostgresRecorder) RecordWaveEvent(evt *WaveEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO wave_history
		(wave_id, event_type, category, amount_before, amount_after,
		 target_amount, contributions, status, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		evt.WaveID, evt.EventType, evt.Category, evt.AmountBefore, evt.AmountAfter,
		evt.TargetAmount, evt.Contributions, evt.Status, evt.Note,
	)
	return err
}

func (r *PostgresRecorder) RecordAllocation(snap *AllocationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO allocation_snapshots
		(category, count, multiplier, share, progress, reveal_ratio, pool_total, display_amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		snap.Category, snap.Count, snap.Multiplier, snap.Share,
		snap.Progress, snap.RevealRatio, snap.PoolTotal, snap.DisplayAmount,
	)
	return err
}

func (r *PostgresRecorder) Close() error {
	log.Println("[INFO] closing postgres recorder")
	return r.db.Close()
}
