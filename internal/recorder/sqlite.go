package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists economy history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the engine writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS earn_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			user_id    TEXT,
			source     TEXT,
			amount     INTEGER,
			user_level INTEGER,
			wave_id    TEXT,
			multiplier REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_earn_ts ON earn_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS spend_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			user_id    TEXT,
			purpose    TEXT,
			amount     REAL,
			balance    REAL,
			user_level INTEGER,
			valid      INTEGER,
			reason     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_spend_ts ON spend_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS conversion_events (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			user_id           TEXT,
			pmp_amount        REAL,
			rate              REAL,
			pmc_amount        INTEGER,
			platform_activity REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversion_ts ON conversion_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS wave_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			wave_id       TEXT,
			event_type    TEXT,
			category      TEXT,
			amount_before REAL,
			amount_after  REAL,
			target_amount REAL,
			contributions INTEGER,
			status        TEXT,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_wave_ts ON wave_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_wave_id ON wave_history(wave_id)`,

		`CREATE TABLE IF NOT EXISTS allocation_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			category       TEXT,
			count          INTEGER,
			multiplier     REAL,
			share          REAL,
			progress       REAL,
			reveal_ratio   REAL,
			pool_total     REAL,
			display_amount REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alloc_ts ON allocation_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEarn(evt *EarnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO earn_events
		(timestamp, user_id, source, amount, user_level, wave_id, multiplier)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.UserID, evt.Source, evt.Amount,
		evt.UserLevel, evt.WaveID, evt.Multiplier,
	)
	return err
}

func (r *SQLiteRecorder) RecordSpend(evt *SpendEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	valid := 0
	if evt.Valid {
		valid = 1
	}
	_, err := r.db.Exec(`INSERT INTO spend_events
		(timestamp, user_id, purpose, amount, balance, user_level, valid, reason)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.UserID, evt.Purpose, evt.Amount,
		evt.Balance, evt.UserLevel, valid, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) RecordConversion(evt *ConversionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO conversion_events
		(timestamp, user_id, pmp_amount, rate, pmc_amount, platform_activity)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.UserID, evt.PMPAmount, evt.Rate,
		evt.PMCAmount, evt.PlatformActivity,
	)
	return err
}

func (r *SQLiteRecorder) RecordWaveEvent(evt *WaveEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO wave_history
		(timestamp, wave_id, event_type, category, amount_before, amount_after,
		 target_amount, contributions, status, note)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.WaveID, evt.EventType, evt.Category,
		evt.AmountBefore, evt.AmountAfter, evt.TargetAmount,
		evt.Contributions, evt.Status, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordAllocation(snap *AllocationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO allocation_snapshots
		(timestamp, category, count, multiplier, share, progress,
		 reveal_ratio, pool_total, display_amount)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Category, snap.Count, snap.Multiplier,
		snap.Share, snap.Progress, snap.RevealRatio,
		snap.PoolTotal, snap.DisplayAmount,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
