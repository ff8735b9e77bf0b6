package journal

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// defaultKeep caps how many fetch records are retained.
const defaultKeep = 1000

// FetchRecord is one completed upstream fetch cycle.
type FetchRecord struct {
	ID         int64  `json:"id"`
	FetchedAt  string `json:"fetched_at"`
	Days       int    `json:"days"`
	Monitors   int    `json:"monitors"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// Journal records upstream fetch outcomes in sqlite for operational
// visibility. A nil *Journal is valid and drops every write, so callers
// need no guards when journaling is disabled.
type Journal struct {
	db   *sql.DB
	keep int
}

// Open opens (or creates) the journal database at path
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	j := &Journal{db: db, keep: defaultKeep}
	if err := j.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) ensureSchema() error {
	_, err := j.db.Exec(`
CREATE TABLE IF NOT EXISTS fetches (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  fetched_at TEXT NOT NULL,
  days INTEGER NOT NULL,
  monitors INTEGER NOT NULL,
  duration_ms INTEGER NOT NULL,
  error TEXT
);
CREATE INDEX IF NOT EXISTS idx_fetches_fetched ON fetches(fetched_at);
`)
	return err
}

// Close closes the underlying database
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// Record stores the outcome of one fetch cycle and prunes old entries
func (j *Journal) Record(days, monitors int, took time.Duration, fetchErr error) error {
	if j == nil {
		return nil
	}

	errMsg := ""
	if fetchErr != nil {
		errMsg = fetchErr.Error()
	}

	_, err := j.db.Exec(`INSERT INTO fetches (fetched_at, days, monitors, duration_ms, error)
		VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), days, monitors, took.Milliseconds(), errMsg)
	if err != nil {
		return err
	}

	return j.prune()
}

// Recent returns the latest n fetch records, newest first
func (j *Journal) Recent(n int) ([]FetchRecord, error) {
	if j == nil {
		return nil, nil
	}

	rows, err := j.db.Query(`SELECT id, fetched_at, days, monitors, duration_ms, COALESCE(error, '')
		FROM fetches ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []FetchRecord
	for rows.Next() {
		var rec FetchRecord
		if err := rows.Scan(&rec.ID, &rec.FetchedAt, &rec.Days, &rec.Monitors, &rec.DurationMs, &rec.Error); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// prune removes old records to keep the database size manageable
func (j *Journal) prune() error {
	_, err := j.db.Exec(`DELETE FROM fetches WHERE id NOT IN (
		SELECT id FROM fetches ORDER BY id DESC LIMIT ?
	)`, j.keep)
	return err
}
