// internal/store/sqlite.go
//
// SQLite persistence for simulation runs and built lookup tables.
// Responsibilities:
//   - Open the database with safe defaults (WAL, busy timeout, FKs).
//   - Apply the embedded migrations (idempotent, recorded in _migrations).
//   - Insert/query simulation run summaries and lookup tables.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/simulate"
)

// migrations are applied in order; each entry runs at most once.
var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "001_runs",
		sql: `CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			strategy    TEXT NOT NULL,
			opener      TEXT NOT NULL,
			games       INTEGER NOT NULL,
			solved      INTEGER NOT NULL,
			mean_turns  REAL NOT NULL,
			histogram   TEXT NOT NULL,
			failures    INTEGER NOT NULL,
			elapsed_ms  INTEGER NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	},
	{
		name: "002_lookup_tables",
		sql: `CREATE TABLE IF NOT EXISTS lookup_tables (
			opener      TEXT NOT NULL,
			pattern     TEXT NOT NULL,
			word        TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (opener, pattern)
		);`,
	},
}

// Open opens (creating if missing) a SQLite database file with busy
// timeout, WAL journaling, and foreign keys enforced.
func Open(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/lab.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations, tracking them in _migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// RunStore persists simulation summaries and lookup tables.
type RunStore struct {
	db *sql.DB
}

// NewRunStore wraps a migrated database handle.
func NewRunStore(db *sql.DB) *RunStore { return &RunStore{db: db} }

// RunRow is one persisted simulation summary.
type RunRow struct {
	ID        int64       `json:"id"`
	Strategy  string      `json:"strategy"`
	Opener    string      `json:"opener"`
	Games     int         `json:"games"`
	Solved    int         `json:"solved"`
	MeanTurns float64     `json:"meanTurns"`
	Histogram map[int]int `json:"histogram"`
	Failures  int         `json:"failures"`
	ElapsedMs int64       `json:"elapsedMs"`
	CreatedAt time.Time   `json:"createdAt"`
}

// InsertRun persists a sweep summary and returns its row ID.
func (s *RunStore) InsertRun(ctx context.Context, sum *simulate.Summary) (int64, error) {
	hist, err := json.Marshal(sum.Histogram)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO runs (strategy, opener, games, solved, mean_turns, histogram, failures, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.Strategy, sum.Opener, sum.Games, sum.Solved, sum.MeanTurns,
		string(hist), len(sum.Failures), sum.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. Default limit 20.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, strategy, opener, games, solved, mean_turns, histogram, failures, elapsed_ms, created_at
        FROM runs
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunRow, 0, limit)
	for rows.Next() {
		var (
			r    RunRow
			hist string
		)
		if err := rows.Scan(&r.ID, &r.Strategy, &r.Opener, &r.Games, &r.Solved,
			&r.MeanTurns, &hist, &r.Failures, &r.ElapsedMs, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hist), &r.Histogram); err != nil {
			return nil, fmt.Errorf("run %d histogram: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveTable upserts a lookup table for an opener, replacing prior rows.
func (s *RunStore) SaveTable(ctx context.Context, opener string, table map[feedback.Pattern]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lookup_tables WHERE opener=?`, opener); err != nil {
		_ = tx.Rollback()
		return err
	}
	for pat, word := range table {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO lookup_tables (opener, pattern, word) VALUES (?, ?, ?)`,
			opener, pat.String(), word,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadTable fetches a stored lookup table; missing openers yield an empty map.
func (s *RunStore) LoadTable(ctx context.Context, opener string) (map[feedback.Pattern]string, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT pattern, word FROM lookup_tables WHERE opener=?`, opener,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(map[feedback.Pattern]string)
	for rows.Next() {
		var pat, word string
		if err := rows.Scan(&pat, &word); err != nil {
			return nil, err
		}
		p, err := feedback.Parse(pat)
		if err != nil {
			return nil, fmt.Errorf("stored pattern %q: %w", pat, err)
		}
		table[p] = word
	}
	return table, rows.Err()
}
