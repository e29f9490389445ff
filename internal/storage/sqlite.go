// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"  // Every task completed
	OutcomeLost Outcome = "lost" // Happiness reached zero
	OutcomeQuit Outcome = "quit" // Player left before the end
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished (or abandoned) playthrough of a map.
type Run struct {
	ID         string // UUID, assigned on save when empty
	MapID      string
	Outcome    Outcome
	TasksDone  int
	TasksTotal int
	Happiness  int
	Duration   time.Duration
	CreatedAt  time.Time
}

// MapStats contains aggregated statistics for one map.
type MapStats struct {
	MapID        string
	Runs         int
	Wins         int
	BestTasks    int
	AvgHappiness float64
	LastPlayed   time.Time
}

const sqliteTime = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			map_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			tasks_done INTEGER NOT NULL DEFAULT 0,
			tasks_total INTEGER NOT NULL DEFAULT 0,
			happiness INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map_id ON runs(map_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(map_id, tasks_done DESC, happiness DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its id.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.MapID == "" {
		return "", errors.New("storage: run has no map id")
	}
	switch run.Outcome {
	case OutcomeWon, OutcomeLost, OutcomeQuit:
	default:
		return "", fmt.Errorf("storage: unknown outcome %q", run.Outcome)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, map_id, outcome, tasks_done, tasks_total, happiness, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.MapID,
		string(run.Outcome),
		run.TasksDone,
		run.TasksTotal,
		run.Happiness,
		run.Duration.Milliseconds(),
		run.CreatedAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// RecentRuns returns the latest runs, newest first. An empty mapID means
// every map.
func (s *Store) RecentRuns(mapID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, map_id, outcome, tasks_done, tasks_total, happiness, duration_ms, created_at
		 FROM runs
		 WHERE (? = '' OR map_id = ?)
		 ORDER BY created_at DESC, seq DESC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
}

// BestRuns returns the best runs for a map: wins first, then by tasks done,
// remaining happiness and finishing time.
func (s *Store) BestRuns(mapID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, map_id, outcome, tasks_done, tasks_total, happiness, duration_ms, created_at
		 FROM runs
		 WHERE map_id = ? AND outcome != 'quit'
		 ORDER BY outcome = 'won' DESC, tasks_done DESC, happiness DESC, duration_ms ASC, seq ASC
		 LIMIT ?`,
		mapID, limit,
	)
}

// RunByID retrieves a run by its id.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT id, map_id, outcome, tasks_done, tasks_total, happiness, duration_ms, created_at
		 FROM runs WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("storage: run %s not found", id)
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MapID, &outcome, &r.TasksDone, &r.TasksTotal,
			&r.Happiness, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given map.
func (s *Store) ClearRuns(mapID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE map_id = ?", mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MapStats retrieves aggregated statistics for a specific map.
func (s *Store) MapStats(mapID string) (*MapStats, error) {
	stats := &MapStats{MapID: mapID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(MAX(tasks_done), 0),
		        COALESCE(AVG(happiness), 0),
		        MAX(created_at)
		 FROM runs WHERE map_id = ?`,
		mapID,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestTasks, &stats.AvgHappiness, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get map stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllMapStats retrieves statistics for every map that has been played.
func (s *Store) AllMapStats() (map[string]*MapStats, error) {
	rows, err := s.db.Query(
		`SELECT map_id, COUNT(*), SUM(outcome = 'won'), MAX(tasks_done), AVG(happiness), MAX(created_at)
		 FROM runs
		 GROUP BY map_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all map stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MapStats)
	for rows.Next() {
		var ms MapStats
		var lastPlayed any
		if err := rows.Scan(&ms.MapID, &ms.Runs, &ms.Wins, &ms.BestTasks, &ms.AvgHappiness, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastPlayed = parseTime(lastPlayed)
		stats[ms.MapID] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
