// Package storage provides SQLite-based persistence for the score table and
// the saved game. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// ErrNoProgress is returned by Progress when no game has been saved.
var ErrNoProgress = errors.New("storage: no saved progress")

// Store manages the SQLite database connection. It implements core.Store.
type Store struct {
	db *sql.DB
}

var _ core.Store = (*Store)(nil)

// Stats contains aggregated statistics over the score table.
type Stats struct {
	GamesCount int
	HighScore  int
	BestRound  int
	AvgScore   float64
	LastPlayed time.Time
}

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
	// SSH sessions share one store; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			round INTEGER NOT NULL,
			run_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, round DESC);

		CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// parseTime converts a DATETIME column into a time, whichever form the
// driver hands back.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a finished game.
func (s *Store) SaveScore(rec core.ScoreRecord) error {
	_, err := s.db.Exec(
		"INSERT INTO scores (name, score, round, run_id) VALUES (?, ?, ?, ?)",
		rec.Name, rec.Score, rec.Round, rec.RunID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the best limit scores, ordered by score then round,
// both descending. Earlier entries win ties.
func (s *Store) TopScores(limit int) ([]core.ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, score, round, run_id, created_at
		 FROM scores
		 ORDER BY score DESC, round DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []core.ScoreRecord
	for rows.Next() {
		var e core.ScoreRecord
		var createdAt any
		if err := rows.Scan(&e.Name, &e.Score, &e.Round, &e.RunID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score on record, 0 if the table is empty.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the whole score table.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates the score table.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(round), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestRound, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// SaveProgress replaces the saved game.
func (s *Store) SaveProgress(p core.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (id, level, score, lives, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   level = excluded.level,
		   score = excluded.score,
		   lives = excluded.lives,
		   updated_at = excluded.updated_at`,
		p.Level, p.Score, p.Lives,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// Progress returns the saved game, or ErrNoProgress.
func (s *Store) Progress() (core.Progress, error) {
	var p core.Progress
	err := s.db.QueryRow("SELECT level, score, lives FROM progress WHERE id = 1").
		Scan(&p.Level, &p.Score, &p.Lives)
	if errors.Is(err, sql.ErrNoRows) {
		return core.NoProgress, ErrNoProgress
	}
	if err != nil {
		return core.NoProgress, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	return p, nil
}

// LoadProgress implements core.Store: a missing save is not an error.
func (s *Store) LoadProgress() (core.Progress, error) {
	p, err := s.Progress()
	if errors.Is(err, ErrNoProgress) {
		return core.NoProgress, nil
	}
	return p, err
}

// ClearProgress forgets the saved game.
func (s *Store) ClearProgress() error {
	if _, err := s.db.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}
