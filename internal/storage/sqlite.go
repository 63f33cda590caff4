// Package storage provides SQLite-based persistence for the arcade.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database holds one best score per game variant, a history of finished
// runs, and a handful of settings (such as the mute toggle).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mini-arcade/internal/score"
)

var _ score.Persistence = (*Store)(nil)

// SettingMuted is the settings key for the sound toggle.
const SettingMuted = "muted"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	GameID    string
	Score     float64
	NewRecord bool
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS high_scores (
			game_key TEXT PRIMARY KEY,
			best REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score REAL NOT NULL,
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
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

// Load returns the best score stored under key.
func (s *Store) Load(key string) (float64, bool, error) {
	var best float64
	err := s.db.QueryRow(`SELECT best FROM high_scores WHERE game_key = ?`, key).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load high score %s: %w", key, err)
	}
	return best, true, nil
}

// Save stores best under key, replacing any previous value.
func (s *Store) Save(key string, best float64) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_key, best, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_key) DO UPDATE SET best = excluded.best, updated_at = excluded.updated_at`,
		key, best,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score %s: %w", key, err)
	}
	return nil
}

// ClearHighScore removes the best score for a game and its run history.
func (s *Store) ClearHighScore(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM high_scores WHERE game_key = ?`, score.Key(gameID)); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM runs WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RecordRun appends a finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(gameID string, value float64, newRecord bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, new_record) VALUES (?, ?, ?)",
		gameID, value, boolToInt(newRecord),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given game, best first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, new_record, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var newRecord int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &newRecord, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.NewRecord = newRecord != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	RunsCount  int
	HighScore  float64 // Persisted best, not the best recorded run
	AvgScore   float64
	LastPlayed time.Time
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	best, _, err := s.Load(score.Key(gameID))
	if err != nil {
		return nil, err
	}
	stats.HighScore = best

	return stats, nil
}

// AllGameStats retrieves statistics for every game that has been played.
func (s *Store) AllGameStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM runs`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list games: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		st, err := s.GameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = st
	}
	return stats, nil
}

// Setting returns a stored setting value and whether it exists.
func (s *Store) Setting(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", name, err)
	}
	return value, true, nil
}

// SetSetting stores a setting value.
func (s *Store) SetSetting(name, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", name, err)
	}
	return nil
}

// Muted reports the stored mute toggle. Missing or unreadable values mean
// sound is on.
func (s *Store) Muted() bool {
	v, ok, err := s.Setting(SettingMuted)
	if err != nil || !ok {
		return false
	}
	muted, err := strconv.ParseBool(v)
	return err == nil && muted
}

// SetMuted stores the mute toggle.
func (s *Store) SetMuted(muted bool) error {
	return s.SetSetting(SettingMuted, strconv.FormatBool(muted))
}

// parseTime handles both time.Time and string datetimes from the driver.
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
