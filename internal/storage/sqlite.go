// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-wordle/internal/config"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	RoundID   string // UUID assigned by the platform
	Mode      string
	Player    string
	Target    string
	Guesses   []string
	Won       bool
	Attempts  int
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			target TEXT NOT NULL,
			guesses TEXT NOT NULL DEFAULT '',
			won INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, mode, player, target, guesses, won, attempts, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.Mode, r.Player, r.Target, strings.Join(r.Guesses, ","), r.Won, r.Attempts, r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, round_id, mode, player, target, guesses, won, attempts, score, created_at`

// RecentRounds returns the latest rounds for a mode, newest first.
// An empty mode matches every mode.
func (s *Store) RecentRounds(mode string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE (? = '' OR mode = ?)
		 ORDER BY id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// TopScores retrieves the top N rounds for the given mode.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopScores(mode string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRounds(rows)
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRounds deletes all rounds for the given mode.
func (s *Store) ClearRounds(mode string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var guesses string
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.RoundID, &r.Mode, &r.Player, &r.Target,
			&guesses, &r.Won, &r.Attempts, &r.Score, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
