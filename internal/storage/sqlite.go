// Package storage provides SQLite-based persistence for match history.
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

// End reasons recorded with a match.
const (
	EndReset = "reset"
	EndQuit  = "quit"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished local match.
type MatchRecord struct {
	ID           uuid.UUID
	Player1Score int
	Player2Score int
	EndReason    string // EndReset or EndQuit
	Ticks        uint64
	StartedAt    time.Time
	EndedAt      time.Time
}

// Winner returns 1 or 2 for the player with more points, 0 on a draw.
func (m MatchRecord) Winner() int {
	switch {
	case m.Player1Score > m.Player2Score:
		return 1
	case m.Player2Score > m.Player1Score:
		return 2
	default:
		return 0
	}
}

// Duration returns how long the match lasted.
func (m MatchRecord) Duration() time.Duration {
	return m.EndedAt.Sub(m.StartedAt)
}

// Totals aggregates the whole history.
type Totals struct {
	Matches     int
	Player1Wins int
	Player2Wins int
	Draws       int
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
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			player1_score INTEGER NOT NULL DEFAULT 0,
			player2_score INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_ended_at ON matches(ended_at DESC);
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

// SaveMatch records a finished match. A zero ID is replaced with a fresh
// one; the stored record is returned.
func (s *Store) SaveMatch(m MatchRecord) (MatchRecord, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.EndReason != EndReset && m.EndReason != EndQuit {
		return m, fmt.Errorf("storage: cannot save match: unknown end reason %q", m.EndReason)
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, player1_score, player2_score, end_reason, ticks, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID.String(),
		m.Player1Score,
		m.Player2Score,
		m.EndReason,
		int64(m.Ticks),
		m.StartedAt.UTC().Format(timeLayout),
		m.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return m, fmt.Errorf("storage: cannot save match: %w", err)
	}

	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var m MatchRecord
	var id string
	var ticks int64
	var startedAt, endedAt any

	if err := row.Scan(&id, &m.Player1Score, &m.Player2Score, &m.EndReason, &ticks, &startedAt, &endedAt); err != nil {
		return m, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return m, fmt.Errorf("storage: bad match id %q: %w", id, err)
	}
	m.ID = parsed
	m.Ticks = uint64(ticks)
	m.StartedAt = parseTime(startedAt)
	m.EndedAt = parseTime(endedAt)
	return m, nil
}

// parseTime handles both driver-parsed time.Time and raw strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

const matchColumns = `id, player1_score, player2_score, end_reason, ticks, started_at, ended_at`

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY ended_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchByID retrieves one match. Returns nil if it does not exist.
func (s *Store) MatchByID(id uuid.UUID) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`,
		id.String(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// Totals counts matches and wins over the whole history.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN player1_score > player2_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN player2_score > player1_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN player1_score = player2_score THEN 1 ELSE 0 END), 0)
		 FROM matches`,
	).Scan(&t.Matches, &t.Player1Wins, &t.Player2Wins, &t.Draws)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	return t, nil
}

// ClearMatches deletes the whole history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
