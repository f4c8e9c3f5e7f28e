// Package favorites persists the per-day sets of favorited session titles.
// Each day key maps to a JSON-encoded array of titles; anything absent or
// unparsable degrades to an empty set rather than failing the caller.
package favorites

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the per-day favorite sets
type Store struct {
	conn *sql.DB
}

// Open creates a new store connection and initializes the schema
func Open(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS favorites (
		day TEXT PRIMARY KEY,
		titles TEXT NOT NULL DEFAULT '[]',
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// Load returns the favorited titles for a day, in the order they were
// added. A missing row or corrupt value is an empty set, never an error.
func (s *Store) Load(day string) []string {
	var raw string
	err := s.conn.QueryRow(`SELECT titles FROM favorites WHERE day = ?`, day).Scan(&raw)
	if err != nil {
		return []string{}
	}

	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return []string{}
	}
	if titles == nil {
		titles = []string{}
	}
	return titles
}

// Toggle flips the favorite status of a title for a day and persists the
// result in a single write. Returns the new set for the day.
func (s *Store) Toggle(day, title string) ([]string, error) {
	titles := s.Load(day)

	found := false
	next := make([]string, 0, len(titles)+1)
	for _, t := range titles {
		if t == title {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, title)
	}

	if err := s.save(day, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Clear removes the persisted set for a day.
func (s *Store) Clear(day string) error {
	_, err := s.conn.Exec(`DELETE FROM favorites WHERE day = ?`, day)
	if err != nil {
		return fmt.Errorf("failed to clear favorites for %s: %w", day, err)
	}
	return nil
}

func (s *Store) save(day string, titles []string) error {
	raw, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	_, err = s.conn.Exec(`
		INSERT INTO favorites (day, titles, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(day) DO UPDATE SET
			titles = excluded.titles,
			updated_at = CURRENT_TIMESTAMP
	`, day, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save favorites for %s: %w", day, err)
	}
	return nil
}

// Contains reports whether title is in the given set.
func Contains(titles []string, title string) bool {
	for _, t := range titles {
		if t == title {
			return true
		}
	}
	return false
}
