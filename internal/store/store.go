// Package store keeps the site's own data in SQLite: privacy-conscious
// visitor metrics, the content fetch log and contact form messages. CMS
// content itself is never stored.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// VisitorRetention is how long visitor rows are kept.
	VisitorRetention = 365 * 24 * time.Hour
	// FetchRetention is how long content fetch events are kept.
	FetchRetention = 30 * 24 * time.Hour
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp)`,
	`CREATE TABLE IF NOT EXISTS fetch_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		outcome TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		error TEXT,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS fetch_events_timestamp ON fetch_events (timestamp)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		body TEXT NOT NULL,
		delivered INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection also keeps :memory:
	// databases from splitting across connections.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
