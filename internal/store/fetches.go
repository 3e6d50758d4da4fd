package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// FetchRecord is one content query outcome.
type FetchRecord struct {
	ID        int64         `json:"id"`
	Query     string        `json:"query"`
	Outcome   string        `json:"outcome"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// QueryHealth summarises a query's recent outcomes.
type QueryHealth struct {
	Query       string  `json:"query"`
	Total       int64   `json:"total"`
	Failed      int64   `json:"failed"`
	Empty       int64   `json:"empty"`
	AvgDuration float64 `json:"avg_duration_ms"`
	LastError   string  `json:"last_error,omitempty"`
}

func (s *Store) RecordFetch(ctx context.Context, r FetchRecord) error {
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	var errText sql.NullString
	if r.Error != "" {
		errText = sql.NullString{String: r.Error, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetch_events (query, outcome, duration_ms, error, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, r.Query, r.Outcome, r.Duration.Milliseconds(), errText, r.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	return nil
}

// RecentFailures returns the latest failed fetches, newest first.
func (s *Store) RecentFailures(ctx context.Context, limit int) ([]FetchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, outcome, duration_ms, COALESCE(error, ''), timestamp
		FROM fetch_events
		WHERE outcome = 'failed'
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying fetch failures: %w", err)
	}
	defer rows.Close()

	var records []FetchRecord
	for rows.Next() {
		var (
			r  FetchRecord
			ms int64
		)
		if err := rows.Scan(&r.ID, &r.Query, &r.Outcome, &ms, &r.Error, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning fetch event: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}

// QueryHealthSince summarises outcomes per query since the given time,
// ordered by query name.
func (s *Store) QueryHealthSince(ctx context.Context, since time.Time) ([]QueryHealth, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			query,
			COUNT(*),
			SUM(CASE WHEN outcome = 'failed' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'empty' THEN 1 ELSE 0 END),
			AVG(duration_ms),
			COALESCE((
				SELECT f2.error FROM fetch_events f2
				WHERE f2.query = f.query AND f2.outcome = 'failed' AND f2.timestamp >= ?
				ORDER BY f2.timestamp DESC, f2.id DESC LIMIT 1
			), '')
		FROM fetch_events f
		WHERE timestamp >= ?
		GROUP BY query
		ORDER BY query
	`, since.UTC(), since.UTC())
	if err != nil {
		return nil, fmt.Errorf("querying fetch health: %w", err)
	}
	defer rows.Close()

	var health []QueryHealth
	for rows.Next() {
		var h QueryHealth
		if err := rows.Scan(&h.Query, &h.Total, &h.Failed, &h.Empty, &h.AvgDuration, &h.LastError); err != nil {
			return nil, fmt.Errorf("scanning fetch health: %w", err)
		}
		health = append(health, h)
	}
	return health, rows.Err()
}

// CleanupFetchEvents deletes fetch events older than the retention window
// and returns how many were removed.
func (s *Store) CleanupFetchEvents(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-FetchRetention)
	result, err := s.db.ExecContext(ctx, `DELETE FROM fetch_events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up fetch events: %w", err)
	}
	return result.RowsAffected()
}
