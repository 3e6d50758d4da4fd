package store

import (
	"context"
	"fmt"
	"time"
)

// Visit is one tracked page view. The IP address is hashed before it gets
// here; raw addresses are never stored.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecentVisits returns the latest visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// CleanupVisitors deletes visits older than the retention window and
// returns how many were removed.
func (s *Store) CleanupVisitors(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-VisitorRetention)
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	return result.RowsAffected()
}
