package store

import (
	"context"
	"fmt"
	"time"
)

type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is everything the admin dashboard shows.
type Stats struct {
	TotalVisitors    int64         `json:"total_visitors"`
	UniqueVisitors   int64         `json:"unique_visitors"`
	VisitorsToday    int64         `json:"visitors_today"`
	VisitorsThisWeek int64         `json:"visitors_this_week"`
	TopPaths         []PathCount   `json:"top_paths"`
	RecentVisitors   []Visit       `json:"recent_visitors"`
	TotalMessages    int64         `json:"total_messages"`
	Undelivered      int64         `json:"undelivered_messages"`
	ContentHealth    []QueryHealth `json:"content_health"`
	RecentFailures   []FetchRecord `json:"recent_failures"`
}

// Stats gathers dashboard statistics. Content health covers the last day.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.Undelivered, `SELECT COUNT(*) FROM messages WHERE delivered = 0`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(path, ''), COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("querying top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("scanning top path: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.ContentHealth, err = s.QueryHealthSince(ctx, now.Add(-24*time.Hour)); err != nil {
		return nil, err
	}
	if stats.RecentFailures, err = s.RecentFailures(ctx, 20); err != nil {
		return nil, err
	}
	return stats, nil
}
