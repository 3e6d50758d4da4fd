package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a row addressed by ID does not exist.
var ErrNotFound = errors.New("not found")

// Message is a contact form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveMessage stores a submission and returns its ID.
func (s *Store) SaveMessage(ctx context.Context, m Message) (int64, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (name, email, body, delivered, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Body, m.Delivered, m.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("saving message: %w", err)
	}
	return result.LastInsertId()
}

func (s *Store) MarkDelivered(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `UPDATE messages SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking message %d delivered: %w", id, err)
	}
	return requireRow(result.RowsAffected())
}

// Messages returns the latest messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, delivered, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Delivered, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *Store) DeleteMessage(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting message %d: %w", id, err)
	}
	return requireRow(result.RowsAffected())
}

func requireRow(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
