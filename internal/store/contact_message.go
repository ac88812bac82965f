package store

import (
	"context"
	"database/sql"
	"fmt"

	"devfolio/internal/models"
)

// ContactMessageStore is the PostgreSQL implementation of ContactMessages.
type ContactMessageStore struct {
	db *sql.DB
}

// NewContactMessageStore creates a ContactMessageStore over the given
// connection pool.
func NewContactMessageStore(db *sql.DB) *ContactMessageStore {
	return &ContactMessageStore{db: db}
}

// Create inserts a contact message. The database assigns id and created_at.
func (s *ContactMessageStore) Create(ctx context.Context, in *models.ContactMessageInput) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at
	`, in.Name, in.Email, in.Subject, in.Message,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return m, nil
}

// Count returns the total number of messages received.
func (s *ContactMessageStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}
