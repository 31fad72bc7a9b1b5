package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lmoretto/wanderlust/internal/repository"
)

// StateStore implements repository.StateStore for SQLite. Writes upsert by
// key, which gives the single-key read-after-write consistency the manager
// relies on for countdown reconciliation.
type StateStore struct {
	db *DB
}

// NewStateStore creates a new StateStore
func NewStateStore(db *DB) *StateStore {
	return &StateStore{db: db}
}

// Get retrieves the blob stored under key
func (s *StateStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores a blob under key, replacing any previous value
func (s *StateStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key. Deleting a missing key is not
// an error.
func (s *StateStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}
