package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles gameplay log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log records an event with the current timestamp if missing.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// Recent lists activity entries with filtering.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	return s.repo.List(ctx, opts)
}
