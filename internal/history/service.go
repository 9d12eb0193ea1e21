// Package history manages the newest-first visit log.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

// Service records and serves page visits.
type Service struct {
	store *store.Service
}

// NewService creates a history service over the typed store.
func NewService(st *store.Service) *Service {
	return &Service{store: st}
}

// Add prepends a visit and enforces the retention cap. Blank URLs are
// silently skipped. Returns the updated list.
func (s *Service) Add(ctx context.Context, url, title string) ([]domain.HistoryEntry, error) {
	if !domain.RecordableURL(url) {
		return s.List(ctx)
	}
	if title == "" {
		title = url
	}

	history, err := s.store.History(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	history = domain.PrependHistory(history, domain.HistoryEntry{
		ID:        id.String(),
		URL:       url,
		Title:     title,
		VisitedAt: time.Now(),
	})

	if err := s.store.SetHistory(ctx, history); err != nil {
		return nil, err
	}
	return history, nil
}

// List returns the full history, newest first.
func (s *Service) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.store.History(ctx)
}

// Clear removes everything.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.SetHistory(ctx, []domain.HistoryEntry{})
}
