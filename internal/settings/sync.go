// Package settings funnels every settings mutation through one merge
// operation and keeps the in-memory mirror consistent with the store.
package settings

import (
	"context"
	"sync"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

// Synchronizer is the sole mutation path for persisted settings.
type Synchronizer struct {
	store *store.Service

	mu      sync.RWMutex
	current domain.Settings
}

// NewSynchronizer creates a synchronizer over the typed store.
func NewSynchronizer(st *store.Service) *Synchronizer {
	return &Synchronizer{store: st}
}

// Load primes the in-memory mirror from the store.
func (s *Synchronizer) Load(ctx context.Context) error {
	settings, err := s.store.Settings(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the in-memory settings mirror.
func (s *Synchronizer) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.DefaultSettings()
	}
	return s.current.Clone()
}

// Update shallow-merges partial into the persisted settings, replaces the
// mirror with the result and returns it. Each call re-reads the latest
// persisted snapshot, so overlapping updates resolve last-writer-wins per
// key rather than clobbering the whole map.
func (s *Synchronizer) Update(ctx context.Context, partial domain.Settings) (domain.Settings, error) {
	persisted, err := s.store.Settings(ctx)
	if err != nil {
		return nil, err
	}

	merged := persisted.Merge(partial)
	if err := s.store.SetSettings(ctx, merged); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = merged
	s.mu.Unlock()
	return merged.Clone(), nil
}
