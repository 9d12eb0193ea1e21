package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glassbrowser/glassd/internal/domain"
)

// Service provides typed JSON accessors over a KV port.
//
// Absent keys read back as zero values (or seeded defaults for settings),
// mirroring the defaulting behavior of the original shell's store.
type Service struct {
	kv KV
}

// NewService creates a typed store over the given KV backend.
func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

// KV exposes the underlying port, used by the sync scheduler to mirror
// raw values between backends.
func (s *Service) KV() KV {
	return s.kv
}

func (s *Service) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *Service) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Bookmarks returns the ordered bookmark list.
func (s *Service) Bookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	var bookmarks []domain.Bookmark
	if _, err := s.getJSON(ctx, KeyBookmarks, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// SetBookmarks replaces the bookmark list.
func (s *Service) SetBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error {
	return s.setJSON(ctx, KeyBookmarks, bookmarks)
}

// History returns the newest-first history list.
func (s *Service) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	var history []domain.HistoryEntry
	if _, err := s.getJSON(ctx, KeyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SetHistory replaces the history list.
func (s *Service) SetHistory(ctx context.Context, history []domain.HistoryEntry) error {
	return s.setJSON(ctx, KeyHistory, history)
}

// Settings returns the persisted settings map, seeded with defaults when
// the key has never been written.
func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	var settings domain.Settings
	found, err := s.getJSON(ctx, KeySettings, &settings)
	if err != nil {
		return nil, err
	}
	if !found || settings == nil {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// SetSettings replaces the settings map.
func (s *Service) SetSettings(ctx context.Context, settings domain.Settings) error {
	return s.setJSON(ctx, KeySettings, settings)
}

// User returns the session user projection, or nil when nobody is signed in.
func (s *Service) User(ctx context.Context) (*domain.User, error) {
	var user *domain.User
	if _, err := s.getJSON(ctx, KeyUser, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUser stores the session user. A nil user signs the session out.
func (s *Service) SetUser(ctx context.Context, user *domain.User) error {
	return s.setJSON(ctx, KeyUser, user)
}

// SyncEnabled reports whether remote sync is switched on.
func (s *Service) SyncEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := s.getJSON(ctx, KeySyncEnabled, &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// SetSyncEnabled toggles remote sync.
func (s *Service) SetSyncEnabled(ctx context.Context, enabled bool) error {
	return s.setJSON(ctx, KeySyncEnabled, enabled)
}

// Accounts returns all full account records.
func (s *Service) Accounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := s.getJSON(ctx, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SetAccounts replaces the account list.
func (s *Service) SetAccounts(ctx context.Context, accounts []domain.Account) error {
	return s.setJSON(ctx, KeyAccounts, accounts)
}
