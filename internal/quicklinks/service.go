// Package quicklinks manages the start page tile set: a fixed default
// table, per-user hidden defaults and user-added custom tiles.
package quicklinks

import (
	"context"
	"strings"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/settings"
)

const fallbackIcon = "fas fa-globe"

// Settings keys owned by this package.
const (
	keyHiddenDefaults = "hiddenDefaultLinks"
	keyCustomLinks    = "customQuickLinks"
)

// Service resolves and mutates the visible tile set. Hidden defaults and
// custom tiles live in settings, so every mutation goes through the
// synchronizer like any other settings write.
type Service struct {
	sync     *settings.Synchronizer
	defaults []domain.QuickLink
}

// NewService creates a quick link service. A nil defaults slice falls back
// to the built-in table.
func NewService(sync *settings.Synchronizer, defaults []domain.QuickLink) *Service {
	if defaults == nil {
		defaults = domain.DefaultQuickLinks()
	}
	return &Service{sync: sync, defaults: defaults}
}

// Defaults returns the default tile table in use.
func (s *Service) Defaults() []domain.QuickLink {
	out := make([]domain.QuickLink, len(s.defaults))
	copy(out, s.defaults)
	return out
}

// Resolve returns the tiles to display: visible defaults first, then
// custom tiles in add-order, capped at the display limit.
func (s *Service) Resolve(ctx context.Context) []domain.QuickLink {
	current := s.sync.Current()
	hidden := current.IntSlice(keyHiddenDefaults)
	custom := domain.QuickLinksFromSetting(current[keyCustomLinks])
	return domain.ResolveQuickLinks(s.defaults, hidden, custom)
}

// Add appends a custom tile and returns the updated visible set.
func (s *Service) Add(ctx context.Context, title, url, color string) ([]domain.QuickLink, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if url == "" {
		return nil, &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}

	// Custom tiles persist unconditionally; the display cap is applied
	// at resolve time by silent truncation. A tile pushed past the cap
	// surfaces later, once a default is hidden.
	current := s.sync.Current()
	custom := domain.QuickLinksFromSetting(current[keyCustomLinks])

	custom = append(custom, domain.QuickLink{
		Title: title,
		URL:   url,
		Icon:  fallbackIcon,
		Color: color,
	})

	updated, err := s.sync.Update(ctx, domain.Settings{keyCustomLinks: custom})
	if err != nil {
		return nil, err
	}
	return domain.ResolveQuickLinks(s.defaults, updated.IntSlice(keyHiddenDefaults), domain.QuickLinksFromSetting(updated[keyCustomLinks])), nil
}

func containsInt(list []int, v int) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}

// Delete removes the tile at displayIndex from the visible set. Default
// tiles are hidden rather than removed, so the table itself never shrinks.
// An index addressing no tile is a silent no-op.
func (s *Service) Delete(ctx context.Context, displayIndex int) ([]domain.QuickLink, error) {
	current := s.sync.Current()
	hidden := current.IntSlice(keyHiddenDefaults)
	custom := domain.QuickLinksFromSetting(current[keyCustomLinks])

	visibleDefaults := len(domain.VisibleDefaults(s.defaults, hidden))
	if displayIndex < 0 || displayIndex >= visibleDefaults+len(custom) {
		return domain.ResolveQuickLinks(s.defaults, hidden, custom), nil
	}

	var partial domain.Settings
	if displayIndex < visibleDefaults {
		original := domain.OriginalDefaultIndex(s.defaults, hidden, displayIndex)
		if original < 0 || containsInt(hidden, original) {
			return domain.ResolveQuickLinks(s.defaults, hidden, custom), nil
		}
		partial = domain.Settings{keyHiddenDefaults: append(hidden, original)}
	} else {
		ci := domain.CustomLinkIndex(displayIndex, len(s.defaults), len(hidden))
		custom = append(custom[:ci], custom[ci+1:]...)
		partial = domain.Settings{keyCustomLinks: custom}
	}

	updated, err := s.sync.Update(ctx, partial)
	if err != nil {
		return nil, err
	}
	return domain.ResolveQuickLinks(s.defaults, updated.IntSlice(keyHiddenDefaults), domain.QuickLinksFromSetting(updated[keyCustomLinks])), nil
}
