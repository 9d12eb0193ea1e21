// Package bookmarks manages saved pages with one-bookmark-per-URL toggle
// semantics.
package bookmarks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

// Service owns the persisted bookmark list.
type Service struct {
	store *store.Service
}

// NewService creates a bookmark service over the typed store.
func NewService(st *store.Service) *Service {
	return &Service{store: st}
}

// List returns the ordered bookmark list.
func (s *Service) List(ctx context.Context) ([]domain.Bookmark, error) {
	return s.store.Bookmarks(ctx)
}

// Add appends a bookmark and returns the updated list.
func (s *Service) Add(ctx context.Context, title, url, favicon string) ([]domain.Bookmark, error) {
	if url == "" {
		return nil, &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}

	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	bookmarks = append(bookmarks, domain.Bookmark{
		ID:        id.String(),
		Title:     title,
		URL:       url,
		Favicon:   favicon,
		CreatedAt: time.Now(),
	})

	if err := s.store.SetBookmarks(ctx, bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Remove deletes the bookmark with the given id. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, id string) ([]domain.Bookmark, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}

	kept := bookmarks[:0]
	for _, b := range bookmarks {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	if err := s.store.SetBookmarks(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Update merges the given fields into the bookmark with the given id.
// Unknown ids are a no-op.
func (s *Service) Update(ctx context.Context, id string, title, url, favicon *string) ([]domain.Bookmark, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range bookmarks {
		if bookmarks[i].ID != id {
			continue
		}
		if title != nil {
			bookmarks[i].Title = *title
		}
		if url != nil {
			bookmarks[i].URL = *url
		}
		if favicon != nil {
			bookmarks[i].Favicon = *favicon
		}
	}

	if err := s.store.SetBookmarks(ctx, bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Toggle adds a bookmark for the URL, or removes the existing one. It is
// its own inverse for any fixed URL. The second return reports whether the
// URL is bookmarked after the call.
func (s *Service) Toggle(ctx context.Context, title, url, favicon string) ([]domain.Bookmark, bool, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return nil, false, err
	}

	if i := domain.FindBookmarkByURL(bookmarks, url); i >= 0 {
		updated, err := s.Remove(ctx, bookmarks[i].ID)
		return updated, false, err
	}

	updated, err := s.Add(ctx, title, url, favicon)
	return updated, true, err
}

// IsBookmarked reports whether the URL currently has a bookmark.
func (s *Service) IsBookmarked(ctx context.Context, url string) (bool, error) {
	bookmarks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return false, err
	}
	return domain.FindBookmarkByURL(bookmarks, url) >= 0, nil
}
