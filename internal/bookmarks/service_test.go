package bookmarks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

func newService() *Service {
	return NewService(store.NewService(store.NewMemory()))
}

func TestAddAndList(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	bookmarks, err := svc.Add(ctx, "Example", "https://example.com", "")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.NotEmpty(t, bookmarks[0].ID)
	assert.False(t, bookmarks[0].CreatedAt.IsZero())

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, bookmarks, listed)
}

func TestAddRejectsEmptyURL(t *testing.T) {
	svc := newService()

	_, err := svc.Add(context.Background(), "Example", "", "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	bookmarks, added, err := svc.Toggle(ctx, "Example", "https://example.com", "")
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, bookmarks, 1)

	bookmarks, added, err = svc.Toggle(ctx, "Example", "https://example.com", "")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, bookmarks)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Example", "https://example.com", "")
	require.NoError(t, err)

	bookmarks, err := svc.Remove(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}

func TestUpdate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	bookmarks, err := svc.Add(ctx, "Old", "https://example.com", "")
	require.NoError(t, err)
	id := bookmarks[0].ID

	title := "New"
	updated, err := svc.Update(ctx, id, &title, nil, nil)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "New", updated[0].Title)
	assert.Equal(t, "https://example.com", updated[0].URL)
}

func TestIsBookmarked(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	ok, err := svc.IsBookmarked(ctx, "https://example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Add(ctx, "Example", "https://example.com", "")
	require.NoError(t, err)

	ok, err = svc.IsBookmarked(ctx, "https://example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
