package quicklinks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/settings"
	"github.com/glassbrowser/glassd/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	sync := settings.NewSynchronizer(store.NewService(store.NewMemory()))
	require.NoError(t, sync.Load(context.Background()))
	return NewService(sync, nil)
}

func TestResolveStartsWithDefaults(t *testing.T) {
	svc := newService(t)

	links := svc.Resolve(context.Background())
	require.Len(t, links, domain.DefaultQuickLinkCount)
	assert.Equal(t, "Google", links[0].Title)
	assert.True(t, links[0].IsDefault)
}

func TestAddAppendsAfterDefaults(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	links, err := svc.Add(ctx, "Blog", "blog.example.com", "#abc")
	require.NoError(t, err)
	require.Len(t, links, domain.DefaultQuickLinkCount+1)

	added := links[len(links)-1]
	assert.Equal(t, "Blog", added.Title)
	assert.Equal(t, "https://blog.example.com", added.URL, "scheme is prepended when missing")
	assert.Equal(t, fallbackIcon, added.Icon)
	assert.False(t, added.IsDefault)
}

func TestAddValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "  ", "https://example.com", "")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Add(ctx, "Example", "", "")
	assert.True(t, domain.IsValidation(err))

	// Validation failures must not persist anything.
	assert.Len(t, svc.Resolve(ctx), domain.DefaultQuickLinkCount)
}

func TestAddPastCapPersistsButTruncatesAtResolve(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	over := domain.MaxQuickLinks - domain.DefaultQuickLinkCount + 1
	for i := 0; i < over; i++ {
		_, err := svc.Add(ctx, "Site", fmt.Sprintf("https://site%d.example.com", i), "")
		require.NoError(t, err)
	}

	// The display set truncates silently at the cap.
	assert.Len(t, svc.Resolve(ctx), domain.MaxQuickLinks)

	// The over-cap tile was persisted, so it surfaces once a default
	// is hidden.
	links, err := svc.Delete(ctx, 0)
	require.NoError(t, err)
	require.Len(t, links, domain.MaxQuickLinks)
	assert.Equal(t, fmt.Sprintf("https://site%d.example.com", over-1), links[domain.MaxQuickLinks-1].URL)
}

func TestDeleteDefaultHidesIt(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	links, err := svc.Delete(ctx, 0)
	require.NoError(t, err)
	require.Len(t, links, domain.DefaultQuickLinkCount-1)
	assert.Equal(t, "YouTube", links[0].Title)

	// The table itself is untouched.
	assert.Len(t, svc.Defaults(), domain.DefaultQuickLinkCount)
}

func TestDeleteCustomAfterHiddenDefault(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "First", "https://first.example.com", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Second", "https://second.example.com", "")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, 0)
	require.NoError(t, err)

	// 5 visible defaults remain, so display index 5 is the first custom tile.
	links, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	require.Len(t, links, 6)
	assert.Equal(t, "Second", links[5].Title)
}

func TestDeleteOutOfRangeIsNoOp(t *testing.T) {
	svc := newService(t)

	links, err := svc.Delete(context.Background(), domain.DefaultQuickLinkCount)
	require.NoError(t, err)
	assert.Len(t, links, domain.DefaultQuickLinkCount)

	links, err = svc.Delete(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, links, domain.DefaultQuickLinkCount)
}

func TestLoaderOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quicklinks.yaml")
	content := `---
- title: Intranet
  url: https://intranet.example.com
  icon: fas fa-building
  color: "#123456"
- title: Wiki
  url: https://wiki.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	links, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Intranet", links[0].Title)
	assert.True(t, links[0].IsDefault)
	assert.Equal(t, fallbackIcon, links[1].Icon, "missing icon falls back")
}

func TestLoaderRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quicklinks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: NoURL\n"), 0o644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader("/nonexistent/quicklinks.yaml").Load()
	assert.Error(t, err)
}
