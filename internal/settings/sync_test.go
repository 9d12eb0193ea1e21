package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

func newSynchronizer() (*Synchronizer, *store.Service) {
	st := store.NewService(store.NewMemory())
	return NewSynchronizer(st), st
}

func TestUpdateMergesAndPersists(t *testing.T) {
	sync, st := newSynchronizer()
	ctx := context.Background()

	merged, err := sync.Update(ctx, domain.Settings{"theme": "light"})
	require.NoError(t, err)

	// Overwritten key plus preserved defaults.
	assert.Equal(t, "light", merged.String("theme", ""))
	assert.Equal(t, "google", merged.String("searchEngine", ""))

	persisted, err := st.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", persisted.String("theme", ""))
}

func TestUpdateReplacesMirror(t *testing.T) {
	sync, _ := newSynchronizer()
	ctx := context.Background()

	require.NoError(t, sync.Load(ctx))
	assert.Equal(t, "dark", sync.Current().String("theme", ""))

	_, err := sync.Update(ctx, domain.Settings{"theme": "light"})
	require.NoError(t, err)
	assert.Equal(t, "light", sync.Current().String("theme", ""))
}

func TestUpdateReadsLatestSnapshot(t *testing.T) {
	sync, st := newSynchronizer()
	ctx := context.Background()

	// A second writer touched a different key between our updates.
	_, err := sync.Update(ctx, domain.Settings{"blur": 12})
	require.NoError(t, err)
	persisted, err := st.Settings(ctx)
	require.NoError(t, err)
	require.NoError(t, st.SetSettings(ctx, persisted.Merge(domain.Settings{"font": "inter"})))

	merged, err := sync.Update(ctx, domain.Settings{"theme": "light"})
	require.NoError(t, err)

	assert.Equal(t, 12, merged.Int("blur", 0))
	assert.Equal(t, "inter", merged.String("font", ""))
	assert.Equal(t, "light", merged.String("theme", ""))
}

func TestCurrentReturnsCopy(t *testing.T) {
	sync, _ := newSynchronizer()
	require.NoError(t, sync.Load(context.Background()))

	snapshot := sync.Current()
	snapshot["theme"] = "mangled"

	assert.Equal(t, "dark", sync.Current().String("theme", ""))
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name        string
		theme       string
		prefersDark bool
		want        string
	}{
		{name: "explicit dark", theme: "dark", want: "dark"},
		{name: "explicit light", theme: "light", want: "light"},
		{name: "auto follows dark preference", theme: "auto", prefersDark: true, want: "dark"},
		{name: "auto follows light preference", theme: "auto", prefersDark: false, want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Settings{"theme": tt.theme}
			assert.Equal(t, tt.want, ResolveTheme(s, tt.prefersDark))
		})
	}
}

func TestBackgroundColorThemeAware(t *testing.T) {
	dark := domain.Settings{"theme": "dark", "transparency": 0.5}
	light := domain.Settings{"theme": "light", "transparency": 0.5}

	assert.Equal(t, "rgba(15, 15, 25, 0.5)", BackgroundColor(dark, false))
	assert.Equal(t, "rgba(245, 245, 250, 0.5)", BackgroundColor(light, false))
}

func TestBackgroundStyleCustomNeedsImage(t *testing.T) {
	withImage := domain.Settings{"bgStyle": "custom", "customBgImage": "data:image/png;base64,xxxx"}
	withoutImage := domain.Settings{"bgStyle": "custom"}

	assert.Equal(t, "custom", BackgroundStyle(withImage))
	assert.Equal(t, "gradient", BackgroundStyle(withoutImage))
}

func TestDeriveIsIdempotent(t *testing.T) {
	s := domain.Settings{
		"theme":        "auto",
		"transparency": 0.7,
		"blur":         14,
		"compactMode":  true,
		"tabWidth":     240,
	}

	first := Derive(s, true)
	second := Derive(s, true)
	assert.Equal(t, first, second)
	assert.Equal(t, "dark", first.Theme)
	assert.Equal(t, 14, first.BlurPx)
	assert.True(t, first.CompactMode)
	assert.Equal(t, 240, first.TabMaxWidthPx)
}
