package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/store"
)

func newService() *Service {
	return NewService(store.NewService(store.NewMemory()))
}

func TestAddPrependsNewestFirst(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "https://first.example.com", "First")
	require.NoError(t, err)
	history, err := svc.Add(ctx, "https://second.example.com", "Second")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "https://second.example.com", history[0].URL)
	assert.Equal(t, "https://first.example.com", history[1].URL)
}

func TestAddSkipsBlankURLs(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	history, err := svc.Add(ctx, "", "nothing")
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = svc.Add(ctx, "about:blank", "blank")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAddUsesURLAsFallbackTitle(t *testing.T) {
	svc := newService()

	history, err := svc.Add(context.Background(), "https://example.com", "")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "https://example.com", history[0].Title)
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for i := 0; i < domain.HistoryLimit+5; i++ {
		_, err := svc.Add(ctx, fmt.Sprintf("https://example.com/%d", i), "page")
		require.NoError(t, err)
	}

	history, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, domain.HistoryLimit)

	// Newest entry is first; the very oldest visits were evicted.
	assert.Equal(t, fmt.Sprintf("https://example.com/%d", domain.HistoryLimit+4), history[0].URL)
	assert.Equal(t, "https://example.com/5", history[len(history)-1].URL)
}

func TestClear(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "https://example.com", "Example")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	history, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
