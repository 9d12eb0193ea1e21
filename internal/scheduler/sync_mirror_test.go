package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/store"
)

func newMirror() (*SyncMirror, *store.Service, store.KV) {
	st := store.NewService(store.NewMemory())
	remote := store.NewMemory()
	sm := NewSyncMirror(st, remote, logger.New("error", false), time.Hour, make(chan struct{}))
	return sm, st, remote
}

func TestSyncNoOpWhileDisabled(t *testing.T) {
	sm, st, remote := newMirror()
	ctx := context.Background()

	require.NoError(t, st.SetBookmarks(ctx, []domain.Bookmark{{ID: "b1", URL: "https://example.com"}}))
	require.NoError(t, sm.Sync(ctx))

	_, err := remote.Get(ctx, store.KeyBookmarks)
	assert.True(t, store.IsNotFound(err))
}

func TestSyncNoOpWithoutUser(t *testing.T) {
	sm, st, remote := newMirror()
	ctx := context.Background()

	require.NoError(t, st.SetSyncEnabled(ctx, true))
	require.NoError(t, sm.Sync(ctx))

	_, err := remote.Get(ctx, store.KeySyncEnabled)
	assert.True(t, store.IsNotFound(err))
}

func TestSyncMirrorsAllNamespaces(t *testing.T) {
	sm, st, remote := newMirror()
	ctx := context.Background()

	require.NoError(t, st.SetUser(ctx, &domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}))
	require.NoError(t, st.SetSyncEnabled(ctx, true))
	require.NoError(t, st.SetBookmarks(ctx, []domain.Bookmark{{ID: "b1", URL: "https://example.com"}}))

	require.NoError(t, sm.Sync(ctx))

	local := st.KV()
	for _, key := range []string{store.KeyBookmarks, store.KeyUser, store.KeySyncEnabled} {
		want, err := local.Get(ctx, key)
		require.NoError(t, err)
		got, err := remote.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestSyncSkipsAbsentKeys(t *testing.T) {
	sm, st, remote := newMirror()
	ctx := context.Background()

	require.NoError(t, st.SetUser(ctx, &domain.User{ID: "u1"}))
	require.NoError(t, st.SetSyncEnabled(ctx, true))

	require.NoError(t, sm.Sync(ctx))

	_, err := remote.Get(ctx, store.KeyHistory)
	assert.True(t, store.IsNotFound(err))
}
