// Package scheduler runs the periodic background jobs of the shell.
package scheduler

import (
	"context"
	"time"

	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/store"
)

// SyncMirror periodically copies the persisted namespaces from the local
// store to a remote mirror while sync is enabled. Mirroring is best
// effort; a failed pass is logged and retried on the next tick.
type SyncMirror struct {
	store         *store.Service
	remote        store.KV
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSyncMirror creates a mirror job between the local store and remote.
func NewSyncMirror(
	st *store.Service,
	remote store.KV,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SyncMirror {
	return &SyncMirror{
		store:         st,
		remote:        remote,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic mirror passes.
func (sm *SyncMirror) Start(ctx context.Context) error {
	ticker := time.NewTicker(sm.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sm.Sync(ctx); err != nil {
					sm.logger.Error("sync pass failed", logger.Error(err))
				}
			case <-sm.manualTrigger:
				sm.logger.Info("manual sync triggered")
				if err := sm.Sync(ctx); err != nil {
					sm.logger.Error("sync pass failed", logger.Error(err))
				}
			case <-sm.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the mirror job.
func (sm *SyncMirror) Stop() {
	close(sm.stopCh)
}

// Sync copies every persisted namespace to the remote mirror. It is a
// no-op while sync is disabled or no user is signed in.
func (sm *SyncMirror) Sync(ctx context.Context) error {
	enabled, err := sm.store.SyncEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}

	user, err := sm.store.User(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	local := sm.store.KV()
	synced := 0
	for _, key := range store.Keys() {
		value, err := local.Get(ctx, key)
		if err != nil {
			if store.IsNotFound(err) {
				continue
			}
			return err
		}
		if err := sm.remote.Set(ctx, key, value); err != nil {
			return err
		}
		synced++
	}

	sm.logger.Info("mirrored store to remote",
		logger.Int("keys", synced),
		logger.String("user_id", user.ID))
	return nil
}
