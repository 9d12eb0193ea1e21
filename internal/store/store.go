// Package store holds the persistence port and the typed key accessors
// built on top of it.
package store

import (
	"context"
	"errors"
)

// Top-level store keys. Every durable piece of shell state lives under
// one of these.
const (
	KeyBookmarks   = "bookmarks"
	KeyHistory     = "history"
	KeySettings    = "settings"
	KeyUser        = "user"
	KeySyncEnabled = "syncEnabled"

	// KeyAccounts is a separate namespace holding full account records.
	KeyAccounts = "accounts"
)

// Keys lists every top-level key, in sync-mirror order.
func Keys() []string {
	return []string{KeyBookmarks, KeyHistory, KeySettings, KeyUser, KeySyncEnabled, KeyAccounts}
}

// ErrNotFound is returned by KV backends for keys that were never written.
var ErrNotFound = errors.New("store: key not found")

// IsNotFound reports whether err means the key is simply absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KV is the persistence port consumed by the core: an asynchronous
// get/set boundary over top-level keys. Implementations marshal nothing;
// values are opaque bytes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
