package deps

import (
	"time"

	"github.com/glassbrowser/glassd/internal/accounts"
	"github.com/glassbrowser/glassd/internal/auth"
	"github.com/glassbrowser/glassd/internal/bookmarks"
	"github.com/glassbrowser/glassd/internal/history"
	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/quicklinks"
	"github.com/glassbrowser/glassd/internal/session"
	"github.com/glassbrowser/glassd/internal/settings"
	"github.com/glassbrowser/glassd/internal/store"
)

// Deps carries the shared services every handler can reach.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Session    *session.Manager
	Settings   *settings.Synchronizer
	QuickLinks *quicklinks.Service
	Bookmarks  *bookmarks.Service
	History    *history.Service
	Accounts   *accounts.Service
	Auth       *auth.Controller
	Store      *store.Service

	// SyncTrigger requests an immediate mirror pass; nil when sync is
	// not configured.
	SyncTrigger chan struct{}
}
