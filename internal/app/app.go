// Package app wires the shell together: storage, services, background
// jobs and the HTTP control server.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glassbrowser/glassd/internal/accounts"
	"github.com/glassbrowser/glassd/internal/auth"
	"github.com/glassbrowser/glassd/internal/bookmarks"
	"github.com/glassbrowser/glassd/internal/config"
	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/history"
	"github.com/glassbrowser/glassd/internal/httpserver"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/quicklinks"
	"github.com/glassbrowser/glassd/internal/scheduler"
	"github.com/glassbrowser/glassd/internal/session"
	"github.com/glassbrowser/glassd/internal/settings"
	"github.com/glassbrowser/glassd/internal/store"
	"github.com/glassbrowser/glassd/internal/store/badgerkv"
	"github.com/glassbrowser/glassd/internal/store/rediskv"
	"github.com/glassbrowser/glassd/internal/surface"
	"github.com/glassbrowser/glassd/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	local   store.KV
	remote  store.KV
	engine  *surface.Engine
	session *session.Manager
	mirror  *scheduler.SyncMirror
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Local store first - everything else hangs off it.
	local, err := badgerkv.Open(badgerkv.Options{Path: cfg.DataDir})
	if err != nil {
		loggerClient.Errorf("Failed to open local store: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("local store opened", logger.String("path", cfg.DataDir))

	st := store.NewService(local)

	synchronizer := settings.NewSynchronizer(st)
	if err := synchronizer.Load(context.Background()); err != nil {
		loggerClient.Errorf("Failed to load settings: %v", err)
		os.Exit(1)
	}

	// Quick link defaults, optionally replaced from a YAML file.
	var defaults []domain.QuickLink
	if cfg.QuickLinkFile != "" {
		defaults, err = quicklinks.NewLoader(cfg.QuickLinkFile).Load()
		if err != nil {
			loggerClient.Errorf("Failed to load quick link file: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("quick link defaults loaded from file",
			logger.String("file", cfg.QuickLinkFile),
			logger.Int("count", len(defaults)))
	}

	engine := surface.NewEngine(surface.EngineOptions{
		Headless:       cfg.Headless,
		CaptureQuality: cfg.CaptureQuality,
		NavigateWait:   cfg.NavigateWait,
	}, loggerClient)

	hist := history.NewService(st)
	sessionManager := session.NewManager(engine, hist, synchronizer, loggerClient)

	// Remote mirror is optional; without an address sync stays local-only.
	var remote store.KV
	var mirror *scheduler.SyncMirror
	var syncTrigger chan struct{}
	if cfg.RedisAddr != "" {
		remoteKV, err := rediskv.New(rediskv.ConnectOptions{
			Addr:         cfg.RedisAddr,
			User:         cfg.RedisUser,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.RedisDT,
			ReadTimeout:  cfg.RedisRT,
			WriteTimeout: cfg.RedisWT,
		}, loggerClient)
		if err != nil {
			loggerClient.Warnf("Sync mirror unavailable, continuing local-only: %v", err)
		} else {
			remote = remoteKV
			syncTrigger = make(chan struct{}, 1)
			mirror = scheduler.NewSyncMirror(st, remote, loggerClient, cfg.SyncInterval, syncTrigger)
		}
	} else {
		loggerClient.Info("no sync mirror configured, running local-only")
	}

	authController := auth.NewController(auth.Options{
		ClientID:    cfg.OAuthClientID,
		RedirectURI: cfg.OAuthRedirectURI,
		Timeout:     cfg.OAuthTimeout,
	}, loggerClient)

	d := deps.Deps{
		Logger:      loggerClient,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		Session:     sessionManager,
		Settings:    synchronizer,
		QuickLinks:  quicklinks.NewService(synchronizer, defaults),
		Bookmarks:   bookmarks.NewService(st),
		History:     hist,
		Accounts:    accounts.NewService(st),
		Auth:        authController,
		Store:       st,
		SyncTrigger: syncTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  server,
		local:   local,
		remote:  remote,
		engine:  engine,
		session: sessionManager,
		mirror:  mirror,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting glassd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("glassd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The session always opens with one blank tab.
	if _, err := a.session.CreateTab(ctx, ""); err != nil {
		return fmt.Errorf("failed to open initial tab: %w", err)
	}

	if a.mirror != nil {
		if err := a.mirror.Start(ctx); err != nil {
			return fmt.Errorf("failed to start sync mirror: %w", err)
		}
		a.logger.Info("sync mirror started",
			logger.Duration("interval", a.cfg.SyncInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.mirror != nil {
		a.mirror.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.session.Close()
	if err := a.engine.Close(); err != nil {
		a.logger.Warnf("failed to close browser engine: %v", err)
	}

	if a.remote != nil {
		if err := a.remote.Close(); err != nil {
			a.logger.Warnf("failed to close sync mirror: %v", err)
		}
	}

	if err := a.local.Close(); err != nil {
		a.logger.Warnf("failed to close local store: %v", err)
	} else {
		a.logger.Info("✅ local store closed cleanly")
	}

	a.logger.Info("✅ glassd stopped cleanly")
	return nil
}
