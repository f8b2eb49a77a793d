// Package entrypoint assembles the application: stores, façade,
// services, state container and background jobs, plus the signal-driven
// shutdown sequence.
package entrypoint

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/app"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/cache"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/database"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/services"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/tasks"
)

// Application bundles everything Run assembles, so tests can drive the
// same wiring without the signal loop.
type Application struct {
	Config    *config.Config
	Store     *storage.Service
	Importer  *services.ImportService
	Container *app.Container
	Cleanup   *tasks.CacheCleanupScheduler

	db  *database.Database
	log zerolog.Logger
}

// Assemble wires the full dependency graph from the configuration.
func Assemble(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	db, err := database.New(database.Config{
		Path:      cfg.Database.Path,
		OpTimeout: cfg.Database.OpTimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	kv := cache.New(cache.Config{
		Path:  cfg.Cache.Path,
		Quota: cfg.Cache.Quota,
	}, log)

	store := storage.New(db, kv, log)
	importer := services.NewImportService(store, log)
	container := app.New(store, importer, app.Config{
		UserID:        cfg.App.UserID,
		AutosaveDelay: cfg.App.AutosaveDelay,
	}, log)

	return &Application{
		Config:    cfg,
		Store:     store,
		Importer:  importer,
		Container: container,
		Cleanup:   tasks.NewCacheCleanupScheduler(store, cfg.CacheCleanup.Schedule, log),
		db:        db,
		log:       log,
	}, nil
}

// Start loads the state and kicks off background jobs.
func (a *Application) Start(ctx context.Context) error {
	if err := a.Container.Start(ctx); err != nil {
		return err
	}
	if a.Config.CacheCleanup.Enabled {
		if err := a.Cleanup.Start(); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown flushes pending state and releases the stores.
func (a *Application) Shutdown(ctx context.Context) {
	a.Cleanup.Stop()
	if err := a.Container.Close(ctx); err != nil {
		a.log.Error().Err(err).Msg("failed to flush application state")
	}
	if err := a.db.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to close database")
	}
}

// Run assembles and starts the application, then blocks until SIGINT or
// SIGTERM and shuts down within the configured timeout.
func Run(cfg *config.Config, version string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("starting finance english")

	application, err := Assemble(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		application.Shutdown(context.Background())
		return err
	}

	// An external process rewriting the cache document invalidates the
	// settings fallback copy; reloading keeps both layers coherent.
	unsubscribe, err := application.Store.Cache().OnChange(func() {
		settings := application.Store.GetUserSettings(ctx, cfg.App.UserID)
		if settings == nil {
			settings = entities.DefaultUserSettings(cfg.App.UserID)
		}
		application.Container.Dispatch(app.SetUser{User: &app.User{ID: cfg.App.UserID, Settings: settings}})
		log.Debug().Msg("cache changed externally, settings reloaded")
	})
	if err != nil {
		log.Warn().Err(err).Msg("cache change watching unavailable")
	} else {
		defer unsubscribe()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Info().Dur("timeout", timeout).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()
	application.Shutdown(shutdownCtx)

	log.Info().Msg("exited")
	return nil
}
