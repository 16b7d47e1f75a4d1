package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dataincloud/resource-api/internal/api"
	"github.com/dataincloud/resource-api/internal/config"
	"github.com/dataincloud/resource-api/internal/platform/boltstore"
	"github.com/dataincloud/resource-api/internal/platform/postgres"
	"github.com/dataincloud/resource-api/internal/platform/sqlite"
	"github.com/dataincloud/resource-api/internal/service"
	"github.com/dataincloud/resource-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores
	userStore    store.UserStore
	postStore    store.PostStore
	profileStore store.ProfileStore

	// Service interfaces
	userService    service.UserService
	postService    service.PostService
	profileService service.ProfileService

	// closers release the backing databases in reverse opening order.
	closers []func() error
}

// newApplication opens the relational and document stores selected by cfg
// and builds the services on top of them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupRelationalStores(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	documents, err := boltstore.Open(cfg.Documents.Path, cfg.Documents.OpenTimeout)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	app.closers = append(app.closers, documents.Close)
	app.profileStore = boltstore.NewProfileStore(documents, logger)
	logger.Info("document store opened", "path", cfg.Documents.Path)

	app.userService = service.NewUserService(app.userStore, logger)
	app.postService = service.NewPostService(app.postStore, app.userStore, logger)
	app.profileService = service.NewProfileService(app.profileStore, logger)

	return app, nil
}

func (app *application) setupRelationalStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case config.DriverPostgres:
		db, err := setupPostgres(ctx, app.config.Database, app.logger)
		if err != nil {
			return err
		}
		app.closers = append(app.closers, db.Close)
		app.userStore = postgres.NewPostgresUserStore(db, app.logger)
		app.postStore = postgres.NewPostgresPostStore(db, app.logger)

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, app.config.Database.URL, app.logger)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		app.closers = append(app.closers, func() error { return sqlite.Close(db) })
		app.userStore = sqlite.NewUserStore(db, app.logger)
		app.postStore = sqlite.NewPostStore(db, app.logger)

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}

	app.logger.Info("relational store ready", "driver", app.config.Database.Driver)
	return nil
}

// router creates the HTTP handler serving every API route.
func (app *application) router() http.Handler {
	return api.NewRouter(api.Handlers{
		Users:    api.NewUserHandler(app.userService, app.logger),
		Posts:    api.NewPostHandler(app.postService, app.logger),
		Profiles: api.NewProfileHandler(app.profileService, app.logger),
		Health: api.NewHealthHandler(map[string]api.Pinger{
			"users":    app.userStore,
			"profiles": app.profileStore,
		}, app.logger),
	}, app.logger)
}

// cleanup releases the backing stores. It is safe to call more than once.
func (app *application) cleanup() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Error("failed to close store", "error", err)
		}
	}
	app.closers = nil
}
