package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dataincloud/resource-api/internal/config"
	"github.com/dataincloud/resource-api/internal/platform/postgres"
	"github.com/google/uuid"
)

// runMigrations executes a goose migration command against the configured
// Postgres database. SQLite schemas are managed by the store itself, so the
// command only reports that there is nothing to do.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger, out io.Writer) error {
	// A correlation ID ties together every log line of one migration run.
	log := logger.With("correlation_id", uuid.NewString(), "command", command)

	if cfg.Database.Driver == config.DriverSQLite {
		log.Info("sqlite schema is migrated on startup, nothing to do")
		_, err := fmt.Fprintln(out, "sqlite schema is migrated automatically on startup; nothing to do")
		return err
	}

	db, err := setupPostgres(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}()

	log.Info("starting migration")
	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		log.Error("migration failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migration completed")
	return nil
}
