package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dataincloud/resource-api/internal/config"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/dataincloud/resource-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// newRootCmd builds the resource-api command tree.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "resource-api",
		Short:         "HTTP API for users, posts and profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a config file (default: ./config.yaml when present)")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
	)
	return rootCmd
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadAppConfig(*configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := newApplication(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.cleanup()

			return app.startHTTPServer(ctx)
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the relational database schema",
	}

	for _, sub := range []struct {
		command string
		short   string
	}{
		{postgres.MigrateUp, "Apply all pending migrations"},
		{postgres.MigrateDown, "Roll back the most recent migration"},
		{postgres.MigrateStatus, "Show the status of every migration"},
		{postgres.MigrateVersion, "Print the current schema version"},
	} {
		command := sub.command
		cmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				cfg, log, err := loadAppConfig(*configPath)
				if err != nil {
					return err
				}
				return runMigrations(c.Context(), cfg, command, log, c.OutOrStdout())
			},
		})
	}
	return cmd
}

// loadAppConfig loads the configuration and sets up the application logger.
func loadAppConfig(path string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.SetupWithWriter(cfg.Server, os.Stdout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"documents_path", cfg.Documents.Path)
	return cfg, log, nil
}
