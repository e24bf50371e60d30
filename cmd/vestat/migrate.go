package main

import (
	"fmt"
	"log/slog"

	"github.com/duasfl8r/vestat/internal/platform/config"
	"github.com/duasfl8r/vestat/internal/platform/logging"
	"github.com/duasfl8r/vestat/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		newMigrateDirectionCommand(database.Up, "Apply all pending migrations"),
		newMigrateDirectionCommand(database.Down, "Roll back all migrations"),
	)
	return cmd
}

func newMigrateDirectionCommand(direction database.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if cfg.Storage != config.StoragePostgres {
				return fmt.Errorf("migrations need STORAGE=%s, got %q", config.StoragePostgres, cfg.Storage)
			}
			return runMigrations(logger, cfg, direction)
		},
	}
}

func runMigrations(logger *slog.Logger, cfg *config.Config, direction database.Direction) error {
	logger.Info("Running database migrations...", slog.String("direction", string(direction)))
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}
