package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/duasfl8r/vestat/internal/core/ports"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/core/services"
	"github.com/duasfl8r/vestat/internal/events"
	"github.com/duasfl8r/vestat/internal/events/kafka"
	"github.com/duasfl8r/vestat/internal/handlers"
	"github.com/duasfl8r/vestat/internal/middleware"
	"github.com/duasfl8r/vestat/internal/platform/config"
	"github.com/duasfl8r/vestat/internal/platform/logging"
	"github.com/duasfl8r/vestat/internal/repositories/database/pgsql"
	"github.com/duasfl8r/vestat/internal/repositories/memory"
	"github.com/duasfl8r/vestat/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, logger, cfg, !skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")

	return cmd
}

func runServer(ctx context.Context, logger *slog.Logger, cfg *config.Config, migrateOnStart bool) error {
	repos, closeRepos, err := openRepositories(ctx, logger, cfg, migrateOnStart)
	if err != nil {
		return err
	}
	defer closeRepos()

	publisher, err := newPublisher(logger, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	// The application-wide ledger must exist before any request can accrue tips.
	ledger, err := services.NewLedgerService(repos).GetOrCreateLedger(ctx, cfg.LedgerName)
	if err != nil {
		logger.Error("Failed to initialize ledger", slog.String("ledger", cfg.LedgerName), slog.String("error", err.Error()))
		return err
	}
	logger.Info("Ledger ready", slog.String("ledger", ledger.Name), slog.String("ledger_id", ledger.LedgerID))

	svcContainer := services.NewServiceContainer(cfg, repos, publisher, ledger.LedgerID)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AddAllowHeaders("Authorization", "X-Request-ID")
		r.Use(cors.New(corsCfg))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, svcContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// openRepositories picks the storage backend. The returned func releases it.
func openRepositories(ctx context.Context, logger *slog.Logger, cfg *config.Config, migrateOnStart bool) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; nothing is persisted across restarts")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	case config.StoragePostgres:
		if migrateOnStart {
			if err := runMigrations(logger, cfg, database.Up); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func newPublisher(logger *slog.Logger, cfg *config.Config) (ports.EventPublisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured; ledger events are not published")
		return events.NoopPublisher{}, nil
	}
	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	logger.Info("Publishing ledger events to Kafka", slog.String("topic", cfg.KafkaTopic))
	return publisher, nil
}
