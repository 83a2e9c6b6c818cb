package factory

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashclose_app/internal/platform/config"
	"github.com/SscSPs/cashclose_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashclose_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/cashclose_app/internal/repositories/memory"
	"github.com/SscSPs/cashclose_app/pkg/database"
)

// NewRepositoryProvider builds the record store selected by cfg.StoreBackend.
// The caller owns the returned provider and must Close its Store.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		return createPostgresProvider(ctx, cfg, logger)
	case config.StoreBackendSQLite:
		provider, err := sqlite.NewRepositoryProvider(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		logger.Info("Initialized SQLite store", slog.String("db_path", cfg.SQLitePath))
		return provider, nil
	case config.StoreBackendMemory:
		logger.Warn("Using in-memory store; records are lost on restart")
		return memory.NewRepositoryProvider(), nil
	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unsupported store backend: %q", cfg.StoreBackend)
	}
}

func createPostgresProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if cfg.DatabaseURL == "" {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("store backend %q requires PGSQL_URL", cfg.StoreBackend)
	}

	logger.Info("Running database migrations...")
	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to apply migrations: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), nil
}
