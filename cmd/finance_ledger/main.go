package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/finledger/finance-ledger/internal/core/services"
	"github.com/finledger/finance-ledger/internal/handlers"
	"github.com/finledger/finance-ledger/internal/middleware"
	"github.com/finledger/finance-ledger/internal/platform/config"
	"github.com/finledger/finance-ledger/internal/platform/resilience"
	"github.com/finledger/finance-ledger/internal/repositories/database/pgsql"
	"github.com/finledger/finance-ledger/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	rateLimiter := limiter.New(memorystore.NewStore(), rate)

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.RateLimit(rateLimiter),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	executor := resilience.Executor{
		Attempts: cfg.RetryAttempts,
		Timeout:  cfg.RetryTimeout,
		Backoff:  cfg.RetryBackoff,
	}
	container := services.NewContainer(services.Repositories{
		Account:          pgsql.NewAccountRepository(pool),
		Transaction:      pgsql.NewTransactionRepository(pool),
		Category:         pgsql.NewCategoryRepository(pool),
		ValidationAmount: pgsql.NewValidationAmountRepository(pool),
		Payment:          pgsql.NewPaymentRepository(pool),
		Transfer:         pgsql.NewTransferRepository(pool),
		User:             pgsql.NewUserRepository(pool),
	}, executor, cfg.RefreshConcurrency)

	handlers.RegisterValidators()
	handlers.RegisterRoutes(r, cfg, container, pool)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a short-lived
// database/sql connection compatible with the pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied")
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}
