package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/finbooks/internal/adapter/http"
	"github.com/iho/finbooks/internal/adapter/http/handler"
	"github.com/iho/finbooks/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/finbooks/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/finbooks/internal/adapter/repository/redis"
	"github.com/iho/finbooks/internal/infrastructure/config"
	"github.com/iho/finbooks/internal/infrastructure/logger"
	"github.com/iho/finbooks/internal/infrastructure/metrics"
	"github.com/iho/finbooks/internal/infrastructure/postgres"
	"github.com/iho/finbooks/internal/infrastructure/redis"
	"github.com/iho/finbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	driftTolerance, err := decimal.NewFromString(cfg.DriftTolerance)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.DriftTolerance).Msg("malformed drift tolerance")
	}

	m := metrics.New()
	go trackPoolSize(ctx, pool, m)

	// Initialize repositories
	accountRepo := postgresRepo.NewAccountRepository(pool)
	txRepo := postgresRepo.NewTransactionRepository(pool)
	assetRepo := postgresRepo.NewFixedAssetRepository(pool)
	projectRepo := postgresRepo.NewProjectRepository(pool)
	categoryRepo := postgresRepo.NewCashflowCategoryRepository(pool)
	snapshots := metrics.InstrumentSnapshots(postgresRepo.NewSnapshotRepository(pool), m)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := metrics.InstrumentCache(redisRepo.NewCache(redisClient), m)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	accountUC := metrics.InstrumentAccounts(usecase.NewAccountUseCase(accountRepo), m)
	txUC := metrics.InstrumentTransactions(usecase.NewTransactionUseCase(accountRepo, txRepo, idGen), m)
	assetUC := metrics.InstrumentAssets(usecase.NewFixedAssetUseCase(assetRepo, idGen), m)
	projectUC := metrics.InstrumentProjects(usecase.NewProjectUseCase(projectRepo, idGen), m)
	wipUC := usecase.NewWIPUseCase(projectRepo)
	ledgerUC := metrics.InstrumentLedger(usecase.NewLedgerUseCase(snapshots), m)
	statementUC := metrics.InstrumentStatements(usecase.NewStatementUseCase(snapshots, cache, cfg.StatementCacheTTL), m)
	reconUC := metrics.InstrumentReconciliation(usecase.NewReconciliationUseCase(snapshots, driftTolerance), m)
	categoryUC := usecase.NewCashflowCategoryUseCase(accountRepo, categoryRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC, categoryUC)
	txHandler := handler.NewTransactionHandler(txUC, ledgerUC)
	assetHandler := handler.NewAssetHandler(assetUC)
	projectHandler := handler.NewProjectHandler(projectUC, wipUC)
	statementHandler := handler.NewStatementHandler(statementUC, ledgerUC)
	reconHandler := handler.NewReconciliationHandler(reconUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:        accountHandler,
		TransactionHandler:    txHandler,
		AssetHandler:          assetHandler,
		ProjectHandler:        projectHandler,
		StatementHandler:      statementHandler,
		ReconciliationHandler: reconHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:                log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// trackPoolSize mirrors the pgx pool size into the DB connections gauge.
func trackPoolSize(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}
}
