package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iho/finbooks/internal/adapter/http"
	"github.com/iho/finbooks/internal/adapter/http/handler"
	"github.com/iho/finbooks/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/finbooks/internal/adapter/repository/redis"
	infraredis "github.com/iho/finbooks/internal/infrastructure/redis"
	"github.com/iho/finbooks/internal/usecase"
	"github.com/iho/finbooks/tests/testutil"
)

// testutilSetup opens the test database with a clean slate.
func testutilSetup(t *testing.T, ctx context.Context) *testutil.TestDB {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)
	return testDB
}

// setupRouter wires the full HTTP stack against the test database and a
// real Redis, mirroring the server composition.
func setupRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	assetRepo := postgres.NewFixedAssetRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	categoryRepo := postgres.NewCashflowCategoryRepository(pool)
	snapshots := postgres.NewSnapshotRepository(pool)
	idGen := postgres.NewULIDGenerator()

	accountUC := usecase.NewAccountUseCase(accountRepo)
	txUC := usecase.NewTransactionUseCase(accountRepo, txRepo, idGen)
	assetUC := usecase.NewFixedAssetUseCase(assetRepo, idGen)
	projectUC := usecase.NewProjectUseCase(projectRepo, idGen)
	wipUC := usecase.NewWIPUseCase(projectRepo)
	ledgerUC := usecase.NewLedgerUseCase(snapshots)
	// No cache: every statement request derives from a fresh snapshot.
	statementUC := usecase.NewStatementUseCase(snapshots, nil, time.Minute)
	reconUC := usecase.NewReconciliationUseCase(snapshots, decimal.Zero)
	categoryUC := usecase.NewCashflowCategoryUseCase(accountRepo, categoryRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:        handler.NewAccountHandler(accountUC, categoryUC),
		TransactionHandler:    handler.NewTransactionHandler(txUC, ledgerUC),
		AssetHandler:          handler.NewAssetHandler(assetUC),
		ProjectHandler:        handler.NewProjectHandler(projectUC, wipUC),
		StatementHandler:      handler.NewStatementHandler(statementUC, ledgerUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      redisrepo.NewIdempotencyStore(redisClient),
		Logger:                zerolog.Nop(),
	})
}
