package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

// SnapshotRepository implements usecase.SnapshotSource. Every query
// runs inside one repeatable-read transaction so that concurrent writes
// cannot split the derived totals.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Load reads one consistent snapshot of all derivation inputs. Zero
// from and to mean an unbounded period. Serialization conflicts are
// retried with backoff.
func (r *SnapshotRepository) Load(ctx context.Context, from, to time.Time) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := r.retrier.Retry(ctx, func() error {
		var loadErr error
		snap, loadErr = r.load(ctx, from, to)
		return loadErr
	})

	return snap, err
}

func (r *SnapshotRepository) load(ctx context.Context, from, to time.Time) (*domain.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	snap := &domain.Snapshot{
		AsOf: time.Now().UTC(),
		From: from,
		To:   to,
	}
	if !to.IsZero() {
		snap.AsOf = to
	}

	if snap.Accounts, err = loadAccounts(ctx, tx); err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if snap.Transactions, err = loadTransactions(ctx, tx, from, to); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if snap.FixedAssets, err = loadFixedAssets(ctx, tx); err != nil {
		return nil, fmt.Errorf("load fixed assets: %w", err)
	}
	if snap.Projects, err = loadProjects(ctx, tx); err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	if snap.CashflowCategories, err = loadCategories(ctx, tx); err != nil {
		return nil, fmt.Errorf("load cashflow categories: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot transaction: %w", err)
	}

	return snap, nil
}

func loadAccounts(ctx context.Context, tx pgx.Tx) ([]*domain.Account, error) {
	rows, err := tx.Query(ctx, `
		SELECT code, name, type, category, subcategory
		FROM accounts
		ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func loadTransactions(ctx context.Context, tx pgx.Tx, from, to time.Time) ([]*domain.Transaction, error) {
	rows, err := tx.Query(ctx, dateRangeQuery,
		timeToPgTimestamptz(from), from.IsZero(),
		timeToPgTimestamptz(to), to.IsZero(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func loadFixedAssets(ctx context.Context, tx pgx.Tx) ([]*domain.FixedAsset, error) {
	rows, err := tx.Query(ctx, listAssetsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFixedAssets(rows)
}

func loadProjects(ctx context.Context, tx pgx.Tx) ([]*domain.Project, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, status
		FROM projects
		ORDER BY id`)
	if err != nil {
		return nil, err
	}

	projects, err := collectProjects(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := attachRecords(ctx, tx, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func loadCategories(ctx context.Context, tx pgx.Tx) ([]*domain.CashflowCategory, error) {
	rows, err := tx.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCategories(rows)
}
