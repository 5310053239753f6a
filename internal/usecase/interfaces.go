package usecase

import (
	"context"
	"time"

	"github.com/iho/finbooks/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

// TransactionRepository defines data access for ledger postings.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error)
}

// FixedAssetRepository defines data access for the fixed-asset register.
type FixedAssetRepository interface {
	Create(ctx context.Context, asset *domain.FixedAsset) error
	GetByID(ctx context.Context, id string) (*domain.FixedAsset, error)
	Update(ctx context.Context, asset *domain.FixedAsset) error
	List(ctx context.Context) ([]*domain.FixedAsset, error)
}

// ProjectRepository defines data access for projects and their nested
// costs and billings.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	AddCost(ctx context.Context, cost *domain.ProjectCost) error
	AddBilling(ctx context.Context, billing *domain.Billing) error
}

// CashflowCategoryRepository defines data access for explicit cash flow
// classification overrides.
type CashflowCategoryRepository interface {
	Upsert(ctx context.Context, category *domain.CashflowCategory) error
	List(ctx context.Context) ([]*domain.CashflowCategory, error)
}

// SnapshotSource loads one consistent snapshot of all engine inputs.
// Implementations must read everything inside a single database
// transaction; re-querying mid-computation splits the totals. Zero from
// and to mean an unbounded period.
type SnapshotSource interface {
	Load(ctx context.Context, from, to time.Time) (*domain.Snapshot, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
