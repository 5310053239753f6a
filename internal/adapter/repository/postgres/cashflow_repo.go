package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

// CashflowCategoryRepository implements
// usecase.CashflowCategoryRepository.
type CashflowCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCashflowCategoryRepository creates a new
// CashflowCategoryRepository.
func NewCashflowCategoryRepository(pool *pgxpool.Pool) *CashflowCategoryRepository {
	return &CashflowCategoryRepository{pool: pool}
}

// Upsert stores a classification override, replacing any existing one
// for the account.
func (r *CashflowCategoryRepository) Upsert(ctx context.Context, category *domain.CashflowCategory) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cashflow_categories (account_code, activity, subcategory)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_code)
		DO UPDATE SET activity = EXCLUDED.activity, subcategory = EXCLUDED.subcategory`,
		category.AccountCode, string(category.Activity), category.Subcategory,
	)

	return err
}

// List returns all classification overrides.
func (r *CashflowCategoryRepository) List(ctx context.Context) ([]*domain.CashflowCategory, error) {
	rows, err := r.pool.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCategories(rows)
}

const listCategoriesQuery = `
	SELECT account_code, activity, subcategory
	FROM cashflow_categories
	ORDER BY account_code`

func scanCategory(row pgx.Row) (*domain.CashflowCategory, error) {
	var (
		category domain.CashflowCategory
		activity string
	)
	if err := row.Scan(&category.AccountCode, &activity, &category.Subcategory); err != nil {
		return nil, err
	}
	category.Activity = domain.Activity(activity)

	return &category, nil
}

func collectCategories(rows pgx.Rows) ([]*domain.CashflowCategory, error) {
	categories := make([]*domain.CashflowCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
