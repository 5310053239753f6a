package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a chart account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (code, name, type, category, subcategory)
		VALUES ($1, $2, $3, $4, $5)`,
		account.Code, account.Name, string(account.Type), account.Category, account.Subcategory,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrAccountExists
		}
		return err
	}

	return nil
}

// GetByCode retrieves an account by code.
func (r *AccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT code, name, type, category, subcategory
		FROM accounts
		WHERE code = $1`, code)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// List lists the chart ordered by code.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT code, name, type, category, subcategory
		FROM accounts
		ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account     domain.Account
		accountType string
	)
	if err := row.Scan(&account.Code, &account.Name, &accountType, &account.Category, &account.Subcategory); err != nil {
		return nil, err
	}
	account.Type = domain.AccountType(accountType)

	return &account, nil
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
