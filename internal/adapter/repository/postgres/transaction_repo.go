package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a ledger posting.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (id, date, type, account_code, amount, description, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tx.ID, timeToPgTimestamptz(tx.Date), string(tx.Type), tx.AccountCode,
		decimalToNumeric(tx.Amount), tx.Description, nullableText(tx.ProjectID),
	)

	return err
}

// ListByAccount lists postings for one account, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, type, account_code, amount, description, project_id
		FROM transactions
		WHERE account_code = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3`,
		code, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByDateRange lists postings in a period. Zero bounds are open.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, dateRangeQuery,
		timeToPgTimestamptz(from), from.IsZero(),
		timeToPgTimestamptz(to), to.IsZero(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

const dateRangeQuery = `
	SELECT id, date, type, account_code, amount, description, project_id
	FROM transactions
	WHERE ($2 OR date >= $1)
	  AND ($4 OR date <= $3)
	ORDER BY date, id`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx        domain.Transaction
		txType    string
		date      pgtype.Timestamptz
		amount    pgtype.Numeric
		projectID pgtype.Text
	)
	if err := row.Scan(&tx.ID, &date, &txType, &tx.AccountCode, &amount, &tx.Description, &projectID); err != nil {
		return nil, err
	}

	tx.Date = date.Time
	tx.Type = domain.TxType(txType)
	tx.Amount = numericToDecimal(amount)
	tx.ProjectID = projectID.String

	return &tx, nil
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
