package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// TransactionUseCase handles ledger postings.
type TransactionUseCase struct {
	accountRepo AccountRepository
	txRepo      TransactionRepository
	idGen       IDGenerator
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(accountRepo AccountRepository, txRepo TransactionRepository, idGen IDGenerator) *TransactionUseCase {
	return &TransactionUseCase{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		idGen:       idGen,
	}
}

// PostTransactionInput represents input for posting a transaction.
type PostTransactionInput struct {
	Date        time.Time
	Type        domain.TxType
	AccountCode string
	Amount      decimal.Decimal
	Description string
	ProjectID   string
}

// PostTransaction validates and stores a new posting. The referenced
// account must exist; amounts are stored non-negative.
func (uc *TransactionUseCase) PostTransaction(ctx context.Context, input PostTransactionInput) (*domain.Transaction, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTxType, input.Type)
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByCode(ctx, input.AccountCode); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAccount, input.AccountCode)
		}
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        date,
		Type:        input.Type,
		AccountCode: input.AccountCode,
		Amount:      input.Amount,
		Description: input.Description,
		ProjectID:   input.ProjectID,
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ListByAccount lists postings for one account with pagination.
func (uc *TransactionUseCase) ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error) {
	limit, offset, _ = domain.ValidatePagination(limit, offset)
	return uc.txRepo.ListByAccount(ctx, code, limit, offset)
}
