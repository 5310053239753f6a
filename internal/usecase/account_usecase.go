package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/finbooks/internal/domain"
)

// AccountUseCase handles chart-of-accounts provisioning.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating a chart account.
type CreateAccountInput struct {
	Code        string
	Name        string
	Type        domain.AccountType
	Category    string
	Subcategory string
}

// CreateAccount adds an account to the chart.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountCode(input.Code); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("invalid account type %q", input.Type)
	}

	if _, err := uc.accountRepo.GetByCode(ctx, input.Code); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountExists, input.Code)
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	account := &domain.Account{
		Code:        input.Code,
		Name:        input.Name,
		Type:        input.Type,
		Category:    input.Category,
		Subcategory: input.Subcategory,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by code.
func (uc *AccountUseCase) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	return uc.accountRepo.GetByCode(ctx, code)
}

// ListAccounts returns the full chart ordered by code.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}
