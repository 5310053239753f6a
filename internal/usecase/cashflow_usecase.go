package usecase

import (
	"context"
	"fmt"

	"github.com/iho/finbooks/internal/domain"
)

// CashflowCategoryUseCase manages explicit per-account cash flow
// classification overrides.
type CashflowCategoryUseCase struct {
	accountRepo  AccountRepository
	categoryRepo CashflowCategoryRepository
}

// NewCashflowCategoryUseCase creates a new CashflowCategoryUseCase.
func NewCashflowCategoryUseCase(accountRepo AccountRepository, categoryRepo CashflowCategoryRepository) *CashflowCategoryUseCase {
	return &CashflowCategoryUseCase{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// SetCategoryInput represents input for setting a classification
// override.
type SetCategoryInput struct {
	AccountCode string
	Activity    domain.Activity
	Subcategory string
}

// SetCategory upserts the classification override for an account.
func (uc *CashflowCategoryUseCase) SetCategory(ctx context.Context, input SetCategoryInput) (*domain.CashflowCategory, error) {
	if !input.Activity.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidActivity, input.Activity)
	}
	if _, err := uc.accountRepo.GetByCode(ctx, input.AccountCode); err != nil {
		return nil, err
	}

	category := &domain.CashflowCategory{
		AccountCode: input.AccountCode,
		Activity:    input.Activity,
		Subcategory: input.Subcategory,
	}

	if err := uc.categoryRepo.Upsert(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories returns all classification overrides.
func (uc *CashflowCategoryUseCase) ListCategories(ctx context.Context) ([]*domain.CashflowCategory, error) {
	return uc.categoryRepo.List(ctx)
}
