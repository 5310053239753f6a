package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

// CreateAccountRequest represents a request to create a chart account.
type CreateAccountRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:        r.Code,
		Name:        r.Name,
		Type:        domain.AccountType(r.Type),
		Category:    r.Category,
		Subcategory: r.Subcategory,
	}
}

// PostTransactionRequest represents a request to post a ledger
// transaction.
type PostTransactionRequest struct {
	Date        *time.Time      `json:"date,omitempty"`
	Type        string          `json:"type"`
	AccountCode string          `json:"account_code"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ProjectID   string          `json:"project_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *PostTransactionRequest) ToUseCaseInput() usecase.PostTransactionInput {
	input := usecase.PostTransactionInput{
		Type:        domain.TxType(r.Type),
		AccountCode: r.AccountCode,
		Amount:      r.Amount,
		Description: r.Description,
		ProjectID:   r.ProjectID,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// RegisterAssetRequest represents a request to register a fixed-asset
// acquisition.
type RegisterAssetRequest struct {
	AssetName       string          `json:"asset_name"`
	AcquisitionDate time.Time       `json:"acquisition_date"`
	Value           decimal.Decimal `json:"value"`
	UsefulLifeYears int             `json:"useful_life_years"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterAssetRequest) ToUseCaseInput() usecase.RegisterAssetInput {
	return usecase.RegisterAssetInput{
		AssetName:       r.AssetName,
		AcquisitionDate: r.AcquisitionDate,
		Value:           r.Value,
		UsefulLifeYears: r.UsefulLifeYears,
	}
}

// CreateProjectRequest represents a request to create a project.
type CreateProjectRequest struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProjectRequest) ToUseCaseInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		Name:   r.Name,
		Status: r.Status,
	}
}

// RecordEntryRequest represents a request to record a project cost or
// billing.
type RecordEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date,omitempty"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input for the given project.
func (r *RecordEntryRequest) ToUseCaseInput(projectID string) usecase.RecordEntryInput {
	input := usecase.RecordEntryInput{
		ProjectID:   projectID,
		Amount:      r.Amount,
		Status:      r.Status,
		Description: r.Description,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// SetCashflowCategoryRequest represents a request to override the cash
// flow classification of an account.
type SetCashflowCategoryRequest struct {
	Activity    string `json:"activity"`
	Subcategory string `json:"subcategory,omitempty"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *SetCashflowCategoryRequest) ToUseCaseInput(accountCode string) usecase.SetCategoryInput {
	return usecase.SetCategoryInput{
		AccountCode: accountCode,
		Activity:    domain.Activity(r.Activity),
		Subcategory: r.Subcategory,
	}
}
