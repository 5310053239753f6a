package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// AccountResponse represents a chart account in API responses.
type AccountResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Code:        a.Code,
		Name:        a.Name,
		Type:        string(a.Type),
		Category:    a.Category,
		Subcategory: a.Subcategory,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account list.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a ledger posting in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	AccountCode string          `json:"account_code"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ProjectID   string          `json:"project_id,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(tx *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Type:        string(tx.Type),
		AccountCode: tx.AccountCode,
		Amount:      tx.Amount,
		Description: tx.Description,
		ProjectID:   tx.ProjectID,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = TransactionFromDomain(tx)
	}
	return result
}

// ListTransactionsResponse wraps a transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// BalanceResponse represents a single account balance.
type BalanceResponse struct {
	AccountCode string          `json:"account_code"`
	Balance     decimal.Decimal `json:"balance"`
}

// FixedAssetResponse represents a register row in API responses.
type FixedAssetResponse struct {
	ID                      string          `json:"id"`
	AssetName               string          `json:"asset_name"`
	AcquisitionDate         time.Time       `json:"acquisition_date"`
	Value                   decimal.Decimal `json:"value"`
	UsefulLifeYears         int             `json:"useful_life_years"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// FixedAssetFromDomain converts a domain asset to a response.
func FixedAssetFromDomain(a *domain.FixedAsset) *FixedAssetResponse {
	return &FixedAssetResponse{
		ID:                      a.ID,
		AssetName:               a.AssetName,
		AcquisitionDate:         a.AcquisitionDate,
		Value:                   a.Value,
		UsefulLifeYears:         a.UsefulLifeYears,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		BookValue:               a.BookValue,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// FixedAssetsFromDomain converts domain assets to responses.
func FixedAssetsFromDomain(assets []*domain.FixedAsset) []*FixedAssetResponse {
	result := make([]*FixedAssetResponse, len(assets))
	for i, a := range assets {
		result[i] = FixedAssetFromDomain(a)
	}
	return result
}

// ListFixedAssetsResponse wraps the register with its authoritative
// total.
type ListFixedAssetsResponse struct {
	Assets         []*FixedAssetResponse `json:"assets"`
	TotalBookValue decimal.Decimal       `json:"total_book_value"`
}

// DepreciationRunResponse reports a depreciation recalculation.
type DepreciationRunResponse struct {
	AsOf          time.Time `json:"as_of"`
	AssetsUpdated int       `json:"assets_updated"`
}

// ProjectCostResponse represents a project cost record.
type ProjectCostResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ProjectCostFromDomain converts a domain cost record to a response.
func ProjectCostFromDomain(c *domain.ProjectCost) *ProjectCostResponse {
	return &ProjectCostResponse{
		ID:          c.ID,
		Amount:      c.Amount,
		Date:        c.Date,
		Status:      c.Status,
		Description: c.Description,
	}
}

// BillingResponse represents a project billing record.
type BillingResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
}

// BillingFromDomain converts a domain billing record to a response.
func BillingFromDomain(b *domain.Billing) *BillingResponse {
	return &BillingResponse{
		ID:          b.ID,
		Amount:      b.Amount,
		Date:        b.Date,
		Status:      b.Status,
		Description: b.Description,
	}
}

// ProjectResponse represents a project with its records and derived
// WIP.
type ProjectResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Status   string                 `json:"status,omitempty"`
	Costs    []*ProjectCostResponse `json:"costs"`
	Billings []*BillingResponse     `json:"billings"`
	WIP      decimal.Decimal        `json:"wip"`
}

// ProjectFromDomain converts a domain project to a response.
func ProjectFromDomain(p *domain.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:       p.ID,
		Name:     p.Name,
		Status:   p.Status,
		Costs:    make([]*ProjectCostResponse, len(p.Costs)),
		Billings: make([]*BillingResponse, len(p.Billings)),
		WIP:      p.WIP(),
	}
	for i, c := range p.Costs {
		resp.Costs[i] = &ProjectCostResponse{
			ID:          c.ID,
			Amount:      c.Amount,
			Date:        c.Date,
			Status:      c.Status,
			Description: c.Description,
		}
	}
	for i, b := range p.Billings {
		resp.Billings[i] = &BillingResponse{
			ID:          b.ID,
			Amount:      b.Amount,
			Date:        b.Date,
			Status:      b.Status,
			Description: b.Description,
		}
	}
	return resp
}

// ProjectsFromDomain converts domain projects to responses.
func ProjectsFromDomain(projects []*domain.Project) []*ProjectResponse {
	result := make([]*ProjectResponse, len(projects))
	for i, p := range projects {
		result[i] = ProjectFromDomain(p)
	}
	return result
}

// ListProjectsResponse wraps a project list.
type ListProjectsResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int64              `json:"total"`
}

// WIPValuationResponse represents the aggregate WIP valuation.
type WIPValuationResponse struct {
	Projects         []ProjectWIPResponse `json:"projects"`
	TotalAsset       decimal.Decimal      `json:"total_asset"`
	TotalOverbilling decimal.Decimal      `json:"total_overbilling"`
	Net              decimal.Decimal      `json:"net"`
}

// ProjectWIPResponse represents one project's WIP position.
type ProjectWIPResponse struct {
	ProjectID string          `json:"project_id"`
	Name      string          `json:"name"`
	WIP       decimal.Decimal `json:"wip"`
}

// WIPValuationFromDomain converts a domain valuation to a response.
func WIPValuationFromDomain(v *domain.WIPValuation) *WIPValuationResponse {
	resp := &WIPValuationResponse{
		Projects:         make([]ProjectWIPResponse, len(v.Projects)),
		TotalAsset:       v.TotalAsset,
		TotalOverbilling: v.TotalOverbilling,
		Net:              v.Net(),
	}
	for i, p := range v.Projects {
		resp.Projects[i] = ProjectWIPResponse{
			ProjectID: p.ProjectID,
			Name:      p.Name,
			WIP:       p.WIP,
		}
	}
	return resp
}

// CashflowCategoryResponse represents a classification override.
type CashflowCategoryResponse struct {
	AccountCode string `json:"account_code"`
	Activity    string `json:"activity"`
	Subcategory string `json:"subcategory,omitempty"`
}

// CashflowCategoryFromDomain converts a domain category to a response.
func CashflowCategoryFromDomain(c *domain.CashflowCategory) *CashflowCategoryResponse {
	return &CashflowCategoryResponse{
		AccountCode: c.AccountCode,
		Activity:    string(c.Activity),
		Subcategory: c.Subcategory,
	}
}

// CashflowCategoriesFromDomain converts domain categories to responses.
func CashflowCategoriesFromDomain(categories []*domain.CashflowCategory) []*CashflowCategoryResponse {
	result := make([]*CashflowCategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CashflowCategoryFromDomain(c)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
