package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finbooks/internal/adapter/http/dto"
	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// CashflowCategoryService defines classification override behavior
// needed by AccountHandler.
type CashflowCategoryService interface {
	SetCategory(ctx context.Context, input usecase.SetCategoryInput) (*domain.CashflowCategory, error)
	ListCategories(ctx context.Context) ([]*domain.CashflowCategory, error)
}

// AccountHandler handles chart-of-accounts HTTP requests.
type AccountHandler struct {
	accountUC  AccountService
	categoryUC CashflowCategoryService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, categoryUC CashflowCategoryService) *AccountHandler {
	return &AccountHandler{
		accountUC:  accountUC,
		categoryUC: categoryUC,
	}
}

// Create adds an account to the chart.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by code.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists the chart of accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// SetCashflowCategory overrides the cash flow classification of an
// account.
func (h *AccountHandler) SetCashflowCategory(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	var req dto.SetCashflowCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.SetCategory(r.Context(), req.ToUseCaseInput(code))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set cashflow category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashflowCategoryFromDomain(category))
}

// ListCashflowCategories lists classification overrides.
func (h *AccountHandler) ListCashflowCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUC.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cashflow categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashflowCategoriesFromDomain(categories))
}
