package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/adapter/http/dto"
	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	PostTransaction(ctx context.Context, input usecase.PostTransactionInput) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error)
}

// BalanceService exposes per-account ledger balances.
type BalanceService interface {
	AccountBalance(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, error)
}

// TransactionHandler handles ledger posting HTTP requests.
type TransactionHandler struct {
	txUC     TransactionService
	ledgerUC BalanceService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService, ledgerUC BalanceService) *TransactionHandler {
	return &TransactionHandler{
		txUC:     txUC,
		ledgerUC: ledgerUC,
	}
}

// Create posts a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.txUC.PostTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// ListByAccount lists postings for one account.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	txs, err := h.txUC.ListByAccount(r.Context(), code, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Total:        int64(len(txs)),
	})
}

// Balance returns the signed ledger balance of one account over the
// requested period.
func (h *TransactionHandler) Balance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	from := parseTimeQuery(r, "from")
	to := parseTimeQuery(r, "to")

	balance, err := h.ledgerUC.AccountBalance(r.Context(), code, from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountCode: code,
		Balance:     balance,
	})
}
