package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/finbooks/internal/domain"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	BalanceSheet(ctx context.Context, from, to time.Time) (*domain.BalanceSheet, error)
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowStatement, error)
}

// TrialBalanceService exposes the ledger-wide trial balance.
type TrialBalanceService interface {
	TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error)
}

// StatementHandler handles derived-statement HTTP requests. Statement
// types carry their own JSON shape, so no DTO layer sits in between.
type StatementHandler struct {
	statementUC StatementService
	ledgerUC    TrialBalanceService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService, ledgerUC TrialBalanceService) *StatementHandler {
	return &StatementHandler{
		statementUC: statementUC,
		ledgerUC:    ledgerUC,
	}
}

// BalanceSheet derives the balance sheet for the requested period.
func (h *StatementHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	from := parseTimeQuery(r, "from")
	to := parseTimeQuery(r, "to")

	bs, err := h.statementUC.BalanceSheet(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to derive balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bs)
}

// CashFlow derives the cash flow statement for the requested period.
func (h *StatementHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	from := parseTimeQuery(r, "from")
	to := parseTimeQuery(r, "to")

	cf, err := h.statementUC.CashFlow(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to derive cash flow statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, cf)
}

// TrialBalance lists every account balance in debit/credit columns.
func (h *StatementHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	from := parseTimeQuery(r, "from")
	to := parseTimeQuery(r, "to")

	tb, err := h.ledgerUC.TrialBalance(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to derive trial balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tb)
}
