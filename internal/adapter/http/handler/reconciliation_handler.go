package handler

import (
	"context"
	"net/http"

	"github.com/iho/finbooks/internal/usecase"
)

// ReconciliationService defines the behavior needed by
// ReconciliationHandler.
type ReconciliationService interface {
	Report(ctx context.Context) (*usecase.ReconciliationReport, error)
}

// ReconciliationHandler handles ledger-vs-register drift requests.
type ReconciliationHandler struct {
	reconUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconUC: reconUC}
}

// Report runs both area comparisons and returns the drift report.
func (h *ReconciliationHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconUC.Report(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
