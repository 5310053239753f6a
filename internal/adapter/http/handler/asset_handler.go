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

// AssetService defines the behavior needed by AssetHandler.
type AssetService interface {
	RegisterAsset(ctx context.Context, input usecase.RegisterAssetInput) (*domain.FixedAsset, error)
	GetAsset(ctx context.Context, id string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context) ([]*domain.FixedAsset, error)
	TotalBookValue(ctx context.Context) (decimal.Decimal, error)
	RecalculateDepreciation(ctx context.Context, asOf time.Time) (int, error)
}

// AssetHandler handles fixed-asset register HTTP requests.
type AssetHandler struct {
	assetUC AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetUC AssetService) *AssetHandler {
	return &AssetHandler{assetUC: assetUC}
}

// Register records a fixed-asset acquisition.
func (h *AssetHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetUC.RegisterAsset(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register asset", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.FixedAssetFromDomain(asset))
}

// Get retrieves one register row.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing asset ID", "")
		return
	}

	asset, err := h.assetUC.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get asset", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FixedAssetFromDomain(asset))
}

// List returns the register with its authoritative book-value total.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetUC.ListAssets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets", err.Error())
		return
	}

	total, err := h.assetUC.TotalBookValue(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to total register", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListFixedAssetsResponse{
		Assets:         dto.FixedAssetsFromDomain(assets),
		TotalBookValue: total,
	})
}

// Depreciate recomputes straight-line depreciation across the register.
func (h *AssetHandler) Depreciate(w http.ResponseWriter, r *http.Request) {
	asOf := parseTimeQuery(r, "as_of")
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	updated, err := h.assetUC.RecalculateDepreciation(r.Context(), asOf)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to recalculate depreciation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepreciationRunResponse{
		AsOf:          asOf,
		AssetsUpdated: updated,
	})
}
