package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// FixedAssetUseCase maintains the fixed-asset register. The register,
// not the ledger, is authoritative for fixed-asset statement totals.
type FixedAssetUseCase struct {
	assetRepo FixedAssetRepository
	idGen     IDGenerator
}

// NewFixedAssetUseCase creates a new FixedAssetUseCase.
func NewFixedAssetUseCase(assetRepo FixedAssetRepository, idGen IDGenerator) *FixedAssetUseCase {
	return &FixedAssetUseCase{
		assetRepo: assetRepo,
		idGen:     idGen,
	}
}

// RegisterAssetInput represents input for registering an acquisition.
type RegisterAssetInput struct {
	AssetName       string
	AcquisitionDate time.Time
	Value           decimal.Decimal
	UsefulLifeYears int
}

// RegisterAsset records an acquisition and computes its current
// depreciation state.
func (uc *FixedAssetUseCase) RegisterAsset(ctx context.Context, input RegisterAssetInput) (*domain.FixedAsset, error) {
	now := time.Now().UTC()

	asset := &domain.FixedAsset{
		ID:              uc.idGen.Generate(),
		AssetName:       input.AssetName,
		AcquisitionDate: input.AcquisitionDate,
		Value:           input.Value,
		UsefulLifeYears: input.UsefulLifeYears,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	asset.Depreciate(now)

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// GetAsset retrieves a register row by ID.
func (uc *FixedAssetUseCase) GetAsset(ctx context.Context, id string) (*domain.FixedAsset, error) {
	return uc.assetRepo.GetByID(ctx, id)
}

// ListAssets returns the full register.
func (uc *FixedAssetUseCase) ListAssets(ctx context.Context) ([]*domain.FixedAsset, error) {
	return uc.assetRepo.List(ctx)
}

// TotalBookValue returns the authoritative fixed-asset total.
func (uc *FixedAssetUseCase) TotalBookValue(ctx context.Context) (decimal.Decimal, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.TotalBookValue(assets), nil
}

// RecalculateDepreciation recomputes every asset's straight-line
// depreciation as of the given time and persists the register. Returns
// the number of assets updated.
func (uc *FixedAssetUseCase) RecalculateDepreciation(ctx context.Context, asOf time.Time) (int, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, asset := range assets {
		before := asset.AccumulatedDepreciation
		asset.Depreciate(asOf)
		if asset.AccumulatedDepreciation.Equal(before) {
			continue
		}
		asset.UpdatedAt = asOf
		if err := uc.assetRepo.Update(ctx, asset); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}
