package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

// FixedAssetRepository implements usecase.FixedAssetRepository.
type FixedAssetRepository struct {
	pool *pgxpool.Pool
}

// NewFixedAssetRepository creates a new FixedAssetRepository.
func NewFixedAssetRepository(pool *pgxpool.Pool) *FixedAssetRepository {
	return &FixedAssetRepository{pool: pool}
}

// Create inserts a register row.
func (r *FixedAssetRepository) Create(ctx context.Context, asset *domain.FixedAsset) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO fixed_assets (
			id, asset_name, acquisition_date, value, useful_life_years,
			accumulated_depreciation, book_value, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		asset.ID, asset.AssetName, timeToPgTimestamptz(asset.AcquisitionDate),
		decimalToNumeric(asset.Value), asset.UsefulLifeYears,
		decimalToNumeric(asset.AccumulatedDepreciation), decimalToNumeric(asset.BookValue),
		timeToPgTimestamptz(asset.CreatedAt), timeToPgTimestamptz(asset.UpdatedAt),
	)

	return err
}

// GetByID retrieves a register row by ID.
func (r *FixedAssetRepository) GetByID(ctx context.Context, id string) (*domain.FixedAsset, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, asset_name, acquisition_date, value, useful_life_years,
		       accumulated_depreciation, book_value, created_at, updated_at
		FROM fixed_assets
		WHERE id = $1`, id)

	asset, err := scanFixedAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}

	return asset, nil
}

// Update persists a recomputed depreciation state.
func (r *FixedAssetRepository) Update(ctx context.Context, asset *domain.FixedAsset) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE fixed_assets
		SET accumulated_depreciation = $2, book_value = $3, updated_at = $4
		WHERE id = $1`,
		asset.ID, decimalToNumeric(asset.AccumulatedDepreciation),
		decimalToNumeric(asset.BookValue), timeToPgTimestamptz(asset.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}

	return nil
}

// List returns the full register ordered by acquisition date.
func (r *FixedAssetRepository) List(ctx context.Context) ([]*domain.FixedAsset, error) {
	rows, err := r.pool.Query(ctx, listAssetsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFixedAssets(rows)
}

const listAssetsQuery = `
	SELECT id, asset_name, acquisition_date, value, useful_life_years,
	       accumulated_depreciation, book_value, created_at, updated_at
	FROM fixed_assets
	ORDER BY acquisition_date, id`

func scanFixedAsset(row pgx.Row) (*domain.FixedAsset, error) {
	var (
		asset                domain.FixedAsset
		acquisitionDate      pgtype.Timestamptz
		value                pgtype.Numeric
		accumulated          pgtype.Numeric
		bookValue            pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&asset.ID, &asset.AssetName, &acquisitionDate, &value, &asset.UsefulLifeYears,
		&accumulated, &bookValue, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	asset.AcquisitionDate = acquisitionDate.Time
	asset.Value = numericToDecimal(value)
	asset.AccumulatedDepreciation = numericToDecimal(accumulated)
	asset.BookValue = numericToDecimal(bookValue)
	asset.CreatedAt = createdAt.Time
	asset.UpdatedAt = updatedAt.Time

	return &asset, nil
}

func collectFixedAssets(rows pgx.Rows) ([]*domain.FixedAsset, error) {
	assets := make([]*domain.FixedAsset, 0)
	for rows.Next() {
		asset, err := scanFixedAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}
