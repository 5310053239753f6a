package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerYear = 24 * 365

// FixedAsset is a row in the fixed-asset register. The register is the
// authoritative source for fixed-asset totals on the balance sheet;
// ledger balances on fixed-asset account codes are informational only.
type FixedAsset struct {
	ID                      string
	AssetName               string
	AcquisitionDate         time.Time
	Value                   decimal.Decimal
	UsefulLifeYears         int
	AccumulatedDepreciation decimal.Decimal
	BookValue               decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Validate checks the register invariants.
func (a *FixedAsset) Validate() error {
	if a.Value.IsNegative() {
		return fmt.Errorf("%w: asset %s has value %s", ErrInvalidAssetValue, a.ID, a.Value)
	}
	if a.UsefulLifeYears < 0 {
		return fmt.Errorf("%w: asset %s has useful life %d", ErrInvalidUsefulLife, a.ID, a.UsefulLifeYears)
	}
	return nil
}

// Depreciate recomputes accumulated depreciation and book value with the
// straight-line method as of now. Assets with a zero useful life (land)
// never depreciate. BookValue = Value - AccumulatedDepreciation holds on
// return.
func (a *FixedAsset) Depreciate(now time.Time) {
	if a.UsefulLifeYears == 0 {
		a.AccumulatedDepreciation = decimal.Zero
		a.BookValue = a.Value
		return
	}

	ageYears := now.Sub(a.AcquisitionDate).Hours() / hoursPerYear
	fraction := ageYears / float64(a.UsefulLifeYears)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	a.AccumulatedDepreciation = a.Value.Mul(decimal.NewFromFloat(fraction)).Round(2)
	a.BookValue = a.Value.Sub(a.AccumulatedDepreciation)
}

// TotalBookValue sums the book values of the register.
func TotalBookValue(assets []*FixedAsset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.BookValue)
	}
	return total
}
