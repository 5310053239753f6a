package usecase

import "github.com/shopspring/decimal"

const (
	// WIPAccountCode is the ledger account that mirrors work in
	// progress. Its balance is informational; project-derived WIP is
	// authoritative.
	WIPAccountCode = "1301"

	// Reconciliation areas.
	AreaFixedAssets = "fixed_assets"
	AreaWIP         = "wip"
)

var (
	// DefaultDriftTolerance is the ledger-vs-register drift, in
	// currency units, above which a reconciliation warning is raised.
	DefaultDriftTolerance = decimal.NewFromInt(100)

	// balanceEpsilon bounds the rounding slack allowed before the
	// balance sheet equation is considered broken.
	balanceEpsilon = decimal.RequireFromString("0.01")
)
