package domain

import "errors"

var (
	// Chart of accounts errors
	ErrUnknownAccount  = errors.New("unknown account code")
	ErrAccountExists   = errors.New("account code already exists")
	ErrAccountNotFound = errors.New("account not found")

	// Posting errors
	ErrMalformedAmount = errors.New("amount must be non-negative")
	ErrInvalidTxType   = errors.New("invalid transaction type")

	// Register errors
	ErrAssetNotFound     = errors.New("fixed asset not found")
	ErrInvalidAssetValue = errors.New("asset value must be non-negative")
	ErrInvalidUsefulLife = errors.New("useful life must be zero or positive")
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidActivity   = errors.New("invalid cashflow activity")
)
