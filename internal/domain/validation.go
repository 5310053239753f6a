package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountCode = errors.New("invalid account code")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MaxAccountCodeLength = 16
	MaxAmount            = "1000000000000" // 1 trillion
)

// ValidateAccountCode validates a chart-of-accounts code.
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidAccountCode)
	}

	if len(code) > MaxAccountCodeLength {
		return fmt.Errorf("%w: code exceeds %d characters", ErrInvalidAccountCode, MaxAccountCodeLength)
	}

	for _, r := range code {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') && r != '-' {
			return fmt.Errorf("%w: code contains forbidden character %q", ErrInvalidAccountCode, r)
		}
	}

	return nil
}

// ValidateAccountName validates an account name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateAmount validates a posted amount. Amounts are stored
// non-negative; sign is derived from the transaction type.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrMalformedAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateDateRange validates an optional statement period. Zero values
// mean an open end.
func ValidateDateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	if to.Before(from) {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
