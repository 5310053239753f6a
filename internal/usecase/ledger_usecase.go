package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// AccountBalance folds the transactions posted to a single account into
// its signed balance. The fold is commutative, so transaction order does
// not matter. Fails on an unknown account code or a malformed amount,
// identifying the offending record.
func AccountBalance(chart *domain.Chart, code string, txs []*domain.Transaction) (decimal.Decimal, error) {
	accountType, err := chart.AccountType(code)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, tx := range txs {
		if tx.AccountCode != code {
			continue
		}
		if err := tx.Validate(); err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(tx.Contribution(accountType))
	}

	return balance, nil
}

// AccountBalances folds all transactions into per-account balances in a
// single pass. Every chart account appears in the result, zero-balance
// accounts included.
func AccountBalances(chart *domain.Chart, txs []*domain.Transaction) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, chart.Len())
	for _, a := range chart.Accounts() {
		balances[a.Code] = decimal.Zero
	}

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		accountType, err := chart.AccountType(tx.AccountCode)
		if err != nil {
			return nil, err
		}
		balances[tx.AccountCode] = balances[tx.AccountCode].Add(tx.Contribution(accountType))
	}

	return balances, nil
}

// LedgerUseCase derives ledger-wide views from a consistent snapshot.
type LedgerUseCase struct {
	snapshots SnapshotSource
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(snapshots SnapshotSource) *LedgerUseCase {
	return &LedgerUseCase{snapshots: snapshots}
}

// AccountBalance returns the balance of one account over the period.
func (uc *LedgerUseCase) AccountBalance(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, error) {
	if err := domain.ValidateDateRange(from, to); err != nil {
		return decimal.Zero, err
	}

	snap, err := uc.snapshots.Load(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	return AccountBalance(snap.Chart(), code, snap.Transactions)
}

// TrialBalance lists every account balance in debit/credit columns. A
// positive balance sits on the account's normal side; a negative one
// flips to the opposite column.
func (uc *LedgerUseCase) TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error) {
	if err := domain.ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	snap, err := uc.snapshots.Load(ctx, from, to)
	if err != nil {
		return nil, err
	}

	chart := snap.Chart()
	balances, err := AccountBalances(chart, snap.Transactions)
	if err != nil {
		return nil, err
	}

	tb := &domain.TrialBalance{
		AsOf:        snap.AsOf,
		Rows:        make([]domain.TrialBalanceRow, 0, chart.Len()),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, a := range chart.Accounts() {
		row := domain.TrialBalanceRow{
			AccountCode: a.Code,
			Name:        a.Name,
			Type:        a.Type,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}

		balance := balances[a.Code]
		side := a.Type.NormalSide()
		if balance.IsNegative() {
			balance = balance.Neg()
			if side == domain.SideDebit {
				side = domain.SideCredit
			} else {
				side = domain.SideDebit
			}
		}

		if side == domain.SideDebit {
			row.Debit = balance
		} else {
			row.Credit = balance
		}

		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}

	return tb, nil
}
