package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// Reconcile compares a ledger-implied total with its authoritative
// register total. Drift beyond the tolerance is a data-quality warning
// for operators; the ledger is never "repaired" with synthetic
// adjustment postings and the statement always uses the register value.
func Reconcile(area string, ledgerBalance, registerTotal, tolerance decimal.Decimal) domain.DriftResult {
	drift := ledgerBalance.Sub(registerTotal)
	return domain.DriftResult{
		Area:          area,
		LedgerBalance: ledgerBalance,
		RegisterTotal: registerTotal,
		Drift:         drift,
		Tolerance:     tolerance,
		OK:            drift.Abs().LessThanOrEqual(tolerance),
	}
}

// ledgerImpliedTotals sums the ledger balances that shadow the two
// derived registers: every FixedAsset-typed account, and the WIP
// account.
func ledgerImpliedTotals(chart *domain.Chart, balances map[string]decimal.Decimal) (fixedAssets, wip decimal.Decimal) {
	fixedAssets = decimal.Zero
	wip = decimal.Zero

	for _, a := range chart.Accounts() {
		switch {
		case a.Type == domain.TypeFixedAsset:
			fixedAssets = fixedAssets.Add(balances[a.Code])
		case a.Code == WIPAccountCode:
			wip = wip.Add(balances[a.Code])
		}
	}

	return fixedAssets, wip
}

// ReconciliationReport is the operator-facing drift report.
type ReconciliationReport struct {
	Results    []domain.DriftResult `json:"results"`
	Consistent bool                 `json:"consistent"`
	CheckedAt  time.Time            `json:"checkedAt"`
}

// ReconciliationUseCase detects drift between the general ledger and
// the derived registers.
type ReconciliationUseCase struct {
	snapshots SnapshotSource
	tolerance decimal.Decimal
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(snapshots SnapshotSource, tolerance decimal.Decimal) *ReconciliationUseCase {
	if tolerance.IsZero() {
		tolerance = DefaultDriftTolerance
	}
	return &ReconciliationUseCase{
		snapshots: snapshots,
		tolerance: tolerance,
	}
}

// Report reconciles both overlapping areas over one snapshot.
func (uc *ReconciliationUseCase) Report(ctx context.Context) (*ReconciliationReport, error) {
	snap, err := uc.snapshots.Load(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	results, err := reconcileSnapshot(snap, uc.tolerance)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		Results:    results,
		Consistent: true,
		CheckedAt:  time.Now().UTC(),
	}
	for _, r := range results {
		if !r.OK {
			report.Consistent = false
		}
	}

	return report, nil
}

// reconcileSnapshot runs both area comparisons against one snapshot.
func reconcileSnapshot(snap *domain.Snapshot, tolerance decimal.Decimal) ([]domain.DriftResult, error) {
	chart := snap.Chart()
	balances, err := AccountBalances(chart, snap.Transactions)
	if err != nil {
		return nil, err
	}

	ledgerFixedAssets, ledgerWIP := ledgerImpliedTotals(chart, balances)
	valuation := domain.ValueProjects(snap.Projects)

	return []domain.DriftResult{
		Reconcile(AreaFixedAssets, ledgerFixedAssets, domain.TotalBookValue(snap.FixedAssets), tolerance),
		Reconcile(AreaWIP, ledgerWIP, valuation.Net(), tolerance),
	}, nil
}
