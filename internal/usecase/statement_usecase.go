package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// DeriveBalanceSheet assembles the balance sheet from one snapshot. The
// fixed-asset register and project-derived WIP are authoritative for
// their lines; ledger balances on those areas only feed the drift
// warnings.
func DeriveBalanceSheet(snap *domain.Snapshot, tolerance decimal.Decimal) (*domain.BalanceSheet, error) {
	chart := snap.Chart()
	balances, err := AccountBalances(chart, snap.Transactions)
	if err != nil {
		return nil, err
	}

	valuation := domain.ValueProjects(snap.Projects)
	bookValue := domain.TotalBookValue(snap.FixedAssets)

	bs := &domain.BalanceSheet{
		AsOf:             snap.AsOf,
		NetIncome:        decimal.Zero,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, a := range chart.Accounts() {
		balance := balances[a.Code]

		switch a.Type {
		case domain.TypeAsset:
			if a.Code == WIPAccountCode {
				// Informational mirror of project WIP, replaced by
				// the derived valuation below.
				continue
			}
			bs.Assets = append(bs.Assets, domain.BalanceLine{AccountCode: a.Code, Name: a.Name, Amount: balance})
			bs.TotalAssets = bs.TotalAssets.Add(balance)
		case domain.TypeContraAsset:
			// Stored credit-normal, reported as a negative asset
			// adjustment.
			bs.Assets = append(bs.Assets, domain.BalanceLine{AccountCode: a.Code, Name: a.Name, Amount: balance.Neg()})
			bs.TotalAssets = bs.TotalAssets.Sub(balance)
		case domain.TypeFixedAsset:
			// Informational mirror of the register, replaced below.
		case domain.TypeLiability:
			bs.Liabilities = append(bs.Liabilities, domain.BalanceLine{AccountCode: a.Code, Name: a.Name, Amount: balance})
			bs.TotalLiabilities = bs.TotalLiabilities.Add(balance)
		case domain.TypeEquity:
			bs.Equity = append(bs.Equity, domain.BalanceLine{AccountCode: a.Code, Name: a.Name, Amount: balance})
			bs.TotalEquity = bs.TotalEquity.Add(balance)
		case domain.TypeRevenue:
			bs.NetIncome = bs.NetIncome.Add(balance)
		case domain.TypeExpense:
			bs.NetIncome = bs.NetIncome.Sub(balance)
		}
	}

	bs.Assets = append(bs.Assets, domain.BalanceLine{Name: "Fixed assets at book value (register)", Amount: bookValue})
	bs.TotalAssets = bs.TotalAssets.Add(bookValue)

	bs.Assets = append(bs.Assets, domain.BalanceLine{Name: "Work in progress (projects)", Amount: valuation.TotalAsset})
	bs.TotalAssets = bs.TotalAssets.Add(valuation.TotalAsset)

	if valuation.TotalOverbilling.IsPositive() {
		bs.Liabilities = append(bs.Liabilities, domain.BalanceLine{Name: "Billings in excess of costs", Amount: valuation.TotalOverbilling})
		bs.TotalLiabilities = bs.TotalLiabilities.Add(valuation.TotalOverbilling)
	}

	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity).Add(bs.NetIncome)
	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilitiesAndEquity)
	bs.IsBalanced = bs.Difference.Abs().LessThan(balanceEpsilon)

	ledgerFixedAssets, ledgerWIP := ledgerImpliedTotals(chart, balances)
	for _, drift := range []domain.DriftResult{
		Reconcile(AreaFixedAssets, ledgerFixedAssets, bookValue, tolerance),
		Reconcile(AreaWIP, ledgerWIP, valuation.Net(), tolerance),
	} {
		if !drift.OK {
			bs.Warnings = append(bs.Warnings, drift)
		}
	}

	return bs, nil
}

// DeriveCashFlow assembles the cash flow statement from one snapshot.
// Ledger postings are classified by the explicit category override
// first, then by account type; billings, project costs and fixed-asset
// acquisitions become synthetic entries.
func DeriveCashFlow(snap *domain.Snapshot) (*domain.CashFlowStatement, error) {
	chart := snap.Chart()
	overrides := snap.CategoryIndex()

	cf := &domain.CashFlowStatement{From: snap.From, To: snap.To}

	for _, tx := range snap.Transactions {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		account, err := chart.Get(tx.AccountCode)
		if err != nil {
			return nil, err
		}

		activity, amount, ok := classifyPosting(tx, account, overrides)
		if !ok {
			continue
		}

		cf.Append(activity, domain.CashFlowItem{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      amount,
			AccountCode: tx.AccountCode,
			ProjectID:   tx.ProjectID,
		})
	}

	for _, p := range snap.Projects {
		for _, b := range p.Billings {
			if !inPeriod(b.Date, snap.From, snap.To) {
				continue
			}
			cf.Append(domain.ActivityOperating, domain.CashFlowItem{
				Date:        b.Date,
				Description: entryDescription(b.Description, "Billing: "+p.Name),
				Amount:      b.Amount,
				ProjectID:   p.ID,
			})
		}
		for _, c := range p.Costs {
			if !inPeriod(c.Date, snap.From, snap.To) {
				continue
			}
			cf.Append(domain.ActivityOperating, domain.CashFlowItem{
				Date:        c.Date,
				Description: entryDescription(c.Description, "Project cost: "+p.Name),
				Amount:      c.Amount.Neg(),
				ProjectID:   p.ID,
			})
		}
	}

	for _, asset := range snap.FixedAssets {
		if !inPeriod(asset.AcquisitionDate, snap.From, snap.To) {
			continue
		}
		cf.Append(domain.ActivityInvesting, domain.CashFlowItem{
			Date:        asset.AcquisitionDate,
			Description: "Asset acquisition: " + asset.AssetName,
			Amount:      asset.Value.Neg(),
		})
	}

	sortByDate(cf.Operating)
	sortByDate(cf.Investing)
	sortByDate(cf.Financing)

	cf.Summary = domain.CashFlowSummary{
		TotalOperating: sumItems(cf.Operating),
		TotalInvesting: sumItems(cf.Investing),
		TotalFinancing: sumItems(cf.Financing),
	}
	cf.Summary.NetCashFlow = cf.Summary.TotalOperating.
		Add(cf.Summary.TotalInvesting).
		Add(cf.Summary.TotalFinancing)

	return cf, nil
}

// classifyPosting maps one ledger posting onto a cash flow activity and
// signed amount. Returns false when the posting is not cash-affecting.
func classifyPosting(tx *domain.Transaction, account *domain.Account, overrides map[string]*domain.CashflowCategory) (domain.Activity, decimal.Decimal, bool) {
	signed := tx.Amount
	if tx.Type.Class() == domain.SideDebit {
		signed = signed.Neg()
	}

	if override, ok := overrides[account.Code]; ok {
		return override.Activity, signed, true
	}

	switch account.Type {
	case domain.TypeAsset:
		if !isCashLike(account) {
			return "", decimal.Zero, false
		}
		return domain.ActivityOperating, signed, true
	case domain.TypeFixedAsset:
		return domain.ActivityInvesting, signed, true
	case domain.TypeLiability:
		if isCurrent(account) {
			return domain.ActivityOperating, signed, true
		}
		return domain.ActivityFinancing, signed, true
	case domain.TypeEquity:
		return domain.ActivityFinancing, signed, true
	case domain.TypeRevenue:
		return domain.ActivityOperating, tx.Amount, true
	case domain.TypeExpense:
		return domain.ActivityOperating, tx.Amount.Neg(), true
	default:
		return "", decimal.Zero, false
	}
}

func isCashLike(account *domain.Account) bool {
	label := strings.ToLower(account.Category + " " + account.Subcategory + " " + account.Name)
	return strings.Contains(label, "cash") || strings.Contains(label, "bank")
}

func isCurrent(account *domain.Account) bool {
	label := strings.ToLower(account.Category + " " + account.Subcategory)
	return strings.Contains(label, "current")
}

func inPeriod(date, from, to time.Time) bool {
	if !from.IsZero() && date.Before(from) {
		return false
	}
	if !to.IsZero() && date.After(to) {
		return false
	}
	return true
}

func entryDescription(description, fallback string) string {
	if description != "" {
		return description
	}
	return fallback
}

func sortByDate(items []domain.CashFlowItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
}

func sumItems(items []domain.CashFlowItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// StatementUseCase derives financial statements from consistent
// snapshots, with optional result caching.
type StatementUseCase struct {
	snapshots SnapshotSource
	cache     Cache
	cacheTTL  time.Duration
	tolerance decimal.Decimal
}

// NewStatementUseCase creates a new StatementUseCase. The cache may be
// nil to disable result caching.
func NewStatementUseCase(snapshots SnapshotSource, cache Cache, cacheTTL time.Duration) *StatementUseCase {
	return &StatementUseCase{
		snapshots: snapshots,
		cache:     cache,
		cacheTTL:  cacheTTL,
		tolerance: DefaultDriftTolerance,
	}
}

// BalanceSheet derives the balance sheet for the given period.
func (uc *StatementUseCase) BalanceSheet(ctx context.Context, from, to time.Time) (*domain.BalanceSheet, error) {
	if err := domain.ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	key := statementKey("balance_sheet", from, to)
	var cached domain.BalanceSheet
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	snap, err := uc.snapshots.Load(ctx, from, to)
	if err != nil {
		return nil, err
	}

	bs, err := DeriveBalanceSheet(snap, uc.tolerance)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, key, bs)
	return bs, nil
}

// CashFlow derives the cash flow statement for the given period.
func (uc *StatementUseCase) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowStatement, error) {
	if err := domain.ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	key := statementKey("cash_flow", from, to)
	var cached domain.CashFlowStatement
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	snap, err := uc.snapshots.Load(ctx, from, to)
	if err != nil {
		return nil, err
	}

	cf, err := DeriveCashFlow(snap)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, key, cf)
	return cf, nil
}

func statementKey(kind string, from, to time.Time) string {
	return fmt.Sprintf("statement:%s:%d:%d", kind, from.Unix(), to.Unix())
}

// fromCache best-effort reads a cached statement; cache failures fall
// through to a fresh derivation.
func (uc *StatementUseCase) fromCache(ctx context.Context, key string, out any) bool {
	if uc.cache == nil {
		return false
	}
	data, err := uc.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (uc *StatementUseCase) toCache(ctx context.Context, key string, value any) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
}
