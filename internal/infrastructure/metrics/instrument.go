package metrics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

// Decorators in this file wrap the use cases with metric recording.
// Each one keeps the wrapped method set identical to what the HTTP
// handlers consume, so the decorated value drops in unchanged.

type accountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// InstrumentedAccounts records chart-of-accounts metrics.
type InstrumentedAccounts struct {
	next accountService
	m    *Metrics
}

// InstrumentAccounts wraps an account service with metric recording.
func InstrumentAccounts(next accountService, m *Metrics) *InstrumentedAccounts {
	return &InstrumentedAccounts{next: next, m: m}
}

func (s *InstrumentedAccounts) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	account, err := s.next.CreateAccount(ctx, input)
	if err == nil {
		s.m.AccountsCreated.Inc()
	}
	return account, err
}

func (s *InstrumentedAccounts) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	return s.next.GetAccount(ctx, code)
}

func (s *InstrumentedAccounts) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.next.ListAccounts(ctx)
}

type transactionService interface {
	PostTransaction(ctx context.Context, input usecase.PostTransactionInput) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error)
}

// InstrumentedTransactions records ledger posting metrics.
type InstrumentedTransactions struct {
	next transactionService
	m    *Metrics
}

// InstrumentTransactions wraps a transaction service with metric recording.
func InstrumentTransactions(next transactionService, m *Metrics) *InstrumentedTransactions {
	return &InstrumentedTransactions{next: next, m: m}
}

func (s *InstrumentedTransactions) PostTransaction(ctx context.Context, input usecase.PostTransactionInput) (*domain.Transaction, error) {
	tx, err := s.next.PostTransaction(ctx, input)
	if err == nil {
		s.m.TransactionsPosted.WithLabelValues(string(tx.Type)).Inc()
		s.m.TransactionAmount.Observe(tx.Amount.InexactFloat64())
	}
	return tx, err
}

func (s *InstrumentedTransactions) ListByAccount(ctx context.Context, code string, limit, offset int) ([]*domain.Transaction, error) {
	return s.next.ListByAccount(ctx, code, limit, offset)
}

type assetService interface {
	RegisterAsset(ctx context.Context, input usecase.RegisterAssetInput) (*domain.FixedAsset, error)
	GetAsset(ctx context.Context, id string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context) ([]*domain.FixedAsset, error)
	TotalBookValue(ctx context.Context) (decimal.Decimal, error)
	RecalculateDepreciation(ctx context.Context, asOf time.Time) (int, error)
}

// InstrumentedAssets records fixed-asset register metrics.
type InstrumentedAssets struct {
	next assetService
	m    *Metrics
}

// InstrumentAssets wraps an asset service with metric recording.
func InstrumentAssets(next assetService, m *Metrics) *InstrumentedAssets {
	return &InstrumentedAssets{next: next, m: m}
}

func (s *InstrumentedAssets) RegisterAsset(ctx context.Context, input usecase.RegisterAssetInput) (*domain.FixedAsset, error) {
	asset, err := s.next.RegisterAsset(ctx, input)
	if err == nil {
		s.m.AssetsRegistered.Inc()
	}
	return asset, err
}

func (s *InstrumentedAssets) GetAsset(ctx context.Context, id string) (*domain.FixedAsset, error) {
	return s.next.GetAsset(ctx, id)
}

func (s *InstrumentedAssets) ListAssets(ctx context.Context) ([]*domain.FixedAsset, error) {
	return s.next.ListAssets(ctx)
}

func (s *InstrumentedAssets) TotalBookValue(ctx context.Context) (decimal.Decimal, error) {
	return s.next.TotalBookValue(ctx)
}

func (s *InstrumentedAssets) RecalculateDepreciation(ctx context.Context, asOf time.Time) (int, error) {
	updated, err := s.next.RecalculateDepreciation(ctx, asOf)
	if err == nil {
		s.m.DepreciationRuns.Inc()
		s.m.AssetsDepreciated.Add(float64(updated))
	}
	return updated, err
}

type projectService interface {
	CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	AddCost(ctx context.Context, input usecase.RecordEntryInput) (*domain.ProjectCost, error)
	AddBilling(ctx context.Context, input usecase.RecordEntryInput) (*domain.Billing, error)
}

// InstrumentedProjects records project and WIP input metrics.
type InstrumentedProjects struct {
	next projectService
	m    *Metrics
}

// InstrumentProjects wraps a project service with metric recording.
func InstrumentProjects(next projectService, m *Metrics) *InstrumentedProjects {
	return &InstrumentedProjects{next: next, m: m}
}

func (s *InstrumentedProjects) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*domain.Project, error) {
	project, err := s.next.CreateProject(ctx, input)
	if err == nil {
		s.m.ProjectsCreated.Inc()
	}
	return project, err
}

func (s *InstrumentedProjects) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.next.GetProject(ctx, id)
}

func (s *InstrumentedProjects) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.next.ListProjects(ctx)
}

func (s *InstrumentedProjects) AddCost(ctx context.Context, input usecase.RecordEntryInput) (*domain.ProjectCost, error) {
	cost, err := s.next.AddCost(ctx, input)
	if err == nil {
		s.m.CostsRecorded.Inc()
	}
	return cost, err
}

func (s *InstrumentedProjects) AddBilling(ctx context.Context, input usecase.RecordEntryInput) (*domain.Billing, error) {
	billing, err := s.next.AddBilling(ctx, input)
	if err == nil {
		s.m.BillingsIssued.Inc()
	}
	return billing, err
}

type statementService interface {
	BalanceSheet(ctx context.Context, from, to time.Time) (*domain.BalanceSheet, error)
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowStatement, error)
}

// InstrumentedStatements records derivation counts and latency.
type InstrumentedStatements struct {
	next statementService
	m    *Metrics
}

// InstrumentStatements wraps a statement service with metric recording.
func InstrumentStatements(next statementService, m *Metrics) *InstrumentedStatements {
	return &InstrumentedStatements{next: next, m: m}
}

func (s *InstrumentedStatements) BalanceSheet(ctx context.Context, from, to time.Time) (*domain.BalanceSheet, error) {
	start := time.Now()
	bs, err := s.next.BalanceSheet(ctx, from, to)
	if err == nil {
		s.m.StatementsGenerated.WithLabelValues("balance_sheet").Inc()
		s.m.StatementDuration.WithLabelValues("balance_sheet").Observe(time.Since(start).Seconds())
	}
	return bs, err
}

func (s *InstrumentedStatements) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowStatement, error) {
	start := time.Now()
	cf, err := s.next.CashFlow(ctx, from, to)
	if err == nil {
		s.m.StatementsGenerated.WithLabelValues("cash_flow").Inc()
		s.m.StatementDuration.WithLabelValues("cash_flow").Observe(time.Since(start).Seconds())
	}
	return cf, err
}

type ledgerService interface {
	AccountBalance(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, error)
	TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error)
}

// InstrumentedLedger records trial balance derivations.
type InstrumentedLedger struct {
	next ledgerService
	m    *Metrics
}

// InstrumentLedger wraps a ledger service with metric recording.
func InstrumentLedger(next ledgerService, m *Metrics) *InstrumentedLedger {
	return &InstrumentedLedger{next: next, m: m}
}

func (s *InstrumentedLedger) AccountBalance(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, error) {
	return s.next.AccountBalance(ctx, code, from, to)
}

func (s *InstrumentedLedger) TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalance, error) {
	start := time.Now()
	tb, err := s.next.TrialBalance(ctx, from, to)
	if err == nil {
		s.m.StatementsGenerated.WithLabelValues("trial_balance").Inc()
		s.m.StatementDuration.WithLabelValues("trial_balance").Observe(time.Since(start).Seconds())
	}
	return tb, err
}

type reconciliationService interface {
	Report(ctx context.Context) (*usecase.ReconciliationReport, error)
}

// InstrumentedReconciliation records drift gauges per area.
type InstrumentedReconciliation struct {
	next reconciliationService
	m    *Metrics
}

// InstrumentReconciliation wraps a reconciliation service with metric recording.
func InstrumentReconciliation(next reconciliationService, m *Metrics) *InstrumentedReconciliation {
	return &InstrumentedReconciliation{next: next, m: m}
}

func (s *InstrumentedReconciliation) Report(ctx context.Context) (*usecase.ReconciliationReport, error) {
	report, err := s.next.Report(ctx)
	if err == nil {
		s.m.ReconciliationRuns.Inc()
		for _, r := range report.Results {
			s.m.ReconciliationDrift.WithLabelValues(r.Area).Set(r.Drift.InexactFloat64())
		}
	}
	return report, err
}

// InstrumentedSnapshotSource records snapshot load latency.
type InstrumentedSnapshotSource struct {
	next usecase.SnapshotSource
	m    *Metrics
}

// InstrumentSnapshots wraps a snapshot source with metric recording.
func InstrumentSnapshots(next usecase.SnapshotSource, m *Metrics) *InstrumentedSnapshotSource {
	return &InstrumentedSnapshotSource{next: next, m: m}
}

func (s *InstrumentedSnapshotSource) Load(ctx context.Context, from, to time.Time) (*domain.Snapshot, error) {
	start := time.Now()
	snap, err := s.next.Load(ctx, from, to)
	if err == nil {
		s.m.SnapshotLoadSeconds.Observe(time.Since(start).Seconds())
	}
	return snap, err
}

// InstrumentedCache counts statement cache hits and misses.
type InstrumentedCache struct {
	next usecase.Cache
	m    *Metrics
}

// InstrumentCache wraps a cache with hit/miss counting.
func InstrumentCache(next usecase.Cache, m *Metrics) *InstrumentedCache {
	return &InstrumentedCache{next: next, m: m}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.next.Get(ctx, key)
	if err != nil {
		c.m.StatementCacheMiss.Inc()
	} else {
		c.m.StatementCacheHits.Inc()
	}
	return val, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.next.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	return c.next.Delete(ctx, key)
}
