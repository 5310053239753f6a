package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

type stubSnapshotSource struct {
	snap *domain.Snapshot
	err  error
}

func (s *stubSnapshotSource) Load(context.Context, time.Time, time.Time) (*domain.Snapshot, error) {
	return s.snap, s.err
}

func testChart() *domain.Chart {
	return domain.NewChart([]*domain.Account{
		{Code: "1101", Name: "Cash", Type: domain.TypeAsset, Category: "Current Assets", Subcategory: "Cash"},
		{Code: "2101", Name: "Accounts Payable", Type: domain.TypeLiability, Category: "Current Liabilities"},
		{Code: "4101", Name: "Service Revenue", Type: domain.TypeRevenue},
	})
}

func TestAccountBalance_LiabilityScenario(t *testing.T) {
	t.Parallel()

	txs := []*domain.Transaction{
		{ID: "t1", Type: domain.TxIncome, AccountCode: "2101", Amount: decimal.NewFromInt(1000)},
		{ID: "t2", Type: domain.TxExpense, AccountCode: "2101", Amount: decimal.NewFromInt(200)},
	}

	balance, err := usecase.AccountBalance(testChart(), "2101", txs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected balance 800, got %s", balance)
	}
}

func TestAccountBalance_OrderIndependent(t *testing.T) {
	t.Parallel()

	txs := []*domain.Transaction{
		{ID: "t1", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.NewFromInt(100)},
		{ID: "t2", Type: domain.TxCredit, AccountCode: "1101", Amount: decimal.NewFromInt(40)},
		{ID: "t3", Type: domain.TxIncome, AccountCode: "1101", Amount: decimal.NewFromInt(25)},
		{ID: "t4", Type: domain.TxExpense, AccountCode: "1101", Amount: decimal.NewFromInt(10)},
		{ID: "t5", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.RequireFromString("0.03")},
	}

	want, err := usecase.AccountBalance(testChart(), "1101", txs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*domain.Transaction, len(txs))
		for j, k := range rng.Perm(len(txs)) {
			shuffled[j] = txs[k]
		}

		got, err := usecase.AccountBalance(testChart(), "1101", shuffled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("balance depends on order: got %s, want %s", got, want)
		}
	}
}

func TestAccountBalance_UnknownAccount(t *testing.T) {
	t.Parallel()

	_, err := usecase.AccountBalance(testChart(), "9999", nil)
	if !errors.Is(err, domain.ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}
}

func TestAccountBalances_MalformedAmount(t *testing.T) {
	t.Parallel()

	txs := []*domain.Transaction{
		{ID: "bad-1", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.NewFromInt(-10)},
	}

	_, err := usecase.AccountBalances(testChart(), txs)
	if !errors.Is(err, domain.ErrMalformedAmount) {
		t.Fatalf("expected ErrMalformedAmount, got %v", err)
	}
}

func TestAccountBalances_UnknownCodeIdentifiesRecord(t *testing.T) {
	t.Parallel()

	txs := []*domain.Transaction{
		{ID: "t1", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.NewFromInt(10)},
		{ID: "t2", Type: domain.TxDebit, AccountCode: "7777", Amount: decimal.NewFromInt(10)},
	}

	_, err := usecase.AccountBalances(testChart(), txs)
	if !errors.Is(err, domain.ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}
}

func TestTrialBalance(t *testing.T) {
	t.Parallel()

	snap := &domain.Snapshot{
		AsOf: time.Now().UTC(),
		Accounts: []*domain.Account{
			{Code: "1101", Name: "Cash", Type: domain.TypeAsset},
			{Code: "2101", Name: "Accounts Payable", Type: domain.TypeLiability},
			{Code: "4101", Name: "Service Revenue", Type: domain.TypeRevenue},
		},
		Transactions: []*domain.Transaction{
			{ID: "t1", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.NewFromInt(1000)},
			{ID: "t2", Type: domain.TxRevenue, AccountCode: "4101", Amount: decimal.NewFromInt(1000)},
			{ID: "t3", Type: domain.TxCredit, AccountCode: "2101", Amount: decimal.NewFromInt(300)},
			{ID: "t4", Type: domain.TxDebit, AccountCode: "1101", Amount: decimal.NewFromInt(300)},
		},
	}

	uc := usecase.NewLedgerUseCase(&stubSnapshotSource{snap: snap})

	tb, err := uc.TrialBalance(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tb.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tb.Rows))
	}
	if !tb.Rows[0].Debit.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected cash debit 1300, got %s", tb.Rows[0].Debit)
	}
	if !tb.Rows[1].Credit.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected payable credit 300, got %s", tb.Rows[1].Credit)
	}
	if !tb.TotalDebit.Equal(tb.TotalCredit) {
		t.Fatalf("trial balance out of balance: debit %s, credit %s", tb.TotalDebit, tb.TotalCredit)
	}
}

func TestTrialBalance_NegativeBalanceFlipsColumn(t *testing.T) {
	t.Parallel()

	snap := &domain.Snapshot{
		AsOf: time.Now().UTC(),
		Accounts: []*domain.Account{
			{Code: "1101", Name: "Cash", Type: domain.TypeAsset},
		},
		Transactions: []*domain.Transaction{
			{ID: "t1", Type: domain.TxCredit, AccountCode: "1101", Amount: decimal.NewFromInt(150)},
		},
	}

	uc := usecase.NewLedgerUseCase(&stubSnapshotSource{snap: snap})

	tb, err := uc.TrialBalance(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tb.Rows[0].Debit.IsZero() {
		t.Fatalf("expected zero debit, got %s", tb.Rows[0].Debit)
	}
	if !tb.Rows[0].Credit.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected overdrawn cash in credit column, got %s", tb.Rows[0].Credit)
	}
}

func TestLedgerUseCase_InvalidRange(t *testing.T) {
	t.Parallel()

	uc := usecase.NewLedgerUseCase(&stubSnapshotSource{})

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.AccountBalance(context.Background(), "1101", from, to)
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
