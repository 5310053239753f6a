package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

func TestNormalSide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accountType domain.AccountType
		want        domain.Side
	}{
		{domain.TypeAsset, domain.SideDebit},
		{domain.TypeFixedAsset, domain.SideDebit},
		{domain.TypeContraAsset, domain.SideCredit},
		{domain.TypeLiability, domain.SideCredit},
		{domain.TypeEquity, domain.SideCredit},
		{domain.TypeRevenue, domain.SideCredit},
		{domain.TypeExpense, domain.SideDebit},
	}

	for _, tt := range tests {
		if got := tt.accountType.NormalSide(); got != tt.want {
			t.Errorf("NormalSide(%s) = %s, want %s", tt.accountType, got, tt.want)
		}
	}
}

func TestTxTypeClass(t *testing.T) {
	t.Parallel()

	debitClass := []domain.TxType{domain.TxDebit, domain.TxExpense, domain.TxWipIncrease}
	creditClass := []domain.TxType{domain.TxCredit, domain.TxIncome, domain.TxWipDecrease, domain.TxRevenue}

	for _, tt := range debitClass {
		if got := tt.Class(); got != domain.SideDebit {
			t.Errorf("Class(%s) = %s, want debit", tt, got)
		}
	}
	for _, tt := range creditClass {
		if got := tt.Class(); got != domain.SideCredit {
			t.Errorf("Class(%s) = %s, want credit", tt, got)
		}
	}
}

func TestContribution_LiabilityAccount(t *testing.T) {
	t.Parallel()

	// Liability "2101": income of 1000 raises it, an expense of 200
	// lowers it, leaving 800.
	txs := []*domain.Transaction{
		{ID: "t1", Type: domain.TxIncome, AccountCode: "2101", Amount: decimal.NewFromInt(1000)},
		{ID: "t2", Type: domain.TxExpense, AccountCode: "2101", Amount: decimal.NewFromInt(200)},
	}

	balance := decimal.Zero
	for _, tx := range txs {
		balance = balance.Add(tx.Contribution(domain.TypeLiability))
	}

	if !balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected balance 800, got %s", balance)
	}
}

func TestContribution_ContraAssetAccount(t *testing.T) {
	t.Parallel()

	// ContraAsset "1601" is credit-normal: a credit of 500 increases
	// the stored balance, which statements subtract from assets.
	tx := &domain.Transaction{ID: "t1", Type: domain.TxCredit, AccountCode: "1601", Amount: decimal.NewFromInt(500)}

	got := tx.Contribution(domain.TypeContraAsset)
	if !got.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected contribution +500, got %s", got)
	}
}

func TestTransactionValidate(t *testing.T) {
	t.Parallel()

	tx := &domain.Transaction{
		ID:          "t1",
		Date:        time.Now(),
		Type:        domain.TxDebit,
		AccountCode: "1101",
		Amount:      decimal.NewFromInt(100),
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx.Amount = decimal.NewFromInt(-1)
	if err := tx.Validate(); err == nil {
		t.Fatal("expected error for negative amount")
	}

	tx.Amount = decimal.NewFromInt(1)
	tx.Type = "transferred"
	if err := tx.Validate(); err == nil {
		t.Fatal("expected error for unknown transaction type")
	}
}

func TestAccountTypeValid(t *testing.T) {
	t.Parallel()

	if !domain.TypeContraAsset.Valid() {
		t.Fatal("expected contra_asset to be valid")
	}
	if domain.AccountType("bank").Valid() {
		t.Fatal("expected unknown type to be invalid")
	}
}
