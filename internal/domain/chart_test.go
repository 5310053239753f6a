package domain_test

import (
	"errors"
	"testing"

	"github.com/iho/finbooks/internal/domain"
)

func TestChartGet(t *testing.T) {
	t.Parallel()

	chart := domain.NewChart([]*domain.Account{
		{Code: "1101", Name: "Cash", Type: domain.TypeAsset},
		{Code: "2101", Name: "Accounts Payable", Type: domain.TypeLiability},
	})

	account, err := chart.Get("1101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Name != "Cash" {
		t.Fatalf("expected Cash, got %s", account.Name)
	}

	_, err = chart.Get("9999")
	if !errors.Is(err, domain.ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}
}

func TestChartAccountsSorted(t *testing.T) {
	t.Parallel()

	chart := domain.NewChart([]*domain.Account{
		{Code: "3101", Type: domain.TypeEquity},
		{Code: "1101", Type: domain.TypeAsset},
		{Code: "2101", Type: domain.TypeLiability},
	})

	accounts := chart.Accounts()
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(accounts))
	}
	for i, want := range []string{"1101", "2101", "3101"} {
		if accounts[i].Code != want {
			t.Errorf("accounts[%d].Code = %s, want %s", i, accounts[i].Code, want)
		}
	}
}
