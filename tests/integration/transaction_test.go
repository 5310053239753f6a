package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/adapter/http/dto"
	"github.com/iho/finbooks/internal/domain"
)

func TestTransactionPosting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutilSetup(t, ctx)
	router := setupRouter(t, testDB)

	testDB.CreateTestAccount(ctx, "1101", "Cash", domain.TypeAsset)

	t.Run("post debit transaction", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/transactions", dto.PostTransactionRequest{
			Type:        "debit",
			AccountCode: "1101",
			Amount:      decimal.NewFromInt(1000),
			Description: "opening deposit",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.TransactionResponse
		decodeBody(t, w, &resp)
		if resp.ID == "" {
			t.Fatalf("expected generated transaction ID")
		}
		if resp.Date.IsZero() {
			t.Fatalf("expected server-assigned date")
		}
	})

	t.Run("post credit transaction", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/transactions", dto.PostTransactionRequest{
			Type:        "credit",
			AccountCode: "1101",
			Amount:      decimal.NewFromInt(250),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("balance folds both postings", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/1101/balance", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.BalanceResponse
		decodeBody(t, w, &resp)
		if !resp.Balance.Equal(decimal.NewFromInt(750)) {
			t.Fatalf("expected balance 750, got %s", resp.Balance)
		}
	})

	t.Run("list transactions by account", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/1101/transactions", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ListTransactionsResponse
		decodeBody(t, w, &resp)
		if resp.Total != 2 {
			t.Fatalf("expected 2 transactions, got %d", resp.Total)
		}
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/transactions", dto.PostTransactionRequest{
			Type:        "debit",
			AccountCode: "4040",
			Amount:      decimal.NewFromInt(10),
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/transactions", dto.PostTransactionRequest{
			Type:        "wire",
			AccountCode: "1101",
			Amount:      decimal.NewFromInt(10),
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
