package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/finbooks/internal/adapter/http/dto"
)

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %s: %v", w.Body.String(), err)
	}
}

func TestAccountLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutilSetup(t, ctx)
	router := setupRouter(t, testDB)

	t.Run("create account with valid data", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
			Code: "1101",
			Name: "Cash",
			Type: "asset",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		decodeBody(t, w, &resp)
		if resp.Code != "1101" || resp.Type != "asset" {
			t.Fatalf("unexpected account response: %+v", resp)
		}
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
			Code: "1101",
			Name: "Cash again",
			Type: "asset",
		})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
			Code: "1102",
			Name: "Bad",
			Type: "goodwill",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("get account by code", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/1101", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.AccountResponse
		decodeBody(t, w, &resp)
		if resp.Name != "Cash" {
			t.Fatalf("unexpected account name: %q", resp.Name)
		}
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/9999", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list accounts", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/accounts", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ListAccountsResponse
		decodeBody(t, w, &resp)
		if resp.Total != 1 {
			t.Fatalf("expected 1 account, got %d", resp.Total)
		}
	})

	t.Run("set cashflow category", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/accounts/1101/cashflow-category", dto.SetCashflowCategoryRequest{
			Activity:    "operating",
			Subcategory: "cash",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
