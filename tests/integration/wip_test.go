package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/adapter/http/dto"
)

func TestWIPValuation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutilSetup(t, ctx)
	router := setupRouter(t, testDB)

	createProject := func(name string) string {
		w := doJSON(t, router, http.MethodPost, "/api/v1/projects", dto.CreateProjectRequest{Name: name})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp dto.ProjectResponse
		decodeBody(t, w, &resp)
		return resp.ID
	}

	record := func(projectID, kind string, amount int64) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+projectID+"/"+kind, dto.RecordEntryRequest{
			Amount: decimal.NewFromInt(amount),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 recording %s, got %d: %s", kind, w.Code, w.Body.String())
		}
	}

	// Underbilled project: unbilled work is an asset.
	bridge := createProject("Bridge")
	record(bridge, "costs", 1000)
	record(bridge, "billings", 400)

	// Overbilled project: the excess billing is a liability.
	tunnel := createProject("Tunnel")
	record(tunnel, "costs", 300)
	record(tunnel, "billings", 800)

	t.Run("per-project wip", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+bridge+"/wip", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ProjectWIPResponse
		decodeBody(t, w, &resp)
		if !resp.WIP.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected WIP 600, got %s", resp.WIP)
		}
	})

	t.Run("valuation splits asset and overbilling", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/projects/wip", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.WIPValuationResponse
		decodeBody(t, w, &resp)

		if !resp.TotalAsset.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected total asset 600, got %s", resp.TotalAsset)
		}
		if !resp.TotalOverbilling.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected total overbilling 500, got %s", resp.TotalOverbilling)
		}
		if !resp.Net.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected net 100, got %s", resp.Net)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+bridge+"/costs", dto.RecordEntryRequest{
			Amount: decimal.NewFromInt(-50),
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/projects/nope/costs", dto.RecordEntryRequest{
			Amount: decimal.NewFromInt(50),
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("project detail derives wip", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+tunnel, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ProjectResponse
		decodeBody(t, w, &resp)
		if !resp.WIP.Equal(decimal.NewFromInt(-500)) {
			t.Fatalf("expected WIP -500, got %s", resp.WIP)
		}
	})
}
