package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/finbooks/internal/adapter/http/handler"
	"github.com/iho/finbooks/internal/adapter/http/middleware"
	"github.com/iho/finbooks/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler        *handler.AccountHandler
	TransactionHandler    *handler.TransactionHandler
	AssetHandler          *handler.AssetHandler
	ProjectHandler        *handler.ProjectHandler
	StatementHandler      *handler.StatementHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{code}", cfg.AccountHandler.Get)
			r.Get("/{code}/balance", cfg.TransactionHandler.Balance)
			r.Get("/{code}/transactions", cfg.TransactionHandler.ListByAccount)
			r.Put("/{code}/cashflow-category", cfg.AccountHandler.SetCashflowCategory)
		})
		r.Get("/cashflow-categories", cfg.AccountHandler.ListCashflowCategories)

		// Ledger postings
		r.Post("/transactions", cfg.TransactionHandler.Create)

		// Fixed-asset register
		r.Route("/assets", func(r chi.Router) {
			r.Post("/", cfg.AssetHandler.Register)
			r.Get("/", cfg.AssetHandler.List)
			r.Post("/depreciation", cfg.AssetHandler.Depreciate)
			r.Get("/{id}", cfg.AssetHandler.Get)
		})

		// Projects and WIP
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", cfg.ProjectHandler.Create)
			r.Get("/", cfg.ProjectHandler.List)
			r.Get("/wip", cfg.ProjectHandler.Valuation)
			r.Get("/{id}", cfg.ProjectHandler.Get)
			r.Post("/{id}/costs", cfg.ProjectHandler.AddCost)
			r.Post("/{id}/billings", cfg.ProjectHandler.AddBilling)
			r.Get("/{id}/wip", cfg.ProjectHandler.WIP)
		})

		// Derived statements
		r.Route("/statements", func(r chi.Router) {
			r.Get("/balance-sheet", cfg.StatementHandler.BalanceSheet)
			r.Get("/cash-flow", cfg.StatementHandler.CashFlow)
			r.Get("/trial-balance", cfg.StatementHandler.TrialBalance)
		})

		// Drift report
		r.Get("/reconciliation", cfg.ReconciliationHandler.Report)
	})

	return r
}
