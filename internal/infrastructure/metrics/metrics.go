package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsPosted *prometheus.CounterVec
	TransactionAmount  prometheus.Histogram
	AccountsCreated    prometheus.Counter

	// Fixed-asset metrics
	AssetsRegistered  prometheus.Counter
	DepreciationRuns  prometheus.Counter
	AssetsDepreciated prometheus.Counter

	// Project metrics
	ProjectsCreated prometheus.Counter
	CostsRecorded   prometheus.Counter
	BillingsIssued  prometheus.Counter

	// Statement metrics
	StatementsGenerated *prometheus.CounterVec
	StatementDuration   *prometheus.HistogramVec
	StatementCacheHits  prometheus.Counter
	StatementCacheMiss  prometheus.Counter
	SnapshotLoadSeconds prometheus.Histogram

	// Reconciliation metrics
	ReconciliationRuns  prometheus.Counter
	ReconciliationDrift *prometheus.GaugeVec

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		TransactionsPosted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbooks_transactions_posted_total",
				Help: "Total number of ledger transactions posted by type",
			},
			[]string{"type"},
		),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finbooks_transaction_amount",
			Help:    "Posted transaction amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_accounts_created_total",
			Help: "Total number of chart-of-accounts entries created",
		}),

		// Fixed-asset metrics
		AssetsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_assets_registered_total",
			Help: "Total number of fixed assets registered",
		}),
		DepreciationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_depreciation_runs_total",
			Help: "Total number of depreciation recalculation runs",
		}),
		AssetsDepreciated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_assets_depreciated_total",
			Help: "Total number of asset records updated by depreciation runs",
		}),

		// Project metrics
		ProjectsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_projects_created_total",
			Help: "Total number of projects created",
		}),
		CostsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_project_costs_recorded_total",
			Help: "Total number of project cost records",
		}),
		BillingsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_project_billings_recorded_total",
			Help: "Total number of project billing records",
		}),

		// Statement metrics
		StatementsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbooks_statements_generated_total",
				Help: "Total number of derived statements by kind",
			},
			[]string{"kind"},
		),
		StatementDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finbooks_statement_duration_seconds",
				Help:    "Statement derivation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		StatementCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_statement_cache_hits_total",
			Help: "Total number of statement cache hits",
		}),
		StatementCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_statement_cache_misses_total",
			Help: "Total number of statement cache misses",
		}),
		SnapshotLoadSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finbooks_snapshot_load_seconds",
			Help:    "Duration of consistent snapshot loads",
			Buckets: prometheus.DefBuckets,
		}),

		// Reconciliation metrics
		ReconciliationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finbooks_reconciliation_runs_total",
			Help: "Total number of reconciliation report runs",
		}),
		ReconciliationDrift: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finbooks_reconciliation_drift",
				Help: "Last observed register-versus-ledger drift per area",
			},
			[]string{"area"},
		),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "finbooks_db_connections",
			Help: "Current number of database connections",
		}),
	}
}
