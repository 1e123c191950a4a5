// Package metrics defines Prometheus metrics for card-price-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cpt"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Ingestion metrics.
var (
	IngestionListingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_listings_total",
		Help:      "Total number of listings stored by ingestion.",
	})

	IngestionSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_skipped_total",
		Help:      "Listings dropped before storage, by reason.",
	}, []string{"reason"})

	IngestionErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_errors_total",
		Help:      "Total number of ingestion errors.",
	})

	IngestionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of ingestion cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// eBay API metrics.
var (
	EbayAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_api_calls_total",
		Help:      "Total eBay API calls, by endpoint.",
	}, []string{"endpoint"})

	EbayDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ebay_daily_usage",
		Help:      "eBay API calls made in the current quota day.",
	})

	EbayDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_daily_limit_hits_total",
		Help:      "Total number of times the daily eBay API limit was reached.",
	})

	EbayItemCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_item_cache_hits_total",
		Help:      "Item detail lookups served from the local cache.",
	})
)

// Reference import metrics.
var (
	ReferenceImportRows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reference_import_rows",
		Help:      "Rows accepted by the most recent reference import.",
	})

	ReferenceImportSkippedRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_import_skipped_rows_total",
		Help:      "Reference CSV rows rejected during parsing.",
	})

	ReferenceImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reference_import_duration_seconds",
		Help:      "Duration of reference imports in seconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	SnapshotRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_records",
		Help:      "Records in the active reference snapshot.",
	})

	SnapshotImportTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_import_timestamp",
		Help:      "Unix timestamp of the active reference snapshot's import date.",
	})
)

// Valuation metrics.
var (
	ValuationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "valuations_total",
		Help:      "Total number of listing valuations computed.",
	})

	MatchTiersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_tiers_total",
		Help:      "Reference matches, by tier.",
	}, []string{"tier"})

	GradeOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "grade_outcomes_total",
		Help:      "Grade extraction outcomes, by kind.",
	}, []string{"kind"})

	ValuationRulesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "valuation_rules_total",
		Help:      "Market value resolutions, by rule.",
	}, []string{"rule"})

	RevaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "revaluation_duration_seconds",
		Help:      "Duration of full revaluation passes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Scheduler and health metrics.
var (
	SchedulerNextRunTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_run_timestamp",
		Help:      "Unix timestamp of each job's next scheduled run.",
	}, []string{"job_name"})

	JobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Completed job runs, by job and status.",
	}, []string{"job_name", "status"})

	HealthUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness check last succeeded.",
	})

	ReadyUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness check last succeeded.",
	})
)
