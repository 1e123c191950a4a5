package main

import "errors"

// KnownMetrics is the set of metric names exported by card-price-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"cpt_http_request_duration_seconds": true,
	"cpt_http_requests_total":           true,

	// Health metrics.
	"cpt_healthz_up": true,
	"cpt_readyz_up":  true,

	// Ingestion metrics.
	"cpt_ingestion_listings_total":   true,
	"cpt_ingestion_skipped_total":    true,
	"cpt_ingestion_errors_total":     true,
	"cpt_ingestion_duration_seconds": true,

	// eBay API metrics.
	"cpt_ebay_api_calls_total":        true,
	"cpt_ebay_daily_usage":            true,
	"cpt_ebay_daily_limit_hits_total": true,
	"cpt_ebay_item_cache_hits_total":  true,

	// Reference import metrics.
	"cpt_reference_import_rows":               true,
	"cpt_reference_import_skipped_rows_total": true,
	"cpt_reference_import_duration_seconds":   true,
	"cpt_snapshot_records":                    true,
	"cpt_snapshot_import_timestamp":           true,

	// Valuation metrics.
	"cpt_valuations_total":             true,
	"cpt_match_tiers_total":            true,
	"cpt_grade_outcomes_total":         true,
	"cpt_valuation_rules_total":        true,
	"cpt_revaluation_duration_seconds": true,

	// Scheduler metrics.
	"cpt_scheduler_next_run_timestamp": true,
	"cpt_job_runs_total":               true,

	// Recording rules.
	"cpt:http_requests:rate5m":      true,
	"cpt:http_errors:rate5m":        true,
	"cpt:ingestion_listings:rate5m": true,
	"cpt:ingestion_errors:rate5m":   true,
	"cpt:ebay_api_calls:rate5m":     true,
	"cpt:valuations:rate5m":         true,
	"cpt:match_tiers:rate5m":        true,
	"cpt:job_failures:increase1h":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
