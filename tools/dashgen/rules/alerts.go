package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// card-price-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpt-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpt-alerts",
					Rules: []Rule{
						{
							Alert: "CptDown",
							Expr:  `absent(up{job="card-price-tracker"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Card Price Tracker is down",
								"description": "The card-price-tracker job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CptReadinessDown",
							Expr:  `cpt_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Card Price Tracker readiness check is failing",
								"description": "The database has been unreachable from the readiness probe for more than 2 minutes.",
							},
						},
						{
							Alert: "CptHighErrorRate",
							Expr:  `cpt:http_errors:rate5m / cpt:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Card Price Tracker",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CptIngestionErrors",
							Expr:  `cpt:ingestion_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Ingestion errors detected",
								"description": "The ingestion pipeline has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "CptSnapshotStale",
							Expr:  `time() - cpt_snapshot_import_timestamp > 172800`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Reference snapshot is more than two days old",
								"description": "No PriceCharting import has succeeded for two days. Valuations use stale reference prices.",
							},
						},
						{
							Alert: "CptLowMatchRate",
							Expr:  `sum(cpt:match_tiers:rate5m{tier!="none"}) / sum(cpt:match_tiers:rate5m) < 0.5`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Fewer than half of listings match a reference record",
								"description": "The match rate has been below 50% for 30 minutes. Check the search queries and the console filter.",
							},
						},
						{
							Alert: "CptJobFailed",
							Expr:  `cpt:job_failures:increase1h > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "A scheduled job failed",
								"description": "The {{ $labels.job_name }} job failed within the last hour. See GET /api/v1/jobs for the error.",
							},
						},
						{
							Alert: "CptEbayQuotaHigh",
							Expr:  `cpt_ebay_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "CptEbayLimitReached",
							Expr:  `increase(cpt_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Browse API daily quota has been exhausted. Ingestion is paused until the Pacific midnight reset.",
							},
						},
					},
				},
			},
		},
	}
}
