package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpt-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpt-recording",
					Rules: []Rule{
						{
							Record: "cpt:http_requests:rate5m",
							Expr:   `sum(rate(cpt_http_requests_total[5m]))`,
						},
						{
							Record: "cpt:http_errors:rate5m",
							Expr:   `sum(rate(cpt_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "cpt:ingestion_listings:rate5m",
							Expr:   `rate(cpt_ingestion_listings_total[5m])`,
						},
						{
							Record: "cpt:ingestion_errors:rate5m",
							Expr:   `rate(cpt_ingestion_errors_total[5m])`,
						},
						{
							Record: "cpt:ebay_api_calls:rate5m",
							Expr:   `sum by (endpoint) (rate(cpt_ebay_api_calls_total[5m]))`,
						},
						{
							Record: "cpt:valuations:rate5m",
							Expr:   `rate(cpt_valuations_total[5m])`,
						},
						{
							Record: "cpt:match_tiers:rate5m",
							Expr:   `sum by (tier) (rate(cpt_match_tiers_total[5m]))`,
						},
						{
							Record: "cpt:job_failures:increase1h",
							Expr:   `sum by (job_name) (increase(cpt_job_runs_total{status="failed"}[1h]))`,
						},
					},
				},
			},
		},
	}
}
