package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/card-price-tracker/tools/dashgen/dashboards"
	"github.com/donaldgifford/card-price-tracker/tools/dashgen/rules"
	"github.com/donaldgifford/card-price-tracker/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "empty output dir", cfg: Config{OutputDir: "", DashboardEnabled: true}},
		{name: "nothing enabled", cfg: Config{OutputDir: "/tmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "cpt-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "CPT Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 7)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 26, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "cpt-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	assert.Equal(t, "cpt-recording", cr.Spec.Groups[0].Name)
	assert.Equal(t, []string{
		"cpt:http_requests:rate5m",
		"cpt:http_errors:rate5m",
		"cpt:ingestion_listings:rate5m",
		"cpt:ingestion_errors:rate5m",
		"cpt:ebay_api_calls:rate5m",
		"cpt:valuations:rate5m",
		"cpt:match_tiers:rate5m",
		"cpt:job_failures:increase1h",
	}, cr.Names())

	// Every recorded series is usable by dashboards and alerts.
	for _, name := range cr.Names() {
		assert.True(t, KnownMetrics[name], "recording rule %s missing from KnownMetrics", name)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "cpt-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "cpt-alerts", group.Name)
	assert.Equal(t, []string{
		"CptDown",
		"CptReadinessDown",
		"CptHighErrorRate",
		"CptIngestionErrors",
		"CptSnapshotStale",
		"CptLowMatchRate",
		"CptJobFailed",
		"CptEbayQuotaHigh",
		"CptEbayLimitReached",
	}, cr.Names())

	for _, rule := range group.Rules {
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateRules_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    rules.Rule
		wantErr string
	}{
		{
			name:    "unknown metric",
			rule:    rules.Rule{Alert: "Typo", Expr: `cpt_ingestion_listing_total > 0`},
			wantErr: `unknown metric "cpt_ingestion_listing_total"`,
		},
		{
			name:    "parse error",
			rule:    rules.Rule{Record: "cpt:broken", Expr: `sum(rate(cpt_valuations_total[5m])`},
			wantErr: "parsing",
		},
		{
			name:    "unnamed rule",
			rule:    rules.Rule{Expr: `up`},
			wantErr: "neither record nor alert",
		},
		{
			name:    "empty expression",
			rule:    rules.Rule{Alert: "Empty"},
			wantErr: "empty expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{
				Groups: []rules.RuleGroup{{Name: "g", Rules: []rules.Rule{tt.rule}}},
			}}
			result := validate.Rules(cr, KnownMetrics)
			require.False(t, result.Ok())
			assert.ErrorContains(t, result.Errors[0], tt.wantErr)
		})
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	var res validate.Result
	names := validate.MetricNames(
		`sum(rate(cpt_http_requests_total{status=~"5.."}[5m])) / sum(rate(cpt_http_requests_total[5m])) + time() - up`,
		&res, "test",
	)
	assert.True(t, res.Ok())
	assert.Equal(t, []string{"cpt_http_requests_total", "up"}, names)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(cfg.OutputDir, "grafana", "data", "cpt-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashJSON, &dash))
	assert.Equal(t, "cpt-overview", dash["uid"])

	for _, file := range []string{"cpt-recording-rules.yaml", "cpt-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", file))
		require.NoError(t, err, file)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), file)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), file)
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
