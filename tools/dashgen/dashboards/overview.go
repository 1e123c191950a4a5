// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/card-price-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the CPT Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("CPT Overview").
		Uid("cpt-overview").
		Tags([]string{"cpt", "card-price-tracker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.SnapshotAge()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.ItemCacheHitRatio()).
		WithPanel(panels.LimitHits()))

	// Row 4: Ingestion.
	b.WithRow(dashboard.NewRowBuilder("Ingestion").
		WithPanel(panels.ListingsRate()).
		WithPanel(panels.SkippedListings()).
		WithPanel(panels.IngestionErrors()).
		WithPanel(panels.CycleDuration()))

	// Row 5: Reference data.
	b.WithRow(dashboard.NewRowBuilder("Reference Data").
		WithPanel(panels.SnapshotRecords()).
		WithPanel(panels.ImportRows()).
		WithPanel(panels.ImportDuration()))

	// Row 6: Valuation.
	b.WithRow(dashboard.NewRowBuilder("Valuation").
		WithPanel(panels.MatchRate()).
		WithPanel(panels.MatchTiers()).
		WithPanel(panels.GradeOutcomes()).
		WithPanel(panels.ValuationRules()).
		WithPanel(panels.RevaluationDuration()))

	// Row 7: Jobs.
	b.WithRow(dashboard.NewRowBuilder("Jobs").
		WithPanel(panels.NextRuns()).
		WithPanel(panels.JobRuns()).
		WithPanel(panels.JobFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
