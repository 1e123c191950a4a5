package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SnapshotRecords returns a stat panel showing the size of the active
// reference snapshot.
func SnapshotRecords() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshot Records").
		Description("Reference records in the active snapshot").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`cpt_snapshot_records{`+Job+`}`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// ImportRows returns a timeseries panel comparing accepted and rejected CSV
// rows across imports.
func ImportRows() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Import Rows").
		Description("Rows accepted by the latest import and rows rejected per day").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(10).
		WithTarget(PromQuery(`cpt_reference_import_rows{`+Job+`}`, "accepted", "A")).
		WithTarget(PromQuery(
			`increase(cpt_reference_import_skipped_rows_total{`+Job+`}[1d])`,
			"rejected (1d)", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ImportDuration returns a timeseries panel showing the p95 reference import
// duration.
func ImportDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Import Duration (p95)").
		Description("95th percentile reference import duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(cpt_reference_import_duration_seconds_bucket{`+Job+`}[1d])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStylePoints)
}
