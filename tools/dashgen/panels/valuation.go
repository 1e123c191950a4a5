package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MatchRate returns a stat panel showing the share of valuations that found
// a reference record at any tier.
func MatchRate() *stat.PanelBuilder {
	expr := `sum(cpt:match_tiers:rate5m{tier!="none"}) / sum(cpt:match_tiers:rate5m) * 100`
	return stat.NewPanelBuilder().
		Title("Match Rate").
		Description("Valuations matched to a reference record over the last 5 minutes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedYellowGreen(50, 80)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// MatchTiers returns a bar gauge panel showing how valuations split across
// match tiers over the last day.
func MatchTiers() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match Tiers (24h)").
		Description("Reference matches by tier, from exact name+number+set down to none").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(
			`sum by (tier) (increase(cpt_match_tiers_total{`+Job+`}[24h]))`,
			"{{tier}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// GradeOutcomes returns a bar gauge panel showing grade extraction outcomes
// over the last day.
func GradeOutcomes() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Grade Outcomes (24h)").
		Description("Grade extraction results by kind (specific, raw, unknown)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(
			`sum by (kind) (increase(cpt_grade_outcomes_total{`+Job+`}[24h]))`,
			"{{kind}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ValuationRules returns a timeseries panel showing which resolution rule
// produced each market value.
func ValuationRules() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Valuation Rules").
		Description("Market value resolutions per minute, by rule").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(12).
		WithTarget(PromQuery(
			`sum by (rule) (rate(cpt_valuation_rules_total{`+Job+`}[5m])) * 60`,
			"{{rule}}", "A",
		)).
		FillOpacity(20).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RevaluationDuration returns a timeseries panel showing the p95 duration of
// full revaluation passes.
func RevaluationDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Revaluation Duration (p95)").
		Description("95th percentile duration of full revaluation passes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(12).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(cpt_revaluation_duration_seconds_bucket{`+Job+`}[1h])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
