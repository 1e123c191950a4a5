// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every selector must name a known metric.
package validate

import (
	"fmt"
	"slices"

	"github.com/grafana/grafana-foundation-sdk/go/cog/variants"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/card-price-tracker/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are advisory.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// Dashboard validates every panel query in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(&res, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				checkPanel(&res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

// Rules validates every rule expression in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Alert
			if name == "" {
				name = r.Record
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert name", g.Name)
				continue
			}
			checkExpr(&res, g.Name+"/"+name, r.Expr, known)
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no queries", title))
		return
	}
	for _, t := range p.Targets {
		expr, ok := promExpr(t)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has a non-Prometheus query", title))
			continue
		}
		checkExpr(res, "panel "+title, expr, known)
	}
}

func promExpr(q variants.Dataquery) (string, bool) {
	switch v := q.(type) {
	case prometheus.Dataquery:
		return v.Expr, true
	case *prometheus.Dataquery:
		return v.Expr, true
	default:
		return "", false
	}
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if expr == "" {
		res.errorf("%s: empty expression", where)
		return
	}
	for _, name := range MetricNames(expr, res, where) {
		if !known[name] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// MetricNames parses expr and returns the metric names it selects, sorted
// and deduplicated. Parse failures are recorded on res.
func MetricNames(expr string, res *Result, where string) []string {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: parsing %q: %w", where, expr, err)
		return nil
	}

	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	slices.Sort(names)
	return slices.Compact(names)
}
