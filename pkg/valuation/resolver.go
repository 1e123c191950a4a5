package valuation

import (
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Resolver derives market values using one calibration. It is safe for
// concurrent use.
type Resolver struct {
	cal Calibration
}

// NewResolver validates cal and returns a Resolver that uses it.
func NewResolver(cal Calibration) (*Resolver, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cal: cal}, nil
}

var defaultResolver = &Resolver{cal: DefaultCalibration()}

// Resolve values gr against ref using the default calibration.
func Resolve(gr domain.GradeResult, ref *domain.PriceReference) domain.Resolution {
	return defaultResolver.Resolve(gr, ref)
}

// Resolve returns the market value of a card with grade result gr according
// to reference record ref. Rules, in order:
//
//  1. No reference: no value.
//  2. A specific grade whose own column is populated: that column.
//  3. A specific grade without its own column: a special rule for that
//     grade if one applies, else the PSA-equivalent ladder scaled by the
//     grader's multiplier.
//  4. A graded card with an unknown grade: the unknown-grade column.
//  5. A raw card: the raw column scaled by its condition multiplier, or
//     unscaled when the condition is unknown.
//
// Values are rounded to cents. Zero and missing prices never produce a
// value; the Resolution then carries a null value and explains why.
func (r *Resolver) Resolve(gr domain.GradeResult, ref *domain.PriceReference) domain.Resolution {
	g := gr.Grade
	if ref == nil {
		return domain.NewResolution(decimal.NullDecimal{}, domain.Basis{
			Rule:  domain.RuleNoReference,
			Grade: g,
		})
	}

	switch g.Kind {
	case domain.GradeSpecific:
		return r.resolveSpecific(g, ref)
	case domain.GradeUnknown:
		return r.evaluate(ref, domain.Basis{
			Rule:       domain.RuleUnknownGrade,
			Grade:      g,
			Columns:    []domain.Column{r.cal.UnknownGradeColumn},
			Multiplier: decimal.NewFromInt(1),
		})
	default:
		return r.resolveRaw(gr, ref)
	}
}

func (r *Resolver) resolveSpecific(g domain.Grade, ref *domain.PriceReference) domain.Resolution {
	mult, ok := r.cal.companyMultiplier(g.Company)
	if !ok {
		return domain.NewResolution(decimal.NullDecimal{}, domain.Basis{
			Rule:  domain.RuleUnsupported,
			Grade: g,
		})
	}

	if col, ok := exactColumn(g); ok {
		if _, populated := ref.Price(col); populated {
			return r.evaluate(ref, domain.Basis{
				Rule:       domain.RuleExact,
				Grade:      g,
				Columns:    []domain.Column{col},
				Multiplier: decimal.NewFromInt(1),
			})
		}
	}

	for _, rule := range r.cal.SpecialRules {
		if rule.Company != g.Company || rule.Tier != g.Tier {
			continue
		}
		if _, populated := ref.Price(rule.Column); populated {
			return r.evaluate(ref, domain.Basis{
				Rule:       domain.RuleSpecialProxy,
				Grade:      g,
				Columns:    []domain.Column{rule.Column},
				Multiplier: rule.Multiplier,
			})
		}
	}

	cols := ladderProxy(g.Tier, ref)
	if len(cols) == 0 {
		return domain.NewResolution(decimal.NullDecimal{}, domain.Basis{
			Rule:  domain.RuleNoColumnValue,
			Grade: g,
		})
	}
	return r.evaluate(ref, domain.Basis{
		Rule:       domain.RuleCompanyProxy,
		Grade:      g,
		Columns:    cols,
		Multiplier: mult,
	})
}

func (r *Resolver) resolveRaw(gr domain.GradeResult, ref *domain.PriceReference) domain.Resolution {
	if m, ok := r.cal.ConditionMultipliers[gr.Condition]; ok {
		return r.evaluate(ref, domain.Basis{
			Rule:       domain.RuleCondition,
			Grade:      domain.RawGrade,
			Condition:  gr.Condition,
			Columns:    []domain.Column{domain.ColumnRaw},
			Multiplier: m,
		})
	}
	return r.evaluate(ref, domain.Basis{
		Rule:       domain.RuleRaw,
		Grade:      domain.RawGrade,
		Columns:    []domain.Column{domain.ColumnRaw},
		Multiplier: decimal.NewFromInt(1),
	})
}

// evaluate computes the average of the basis columns times its multiplier.
// A missing column or a result that rounds to zero yields a null value.
func (r *Resolver) evaluate(ref *domain.PriceReference, b domain.Basis) domain.Resolution {
	value, ok := Evaluate(b, ref)
	if !ok {
		return domain.NewResolution(decimal.NullDecimal{}, domain.Basis{
			Rule:  domain.RuleNoColumnValue,
			Grade: b.Grade,
		})
	}
	return domain.NewResolution(decimal.NewNullDecimal(value), b)
}

// Evaluate recomputes the value a basis describes against ref: the average
// of its columns times its multiplier, rounded to cents. ok is false when a
// column is missing or the result is not positive.
func Evaluate(b domain.Basis, ref *domain.PriceReference) (decimal.Decimal, bool) {
	if len(b.Columns) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, c := range b.Columns {
		p, ok := ref.Price(c)
		if !ok {
			return decimal.Zero, false
		}
		sum = sum.Add(p)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(b.Columns))))
	value := avg.Mul(b.Multiplier).Round(2)
	if !value.IsPositive() {
		return decimal.Zero, false
	}
	return value, true
}

// exactColumn returns the column that prices a grade directly, if the table
// has one. PSA and generic grades use the ladder; BGS and CGC have their
// own 10 columns and share the 9.5 column; SGC has only its 10 column.
func exactColumn(g domain.Grade) (domain.Column, bool) {
	switch g.Company {
	case domain.CompanyNone, domain.CompanyPSA:
		if g.Tier.Whole() || g.Tier == 19 {
			return domain.LadderColumn(g.Tier)
		}
	case domain.CompanyBGS:
		switch g.Tier {
		case 20:
			return domain.ColumnBGS10, true
		case 19:
			return domain.ColumnGrade95, true
		}
	case domain.CompanyCGC:
		switch {
		case g.Tier == 20 && g.Pristine:
			return domain.ColumnCGC10Pristine, true
		case g.Tier == 20:
			return domain.ColumnCGC10, true
		case g.Tier == 19:
			return domain.ColumnGrade95, true
		}
	case domain.CompanySGC:
		if g.Tier == 20 {
			return domain.ColumnSGC10, true
		}
	}
	return "", false
}

// ladderProxy picks PSA-equivalent columns for tier t: the column at t when
// populated, else the average of the two ladder neighbours when both are
// populated, else the nearest populated column above t.
func ladderProxy(t domain.Tier, ref *domain.PriceReference) []domain.Column {
	ladder := domain.Ladder()

	var below, above domain.Column
	for _, c := range ladder {
		ct, _ := c.Tier()
		switch {
		case ct == t:
			if _, ok := ref.Price(c); ok {
				return []domain.Column{c}
			}
		case ct < t:
			below = c
		case ct > t && above == "":
			above = c
		}
	}

	if below != "" && above != "" {
		_, okBelow := ref.Price(below)
		_, okAbove := ref.Price(above)
		if okBelow && okAbove {
			return []domain.Column{below, above}
		}
	}

	for _, c := range ladder {
		ct, _ := c.Tier()
		if ct <= t {
			continue
		}
		if _, ok := ref.Price(c); ok {
			return []domain.Column{c}
		}
	}
	return nil
}
