package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rule names the valuation rule that produced a market value.
type Rule string

// Valuation rules.
const (
	RuleNoReference   Rule = "no_reference"
	RuleExact         Rule = "exact"
	RuleSpecialProxy  Rule = "special_proxy"
	RuleCompanyProxy  Rule = "company_proxy"
	RuleUnknownGrade  Rule = "unknown_grade_default"
	RuleCondition     Rule = "condition_estimate"
	RuleRaw           Rule = "raw"
	RuleUnsupported   Rule = "unsupported_company"
	RuleNoColumnValue Rule = "no_column_value"
)

// Basis explains how a market value was derived: the average of Columns
// scaled by Multiplier.
type Basis struct {
	Rule       Rule            `json:"rule"`
	Grade      Grade           `json:"grade"`
	Condition  Condition       `json:"condition,omitempty"`
	Columns    []Column        `json:"columns,omitempty"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Label renders the basis as shown to users, e.g. "PSA 9",
// "~BGS 9 (PSA 9 × 1.05)" or "~Grade 8-9 (Near Mint, estimated)".
func (b Basis) Label() string {
	switch b.Rule {
	case RuleExact, RuleRaw:
		if len(b.Columns) == 1 {
			return b.Columns[0].Label()
		}
		return b.Grade.String()
	case RuleUnknownGrade:
		return b.sourceLabel() + " (graded, grade unknown)"
	case RuleSpecialProxy, RuleCompanyProxy:
		return "~" + b.Grade.String() + " (" + b.sourceLabel() + " × " + b.Multiplier.String() + ")"
	case RuleCondition:
		return "~Grade " + b.Condition.ComparableGrade() + " (" + string(b.Condition) + ", estimated)"
	case RuleUnsupported:
		return "unsupported grader"
	case RuleNoColumnValue:
		return "no reference value for " + b.Grade.String()
	default:
		return "no reference match"
	}
}

func (b Basis) sourceLabel() string {
	switch len(b.Columns) {
	case 0:
		return ""
	case 1:
		return b.Columns[0].Label()
	default:
		labels := make([]string, len(b.Columns))
		for i, c := range b.Columns {
			labels[i] = c.Label()
		}
		return "avg " + strings.Join(labels, "/")
	}
}

// Resolution is a market value together with the basis it was derived from.
// Value is null when no figure could be produced.
type Resolution struct {
	Value decimal.NullDecimal `json:"market_value"`
	Label string              `json:"basis_label"`
	Basis Basis               `json:"basis"`
}

// NewResolution builds a resolution and renders its label.
func NewResolution(value decimal.NullDecimal, basis Basis) Resolution {
	return Resolution{Value: value, Label: basis.Label(), Basis: basis}
}
