// Package valuation turns an extracted grade and a matched reference record
// into a single market value with a documented basis.
package valuation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// SpecialRule prices one company grade from a named column instead of the
// generic ladder.
type SpecialRule struct {
	Company    domain.Company
	Tier       domain.Tier
	Column     domain.Column
	Multiplier decimal.Decimal
}

// Calibration holds the empirical constants used for proxy estimates. The
// defaults are observed market relationships, not derived values, and are
// expected to be revised.
type Calibration struct {
	// CompanyMultipliers scale PSA-equivalent ladder prices to a grader.
	// Graders missing from this table are unsupported.
	CompanyMultipliers map[domain.Company]decimal.Decimal

	// SpecialRules are tried before the ladder proxy.
	SpecialRules []SpecialRule

	// ConditionMultipliers scale the raw column for ungraded cards.
	ConditionMultipliers map[domain.Condition]decimal.Decimal

	// UnknownGradeColumn values graded cards whose grade is unknown.
	UnknownGradeColumn domain.Column
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultCalibration returns the built-in constants.
func DefaultCalibration() Calibration {
	return Calibration{
		CompanyMultipliers: map[domain.Company]decimal.Decimal{
			domain.CompanyPSA: d("1.00"),
			domain.CompanyBGS: d("1.05"),
			domain.CompanyCGC: d("0.95"),
			domain.CompanySGC: d("0.90"),
		},
		SpecialRules: []SpecialRule{
			{Company: domain.CompanySGC, Tier: 19, Column: domain.ColumnSGC10, Multiplier: d("0.85")},
		},
		ConditionMultipliers: map[domain.Condition]decimal.Decimal{
			domain.ConditionGemMint:      d("1.5"),
			domain.ConditionNearMint:     d("1.2"),
			domain.ConditionExcellent:    d("0.9"),
			domain.ConditionVeryGood:     d("0.7"),
			domain.ConditionLightPlay:    d("0.6"),
			domain.ConditionGood:         d("0.5"),
			domain.ConditionModeratePlay: d("0.4"),
			domain.ConditionHeavyPlay:    d("0.3"),
			domain.ConditionDamaged:      d("0.2"),
		},
		UnknownGradeColumn: domain.ColumnGrade8,
	}
}

// Validate checks that every multiplier is positive and every column is
// known.
func (c Calibration) Validate() error {
	var errs []error

	if len(c.CompanyMultipliers) == 0 {
		errs = append(errs, errors.New("calibration: no company multipliers"))
	}
	for company, m := range c.CompanyMultipliers {
		if company == domain.CompanyNone {
			errs = append(errs, errors.New("calibration: company multiplier with empty company"))
		}
		if !m.IsPositive() {
			errs = append(errs, fmt.Errorf("calibration: multiplier for %s must be positive", company))
		}
	}
	for i, r := range c.SpecialRules {
		if !knownColumn(r.Column) {
			errs = append(errs, fmt.Errorf("calibration: special rule %d: unknown column %q", i, r.Column))
		}
		if !r.Multiplier.IsPositive() {
			errs = append(errs, fmt.Errorf("calibration: special rule %d: multiplier must be positive", i))
		}
	}
	for cond, m := range c.ConditionMultipliers {
		if !cond.Valid() {
			errs = append(errs, fmt.Errorf("calibration: unknown condition %q", cond))
		}
		if !m.IsPositive() {
			errs = append(errs, fmt.Errorf("calibration: multiplier for %s must be positive", cond))
		}
	}
	if !knownColumn(c.UnknownGradeColumn) {
		errs = append(errs, fmt.Errorf("calibration: unknown grade column %q", c.UnknownGradeColumn))
	}

	return errors.Join(errs...)
}

// companyMultiplier returns the multiplier for a grader. A specific grade
// with no company values like PSA.
func (c Calibration) companyMultiplier(company domain.Company) (decimal.Decimal, bool) {
	if company == domain.CompanyNone {
		company = domain.CompanyPSA
	}
	m, ok := c.CompanyMultipliers[company]
	return m, ok
}

func knownColumn(col domain.Column) bool { return col.Valid() }
