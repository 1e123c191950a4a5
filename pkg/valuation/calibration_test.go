package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

func TestCalibration_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*valuation.Calibration)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*valuation.Calibration) {},
		},
		{
			name: "negative company multiplier",
			mutate: func(c *valuation.Calibration) {
				c.CompanyMultipliers[domain.CompanyCGC] = decimal.RequireFromString("-1")
			},
			wantErr: "multiplier for CGC must be positive",
		},
		{
			name: "empty company",
			mutate: func(c *valuation.Calibration) {
				c.CompanyMultipliers[domain.CompanyNone] = decimal.RequireFromString("1")
			},
			wantErr: "empty company",
		},
		{
			name: "no companies",
			mutate: func(c *valuation.Calibration) {
				c.CompanyMultipliers = nil
			},
			wantErr: "no company multipliers",
		},
		{
			name: "unknown condition",
			mutate: func(c *valuation.Calibration) {
				c.ConditionMultipliers["Mint-ish"] = decimal.RequireFromString("1")
			},
			wantErr: `unknown condition "Mint-ish"`,
		},
		{
			name: "zero condition multiplier",
			mutate: func(c *valuation.Calibration) {
				c.ConditionMultipliers[domain.ConditionGood] = decimal.Zero
			},
			wantErr: "multiplier for Good must be positive",
		},
		{
			name: "bad special rule column",
			mutate: func(c *valuation.Calibration) {
				c.SpecialRules[0].Column = "psa_11"
			},
			wantErr: `special rule 0: unknown column "psa_11"`,
		},
		{
			name: "bad unknown grade column",
			mutate: func(c *valuation.Calibration) {
				c.UnknownGradeColumn = ""
			},
			wantErr: "unknown grade column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cal := valuation.DefaultCalibration()
			tt.mutate(&cal)

			err := cal.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			_, err = valuation.NewResolver(cal)
			require.Error(t, err)
		})
	}
}
