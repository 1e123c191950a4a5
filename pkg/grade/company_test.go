package grade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-price-tracker/pkg/grade"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func TestNormalizeCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want domain.Company
	}{
		{name: "psa short", in: "PSA", want: domain.CompanyPSA},
		{name: "psa long", in: "Professional Sports Authenticator", want: domain.CompanyPSA},
		{name: "cgc long", in: "Certified Guaranty Company", want: domain.CompanyCGC},
		{name: "beckett", in: "Beckett Grading Services", want: domain.CompanyBGS},
		{name: "bgs lowercase", in: "bgs", want: domain.CompanyBGS},
		{name: "sgc", in: "SGC", want: domain.CompanySGC},
		{name: "unknown passes through", in: "  Ace Grading ", want: domain.Company("Ace Grading")},
		{name: "empty", in: "", want: domain.CompanyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, grade.NormalizeCompany(tt.in))
		})
	}
}

func TestParseGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in           string
		wantTier     domain.Tier
		wantPristine bool
		wantOK       bool
	}{
		{in: "9", wantTier: 18, wantOK: true},
		{in: "9.5", wantTier: 19, wantOK: true},
		{in: "10.0", wantTier: 20, wantOK: true},
		{in: "Gem Mint 10", wantTier: 20, wantOK: true},
		{in: "10 Pristine", wantTier: 20, wantPristine: true, wantOK: true},
		{in: "9.3", wantOK: false},
		{in: "11", wantOK: false},
		{in: "Mint", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			tier, pristine, ok := grade.ParseGrade(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantPristine, pristine)
		})
	}
}

func TestGradedStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		wantGraded bool
		wantKnown  bool
	}{
		{in: "Graded", wantGraded: true, wantKnown: true},
		{in: "graded", wantGraded: true, wantKnown: true},
		{in: "Ungraded", wantGraded: false, wantKnown: true},
		{in: "Nicht bewertet", wantGraded: false, wantKnown: true},
		{in: "Bewertet", wantGraded: true, wantKnown: true},
		{in: "Valutata", wantGraded: true, wantKnown: true},
		{in: "Used", wantKnown: false},
		{in: "", wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			graded, known := grade.GradedStatus(tt.in)
			assert.Equal(t, tt.wantGraded, graded)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}
