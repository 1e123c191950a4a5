package engine

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func TestValuator_Valuate(t *testing.T) {
	t.Parallel()

	graded := true
	tests := []struct {
		name      string
		rec       domain.ListingRecord
		snap      *matcher.Snapshot
		wantKey   string
		wantTier  domain.MatchTier
		wantRule  domain.Rule
		wantValue string
		wantGrade *domain.GradeResult
	}{
		{
			name: "first edition holo psa 4 from title",
			rec: domain.ListingRecord{
				Title:     "2000 Pokemon Neo Genesis 1st Edition Lugia Holo PSA 4",
				Condition: "Graded",
			},
			snap:      psa4Snapshot(),
			wantKey:   "LUGIA|NEO GENESIS|UNKNOWN|1ST|HOLO|PSA4",
			wantTier:  domain.MatchNameSet,
			wantRule:  domain.RuleExact,
			wantValue: "60",
			wantGrade: &domain.GradeResult{
				Grade:    domain.SpecificGrade(domain.CompanyPSA, 8),
				IsGraded: true,
			},
		},
		{
			name: "structured graded listing",
			rec: domain.ListingRecord{
				Title:      "Lugia Neo Genesis PSA 9 Holo",
				Condition:  "Graded",
				CardName:   "Lugia",
				SetName:    "Neo Genesis",
				CardNumber: "9/111",
				Variant: &domain.VariantAttributes{
					IsGraded: &graded, Grade: "9", GradingCompany: "PSA", Holo: true,
				},
			},
			snap:      testSnapshot(),
			wantKey:   "LUGIA|NEO GENESIS|9/111|HOLO|PSA9",
			wantTier:  domain.MatchNameNumberSet,
			wantRule:  domain.RuleExact,
			wantValue: "100",
		},
		{
			name: "title fallback with condition estimate",
			rec: domain.ListingRecord{
				Title:     "Lugia 9/111 Neo Genesis Holo Near Mint",
				Condition: "Ungraded",
			},
			snap:      testSnapshot(),
			wantKey:   "LUGIA|NEO GENESIS|9/111|HOLO",
			wantTier:  domain.MatchNameNumberSet,
			wantRule:  domain.RuleCondition,
			wantValue: "240",
		},
		{
			name: "bgs proxies psa",
			rec: domain.ListingRecord{
				Title:    "BGS 9 Lugia 9/111 Neo Genesis",
				CardName: "Lugia", SetName: "Neo Genesis", CardNumber: "9",
			},
			snap:      testSnapshot(),
			wantKey:   "LUGIA|NEO GENESIS|9|BGS9",
			wantTier:  domain.MatchNameNumberSet,
			wantRule:  domain.RuleCompanyProxy,
			wantValue: "105",
		},
		{
			name: "no snapshot",
			rec: domain.ListingRecord{
				Title: "PSA 10 Lugia 9/111 Neo Genesis",
			},
			wantKey:  "LUGIA|NEO GENESIS|9/111|PSA10",
			wantTier: domain.MatchNone,
			wantRule: domain.RuleNoReference,
		},
		{
			name: "unidentifiable card",
			rec: domain.ListingRecord{
				Title: "Mystery vintage card PSA 8",
			},
			snap:     testSnapshot(),
			wantTier: domain.MatchNone,
			wantRule: domain.RuleNoReference,
		},
	}

	v := testValuator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := v.Valuate(&tt.rec, tt.snap)
			require.NotNil(t, got)

			assert.Equal(t, tt.wantKey, got.IdentityKey)
			assert.Equal(t, tt.wantKey != "", got.Identifiable)
			assert.Equal(t, tt.wantTier, got.MatchTier)
			assert.Equal(t, tt.wantRule, got.Resolution.Basis.Rule)
			if tt.wantValue == "" {
				assert.False(t, got.Resolution.Value.Valid)
			} else {
				require.True(t, got.Resolution.Value.Valid)
				assert.Equal(t, tt.wantValue, got.Resolution.Value.Decimal.String())
			}
			if tt.wantGrade != nil {
				assert.Equal(t, *tt.wantGrade, got.Grade)
			}
			if tt.wantTier != domain.MatchNone {
				require.NotNil(t, got.SnapshotDate)
				assert.Equal(t, snapshotDate, *got.SnapshotDate)
			}
		})
	}
}

func psa4Snapshot() *matcher.Snapshot {
	return matcher.NewSnapshot([]domain.PriceReference{
		{
			ProductID:   "6911",
			ProductName: "Lugia 1st Edition #9",
			ConsoleName: "Pokemon Neo Genesis",
			Prices: map[domain.Column]decimal.Decimal{
				domain.ColumnRaw:    decimal.RequireFromString("300"),
				domain.ColumnGrade4: decimal.RequireFromString("60"),
				domain.ColumnGrade9: decimal.RequireFromString("900"),
			},
			ImportDate: snapshotDate,
		},
	})
}

func TestWithTitleFallback(t *testing.T) {
	t.Parallel()

	rec := &domain.ListingRecord{
		Title:    "Charizard 4/102 Base Set Holo",
		CardName: "Charizard EX",
	}
	card := WithTitleFallback(rec)
	assert.Equal(t, "Charizard EX", card.CardName, "structured fields win")
	assert.Equal(t, "Base Set", card.SetName)
	assert.Equal(t, "4/102", card.CardNumber)
	assert.Empty(t, rec.SetName, "input is not modified")
}

func TestSnapshotHolder(t *testing.T) {
	t.Parallel()

	var h SnapshotHolder
	assert.Nil(t, h.Load())

	first := testSnapshot()
	h.Store(first)
	assert.Same(t, first, h.Load())

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			snap := h.Load()
			assert.NotNil(t, snap)
		})
	}
	second := testSnapshot()
	h.Store(second)
	wg.Wait()
	assert.Same(t, second, h.Load())
}
