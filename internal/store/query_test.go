package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY first_seen_at DESC, id",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
		},
		{
			name:         "identity key filter",
			query:        ListingQuery{IdentityKey: ptr("lugia|neo genesis|9|holo|1st|PSA9")},
			wantDataHas:  []string{"WHERE identity_key = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE identity_key = $1",
			wantArgs:     []any{"lugia|neo genesis|9|holo|1st|PSA9"},
		},
		{
			name:         "graded filter",
			query:        ListingQuery{Graded: ptr(false)},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE is_graded = $1",
			wantArgs:     []any{false},
		},
		{
			name: "combined filters number params in order",
			query: ListingQuery{
				Grade:     ptr("PSA 10"),
				MatchTier: ptr("name+number+set"),
				MinValue:  ptr(decimal.NewFromInt(100)),
			},
			wantDataHas: []string{
				"WHERE grade = $1 AND match_tier = $2 AND market_value >= $3",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE grade = $1 AND match_tier = $2 AND market_value >= $3",
			wantArgs:     []any{"PSA 10", "name+number+set", decimal.NewFromInt(100)},
		},
		{
			name:        "order by discount",
			query:       ListingQuery{OrderBy: "discount"},
			wantDataHas: []string{"ORDER BY (market_value - price) DESC NULLS LAST"},
		},
		{
			name:        "order by market value",
			query:       ListingQuery{OrderBy: "market_value"},
			wantDataHas: []string{"ORDER BY market_value DESC NULLS LAST"},
		},
		{
			name:          "unknown order by falls back to default",
			query:         ListingQuery{OrderBy: "price; DROP TABLE listings"},
			wantDataHas:   []string{"ORDER BY first_seen_at DESC"},
			wantDataNotIn: []string{"DROP"},
		},
		{
			name:        "limit is capped",
			query:       ListingQuery{Limit: 10000, Offset: 20},
			wantDataHas: []string{"LIMIT 500", "OFFSET 20"},
		},
		{
			name:        "negative offset is clamped",
			query:       ListingQuery{Limit: 5, Offset: -3},
			wantDataHas: []string{"LIMIT 5", "OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
