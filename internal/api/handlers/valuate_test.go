package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/card-price-tracker/internal/engine"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

// snapshotValuer values against a fixed snapshot.
type snapshotValuer struct {
	v    *engine.Valuator
	snap *matcher.Snapshot
}

func (s snapshotValuer) Valuate(rec *domain.ListingRecord) *domain.Valuation {
	return s.v.Valuate(rec, s.snap)
}

func newTestValuer(t *testing.T) snapshotValuer {
	t.Helper()
	r, err := valuation.NewResolver(valuation.DefaultCalibration())
	require.NoError(t, err)
	return snapshotValuer{v: engine.NewValuator(r), snap: lugiaSnapshot().snap}
}

func TestValuateHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   []string
		notBody    []string
	}{
		{
			name: "structured psa 9 with price",
			body: map[string]any{
				"title":         "Lugia Neo Genesis PSA 9 Holo",
				"condition":     "Graded",
				"card_name":     "Lugia",
				"set_name":      "Neo Genesis",
				"card_number":   "9/111",
				"price":         "85.00",
				"shipping_cost": "5",
				"variant_attributes": map[string]any{
					"is_graded": true, "grade": "9", "grading_company": "PSA", "is_holo": true,
				},
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"identity_key":"LUGIA|NEO GENESIS|9/111|HOLO|PSA9"`,
				`"reference_product_id":"1001"`,
				`"market_value":"100"`,
				`"basis_label":"PSA 9"`,
				`"total_cost":"90"`,
				`"discount":"10"`,
			},
		},
		{
			name: "title only without price",
			body: map[string]any{
				"title": "PSA 10 Lugia 9/111 Neo Genesis",
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"identity_key":"LUGIA|NEO GENESIS|9/111|PSA10"`, `"market_value":"1400"`},
			notBody:    []string{`"discount"`, `"total_cost"`},
		},
		{
			name: "price without market value has no discount",
			body: map[string]any{
				"title": "Pokemon mystery pack",
				"price": "20",
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"identifiable":false`, `"total_cost":"20"`},
			notBody:    []string{`"discount"`},
		},
		{
			name:       "invalid price",
			body:       map[string]any{"title": "PSA 9 Lugia", "price": "cheap"},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"invalid price"},
		},
		{
			name:       "invalid shipping",
			body:       map[string]any{"title": "PSA 9 Lugia", "shipping_cost": "free"},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"invalid shipping_cost"},
		},
		{
			name:       "title required",
			body:       map[string]any{"title": ""},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterValuateRoutes(api, handlers.NewValuateHandler(newTestValuer(t)))

			resp := api.Post("/api/v1/valuate", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			for _, not := range tt.notBody {
				assert.NotContains(t, resp.Body.String(), not)
			}
		})
	}
}
