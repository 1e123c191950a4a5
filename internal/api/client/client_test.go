package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantMsg    string
	}{
		{
			name:       "problem json detail",
			status:     http.StatusConflict,
			body:       `{"title":"Conflict","status":409,"detail":"ingestion is already running"}`,
			wantDetail: "ingestion is already running",
			wantMsg:    "API error (HTTP 409): ingestion is already running",
		},
		{
			name:    "plain body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantMsg: "API error (HTTP 502): upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).TriggerIngestion(t.Context())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	graded := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "PSA 9", q.Get("grade"))
		assert.Equal(t, "true", q.Get("graded"))
		assert.Equal(t, "25", q.Get("min_value"))
		assert.Equal(t, "discount", q.Get("order_by"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("offset"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListingsResponse{
			Listings: []domain.Listing{{ID: "l1"}},
			Total:    1,
			Limit:    10,
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListListings(t.Context(), &ListListingsParams{
		Grade:    "PSA 9",
		Graded:   &graded,
		MinValue: "25",
		OrderBy:  "discount",
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "l1", resp.Listings[0].ID)
}

func TestClient_GetJobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/reference_import", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode([]domain.JobRun{{ID: "r1", JobName: "reference_import"}})
	}))
	defer srv.Close()

	runs, err := New(srv.URL).GetJobHistory(t.Context(), "reference_import", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "reference_import", runs[0].JobName)
}

func TestClient_Triggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		wantPath string
		call     func(*Client, *testing.T) (*TriggerResponse, error)
	}{
		{
			name:     "ingest",
			wantPath: "/api/v1/ingest",
			call: func(c *Client, t *testing.T) (*TriggerResponse, error) {
				return c.TriggerIngestion(t.Context())
			},
		},
		{
			name:     "reference import",
			wantPath: "/api/v1/reference/import",
			call: func(c *Client, t *testing.T) (*TriggerResponse, error) {
				return c.TriggerReferenceImport(t.Context())
			},
		},
		{
			name:     "revalue",
			wantPath: "/api/v1/revalue",
			call: func(c *Client, t *testing.T) (*TriggerResponse, error) {
				return c.TriggerRevaluation(t.Context())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				_, _ = w.Write([]byte(`{"job":"x","status":"x completed"}`))
			}))
			defer srv.Close()

			resp, err := tt.call(New(srv.URL), t)
			require.NoError(t, err)
			assert.Equal(t, "x completed", resp.Status)
		})
	}
}

func TestClient_Valuate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ValuateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PSA 9 Lugia 9/111 Neo Genesis", req.Title)
		assert.Equal(t, "85", req.Price)

		_, _ = w.Write([]byte(`{
			"grade": {"grade": "PSA 9", "is_graded": true},
			"identity_key": "LUGIA|NEO GENESIS|9/111|PSA9",
			"identifiable": true,
			"match_tier": 1,
			"resolution": {"market_value": "100", "basis_label": "PSA 9", "basis": {"rule": "exact", "grade": "PSA 9", "multiplier": "1"}},
			"total_cost": "85",
			"discount": "15"
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Valuate(t.Context(), &ValuateRequest{
		Title: "PSA 9 Lugia 9/111 Neo Genesis",
		Price: "85",
	})
	require.NoError(t, err)
	assert.Equal(t, "LUGIA|NEO GENESIS|9/111|PSA9", resp.IdentityKey)
	assert.Equal(t, domain.MatchNameNumberSet, resp.MatchTier)
	assert.Equal(t, "100", resp.Resolution.Value.Decimal.String())
	require.NotNil(t, resp.Discount)
	assert.Equal(t, "15", resp.Discount.String())
}

func TestClient_Reference(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/reference/match", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lugia", r.URL.Query().Get("name"))
		assert.Equal(t, "9/111", r.URL.Query().Get("number"))
		assert.False(t, r.URL.Query().Has("set"))
		_, _ = w.Write([]byte(`{"matched":true,"tier":"name+number","reference":{"product_id":"1001"}}`))
	})
	mux.HandleFunc("GET /api/v1/reference/candidates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("min_volume"))
		_, _ = w.Write([]byte(`{"candidates":[{"product_id":"1001","card_name":"Lugia"}],"total":1}`))
	})
	mux.HandleFunc("GET /api/v1/reference/{id}/trend", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1001", r.PathValue("id"))
		assert.Equal(t, "psa_10", r.URL.Query().Get("column"))
		_, _ = w.Write([]byte(`{"product_id":"1001","column":"psa_10","points":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL + "/")

	m, err := c.MatchReference(t.Context(), "Lugia", "9/111", "")
	require.NoError(t, err)
	assert.True(t, m.Matched)
	assert.Equal(t, "1001", m.Reference.ProductID)

	cands, err := c.Candidates(t.Context(), 100, "", 0)
	require.NoError(t, err)
	require.Len(t, cands.Candidates, 1)
	assert.Equal(t, "Lugia", cands.Candidates[0].CardName)

	trend, err := c.Trend(t.Context(), "1001", "psa_10", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnPSA10, trend.Column)
}
