package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// MatchResponse is the reference record chosen for a card.
type MatchResponse struct {
	Matched   bool                   `json:"matched"`
	Tier      string                 `json:"tier"`
	Reference *domain.PriceReference `json:"reference,omitempty"`
}

// ReferenceStatus describes the loaded and stored snapshots.
type ReferenceStatus struct {
	Loaded           bool       `json:"loaded"`
	LoadedImportDate *time.Time `json:"loaded_import_date,omitempty"`
	LoadedRecords    int        `json:"loaded_records"`
	StoredImportDate *time.Time `json:"stored_import_date,omitempty"`
	StoredRecords    int        `json:"stored_records"`
}

// CandidatesResponse lists cards worth tracking.
type CandidatesResponse struct {
	Candidates []pricecharting.Candidate `json:"candidates"`
	Total      int                       `json:"total"`
}

// MatchReference looks a card up in the server's snapshot.
func (c *Client) MatchReference(ctx context.Context, name, number, set string) (*MatchResponse, error) {
	q := url.Values{"name": {name}}
	if number != "" {
		q.Set("number", number)
	}
	if set != "" {
		q.Set("set", set)
	}

	var resp MatchResponse
	if err := c.get(ctx, "/api/v1/reference/match?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReferenceStatus returns the snapshot status.
func (c *Client) ReferenceStatus(ctx context.Context) (*ReferenceStatus, error) {
	var resp ReferenceStatus
	if err := c.get(ctx, "/api/v1/reference/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Candidates lists tracking candidates. Zero or empty arguments use the
// server defaults.
func (c *Client) Candidates(ctx context.Context, minVolume int, minPSA10 string, limit int) (*CandidatesResponse, error) {
	q := url.Values{}
	if minVolume > 0 {
		q.Set("min_volume", strconv.Itoa(minVolume))
	}
	if minPSA10 != "" {
		q.Set("min_psa10", minPSA10)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/reference/candidates"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp CandidatesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Trend returns a product's price trend for one column.
func (c *Client) Trend(ctx context.Context, productID, column string, days int) (*pricecharting.Trend, error) {
	q := url.Values{}
	if column != "" {
		q.Set("column", column)
	}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	path := "/api/v1/reference/" + url.PathEscape(productID) + "/trend"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp pricecharting.Trend
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
