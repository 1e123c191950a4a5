package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries. Zero
// values are omitted.
type ListListingsParams struct {
	IdentityKey string
	Grade       string
	Graded      *bool
	MatchTier   string
	MinValue    string
	Limit       int
	Offset      int
	OrderBy     string
}

func (p *ListListingsParams) values() url.Values {
	q := url.Values{}
	if p.IdentityKey != "" {
		q.Set("identity_key", p.IdentityKey)
	}
	if p.Grade != "" {
		q.Set("grade", p.Grade)
	}
	if p.Graded != nil {
		q.Set("graded", strconv.FormatBool(*p.Graded))
	}
	if p.MatchTier != "" {
		q.Set("match_tier", p.MatchTier)
	}
	if p.MinValue != "" {
		q.Set("min_value", p.MinValue)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
	}
	return q
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(ctx context.Context, params *ListListingsParams) (*ListingsResponse, error) {
	path := "/api/v1/listings"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}
