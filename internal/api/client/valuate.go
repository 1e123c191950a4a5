package client

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ValuateRequest is a listing to value.
type ValuateRequest struct {
	Title        string                    `json:"title"`
	Condition    string                    `json:"condition,omitempty"`
	Variant      *domain.VariantAttributes `json:"variant_attributes,omitempty"`
	CardName     string                    `json:"card_name,omitempty"`
	SetName      string                    `json:"set_name,omitempty"`
	CardNumber   string                    `json:"card_number,omitempty"`
	Price        string                    `json:"price,omitempty"`
	ShippingCost string                    `json:"shipping_cost,omitempty"`
}

// ValuateResponse is a valuation plus the discount against the asking price.
type ValuateResponse struct {
	domain.Valuation
	TotalCost *decimal.Decimal `json:"total_cost,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
}

// Valuate values one listing without storing it.
func (c *Client) Valuate(ctx context.Context, req *ValuateRequest) (*ValuateResponse, error) {
	var resp ValuateResponse
	if err := c.post(ctx, "/api/v1/valuate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quota is the eBay daily call quota.
type Quota struct {
	DailyLimit int64      `json:"daily_limit"`
	DailyUsed  int64      `json:"daily_used"`
	Remaining  int64      `json:"remaining"`
	ResetAt    *time.Time `json:"reset_at,omitempty"`
}

// GetQuota returns the eBay API quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var resp Quota
	if err := c.get(ctx, "/api/v1/quota", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
