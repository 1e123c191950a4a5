package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Valuer values a single listing record against the current snapshot.
type Valuer interface {
	Valuate(rec *domain.ListingRecord) *domain.Valuation
}

// ValuateHandler values ad-hoc listings without storing them.
type ValuateHandler struct {
	valuer Valuer
}

// NewValuateHandler creates a new ValuateHandler.
func NewValuateHandler(v Valuer) *ValuateHandler {
	return &ValuateHandler{valuer: v}
}

// ValuateInput is a listing as a marketplace would describe it.
type ValuateInput struct {
	Body struct {
		Title        string                    `json:"title"                        minLength:"1" doc:"Listing title"`
		Condition    string                    `json:"condition,omitempty"          doc:"Structured condition (e.g. Graded, Ungraded, Near Mint or Better)"`
		Variant      *domain.VariantAttributes `json:"variant_attributes,omitempty" doc:"Structured item aspects"`
		CardName     string                    `json:"card_name,omitempty"          doc:"Card name; parsed from the title when empty"`
		SetName      string                    `json:"set_name,omitempty"           doc:"Set name; parsed from the title when empty"`
		CardNumber   string                    `json:"card_number,omitempty"        doc:"Card number; parsed from the title when empty"`
		Price        string                    `json:"price,omitempty"              doc:"Asking price" example:"85.00"`
		ShippingCost string                    `json:"shipping_cost,omitempty"      doc:"Shipping cost" example:"4.99"`
	}
}

// ValuateOutput is the valuation plus, when a price was given, how far the
// total cost sits under the market value.
type ValuateOutput struct {
	Body struct {
		domain.Valuation
		TotalCost *decimal.Decimal `json:"total_cost,omitempty"`
		Discount  *decimal.Decimal `json:"discount,omitempty"`
	}
}

// Valuate grades, identifies, matches and prices one listing.
func (h *ValuateHandler) Valuate(_ context.Context, input *ValuateInput) (*ValuateOutput, error) {
	rec := &domain.ListingRecord{
		Title:      input.Body.Title,
		Condition:  input.Body.Condition,
		Variant:    input.Body.Variant,
		CardName:   input.Body.CardName,
		SetName:    input.Body.SetName,
		CardNumber: input.Body.CardNumber,
	}

	var err error
	if input.Body.Price != "" {
		if rec.Price, err = decimal.NewFromString(input.Body.Price); err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid price: " + err.Error())
		}
	}
	if input.Body.ShippingCost != "" {
		ship, err := decimal.NewFromString(input.Body.ShippingCost)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid shipping_cost: " + err.Error())
		}
		rec.ShippingCost = decimal.NewNullDecimal(ship)
	}

	v := h.valuer.Valuate(rec)

	resp := &ValuateOutput{}
	resp.Body.Valuation = *v
	if input.Body.Price != "" {
		total := rec.TotalCost()
		resp.Body.TotalCost = &total
		if v.Resolution.Value.Valid {
			d := v.Resolution.Value.Decimal.Sub(total)
			resp.Body.Discount = &d
		}
	}
	return resp, nil
}

// RegisterValuateRoutes registers the valuation endpoint with the Huma API.
func RegisterValuateRoutes(api huma.API, h *ValuateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "valuate-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/valuate",
		Summary:     "Value a listing",
		Description: "Extracts the grade, builds the identity key, matches the reference snapshot " +
			"and resolves a market value for one listing without storing it.",
		Tags:   []string{"valuation"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Valuate)
}
