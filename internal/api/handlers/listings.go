package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/card-price-tracker/internal/store"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	IdentityKey string `query:"identity_key" doc:"Filter by card identity key"`
	Grade       string `query:"grade"        doc:"Filter by grade label (e.g. PSA 9, Raw)"`
	Graded      string `query:"graded"       doc:"Filter graded or ungraded listings"             enum:"true,false,"`
	MatchTier   string `query:"match_tier"   doc:"Filter by reference match tier"                 enum:"name+number+set,name+number,name+set,name,none,"`
	MinValue    string `query:"min_value"    doc:"Minimum market value (decimal)"                 example:"50.00"`
	Limit       int    `query:"limit"        doc:"Number of results"                 default:"50" minimum:"1" maximum:"500"`
	Offset      int    `query:"offset"       doc:"Pagination offset"                              minimum:"0"`
	OrderBy     string `query:"order_by"     doc:"Sort field"                                     enum:"market_value,price,discount,first_seen_at,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// ListListings returns listings with optional identity, grade and value
// filters and pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.IdentityKey != "" {
		q.IdentityKey = &input.IdentityKey
	}

	if input.Grade != "" {
		q.Grade = &input.Grade
	}

	if input.Graded != "" {
		graded := input.Graded == "true"
		q.Graded = &graded
	}

	if input.MatchTier != "" {
		q.MatchTier = &input.MatchTier
	}

	if input.MinValue != "" {
		v, err := decimal.NewFromString(input.MinValue)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid min_value: " + err.Error())
		}
		q.MinValue = &v
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.store.GetListing(ctx, input.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching listing failed: " + err.Error())
	}

	return &GetListingOutput{Body: *listing}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns stored listings with their latest valuation, filtered by identity, grade, " +
			"match tier or minimum market value.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetListing)
}
