package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	"github.com/donaldgifford/card-price-tracker/internal/store"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ReferenceStore defines the store methods required by the reference
// handler.
type ReferenceStore interface {
	LatestReferenceImport(ctx context.Context) (*store.ReferenceImport, error)
	ReferenceHistory(ctx context.Context, productID string, since time.Time) ([]domain.PriceReference, error)
}

// ReferenceHandler serves the loaded reference snapshot and its history.
type ReferenceHandler struct {
	store     ReferenceStore
	snapshots SnapshotSource
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(s ReferenceStore, snapshots SnapshotSource) *ReferenceHandler {
	return &ReferenceHandler{store: s, snapshots: snapshots}
}

// --- Input/Output types ---

// MatchReferenceInput describes the card to look up.
type MatchReferenceInput struct {
	Name   string `query:"name"   required:"true" minLength:"1" doc:"Card name"`
	Number string `query:"number" doc:"Card number (e.g. 9/111 or 9)"`
	Set    string `query:"set"    doc:"Set name"`
}

// MatchReferenceOutput is the matched reference record, if any.
type MatchReferenceOutput struct {
	Body struct {
		Matched   bool                   `json:"matched"`
		Tier      string                 `json:"tier" example:"name+number+set"`
		Reference *domain.PriceReference `json:"reference,omitempty"`
	}
}

// ReferenceStatusOutput describes the loaded and stored snapshots.
type ReferenceStatusOutput struct {
	Body struct {
		Loaded           bool       `json:"loaded"`
		LoadedImportDate *time.Time `json:"loaded_import_date,omitempty"`
		LoadedRecords    int        `json:"loaded_records"`
		StoredImportDate *time.Time `json:"stored_import_date,omitempty"`
		StoredRecords    int        `json:"stored_records"`
	}
}

// CandidatesInput filters tracking candidates.
type CandidatesInput struct {
	MinVolume int    `query:"min_volume" default:"50"  minimum:"0" doc:"Minimum sales volume"`
	MinPSA10  string `query:"min_psa10"  default:"50"  doc:"Minimum PSA 10 price"`
	Limit     int    `query:"limit"      default:"100" minimum:"1" maximum:"1000" doc:"Number of results"`
}

// CandidatesOutput lists cards worth tracking.
type CandidatesOutput struct {
	Body struct {
		Candidates []pricecharting.Candidate `json:"candidates"`
		Total      int                       `json:"total"`
	}
}

// TrendInput selects a product's price history.
type TrendInput struct {
	ProductID string `path:"product_id" doc:"Reference product ID"`
	Column    string `query:"column" default:"psa_10" doc:"Price column" enum:"raw,grade_1,grade_2,grade_3,grade_4,grade_5,grade_6,grade_7,grade_8,grade_9,grade_9_5,psa_10,bgs_10,cgc_10,cgc_10_pristine,sgc_10"`
	Days      int    `query:"days"   default:"30"     minimum:"1" maximum:"365" doc:"History window in days"`
}

// TrendOutput is a product's price trend.
type TrendOutput struct {
	Body *pricecharting.Trend
}

// --- Handlers ---

func (h *ReferenceHandler) snapshot() *matcher.Snapshot {
	if h.snapshots == nil {
		return nil
	}
	return h.snapshots.Load()
}

// Match looks a card up in the loaded snapshot.
func (h *ReferenceHandler) Match(_ context.Context, input *MatchReferenceInput) (*MatchReferenceOutput, error) {
	snap := h.snapshot()
	if snap == nil {
		return nil, huma.Error503ServiceUnavailable("no reference snapshot loaded")
	}

	m := snap.Match(matcher.Query{Name: input.Name, Number: input.Number, Set: input.Set})

	resp := &MatchReferenceOutput{}
	resp.Body.Matched = m.Matched()
	resp.Body.Tier = m.Tier.String()
	resp.Body.Reference = m.Reference
	return resp, nil
}

// Status reports the snapshot in memory and the newest one in the store.
func (h *ReferenceHandler) Status(ctx context.Context, _ *struct{}) (*ReferenceStatusOutput, error) {
	resp := &ReferenceStatusOutput{}

	if snap := h.snapshot(); snap != nil {
		d := snap.ImportDate()
		resp.Body.Loaded = true
		resp.Body.LoadedImportDate = &d
		resp.Body.LoadedRecords = snap.Len()
	}

	latest, err := h.store.LatestReferenceImport(ctx)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, huma.Error500InternalServerError("reading reference imports failed: " + err.Error())
	default:
		resp.Body.StoredImportDate = &latest.ImportDate
		resp.Body.StoredRecords = latest.Records
	}

	return resp, nil
}

// Candidates lists liquid, valuable cards from the loaded snapshot.
func (h *ReferenceHandler) Candidates(_ context.Context, input *CandidatesInput) (*CandidatesOutput, error) {
	minPSA10, err := decimal.NewFromString(input.MinPSA10)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid min_psa10: " + err.Error())
	}

	snap := h.snapshot()
	if snap == nil {
		return nil, huma.Error503ServiceUnavailable("no reference snapshot loaded")
	}

	all := pricecharting.Candidates(snap.Records(), input.MinVolume, minPSA10)

	resp := &CandidatesOutput{}
	resp.Body.Total = len(all)
	resp.Body.Candidates = all[:min(len(all), input.Limit)]
	if resp.Body.Candidates == nil {
		resp.Body.Candidates = []pricecharting.Candidate{}
	}
	return resp, nil
}

// Trend returns a product's price history with 7 and 30 day changes.
func (h *ReferenceHandler) Trend(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	since := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -input.Days)

	history, err := h.store.ReferenceHistory(ctx, input.ProductID, since)
	if err != nil {
		return nil, huma.Error500InternalServerError("reading reference history failed: " + err.Error())
	}
	if len(history) == 0 {
		return nil, huma.Error404NotFound("no reference history for product " + input.ProductID)
	}

	return &TrendOutput{Body: pricecharting.ComputeTrend(input.ProductID, history, domain.Column(input.Column))}, nil
}

// RegisterReferenceRoutes registers reference snapshot endpoints with the
// Huma API.
func RegisterReferenceRoutes(api huma.API, h *ReferenceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "match-reference",
		Method:      http.MethodGet,
		Path:        "/api/v1/reference/match",
		Summary:     "Match a card against the reference snapshot",
		Description: "Runs the tiered name, number and set match and returns the chosen record.",
		Tags:        []string{"reference"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
	}, h.Match)

	huma.Register(api, huma.Operation{
		OperationID: "reference-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/reference/status",
		Summary:     "Reference snapshot status",
		Description: "Returns the import date and record count of the loaded and the stored snapshot.",
		Tags:        []string{"reference"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Status)

	huma.Register(api, huma.Operation{
		OperationID: "reference-candidates",
		Method:      http.MethodGet,
		Path:        "/api/v1/reference/candidates",
		Summary:     "List tracking candidates",
		Description: "Returns cards with enough sales volume and a high enough PSA 10 price to be worth " +
			"tracking, most traded first.",
		Tags:   []string{"reference"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
	}, h.Candidates)

	huma.Register(api, huma.Operation{
		OperationID: "reference-trend",
		Method:      http.MethodGet,
		Path:        "/api/v1/reference/{product_id}/trend",
		Summary:     "Reference price trend",
		Description: "Returns one column's price across stored snapshots with 7 and 30 day changes.",
		Tags:        []string{"reference"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Trend)
}
