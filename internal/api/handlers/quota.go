package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-price-tracker/internal/ebay"
)

// QuotaReporter exposes the eBay daily call quota.
type QuotaReporter interface {
	Usage() ebay.Usage
}

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	rl QuotaReporter
}

// NewQuotaHandler creates a new QuotaHandler. A nil reporter yields zeroes,
// which is what a deployment without eBay credentials reports.
func NewQuotaHandler(rl QuotaReporter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64      `json:"daily_limit"        example:"5000"                 doc:"Configured daily API call limit"`
		DailyUsed  int64      `json:"daily_used"         example:"142"                  doc:"API calls used since the last reset"`
		Remaining  int64      `json:"remaining"          example:"4858"                 doc:"API calls remaining before the reset"`
		ResetAt    *time.Time `json:"reset_at,omitempty" example:"2026-10-18T07:00:00Z" doc:"Next quota reset (midnight Pacific)"`
	}
}

// GetQuota returns the current eBay API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	u := h.rl.Usage()
	resp.Body.DailyLimit = u.Limit
	resp.Body.DailyUsed = u.Count
	resp.Body.Remaining = u.Remaining()
	resp.Body.ResetAt = &u.ResetAt

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the current daily API call usage, remaining quota, and reset time.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
