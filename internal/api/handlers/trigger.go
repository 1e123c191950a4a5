package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-price-tracker/internal/engine"
)

// JobTrigger runs a named job and waits for it to finish.
type JobTrigger interface {
	Trigger(ctx context.Context, job string) error
}

// TriggerHandler handles manual job trigger requests.
type TriggerHandler struct {
	trigger JobTrigger
}

// NewTriggerHandler creates a new TriggerHandler.
func NewTriggerHandler(t JobTrigger) *TriggerHandler {
	return &TriggerHandler{trigger: t}
}

// TriggerOutput is the response body for the trigger endpoints.
type TriggerOutput struct {
	Body struct {
		Job    string `json:"job"    example:"ingestion"           doc:"Job that ran"`
		Status string `json:"status" example:"ingestion completed" doc:"Job status"`
	}
}

// Ingest runs an eBay ingestion pass.
func (h *TriggerHandler) Ingest(ctx context.Context, _ *struct{}) (*TriggerOutput, error) {
	return h.run(ctx, engine.JobIngestion)
}

// ImportReferences downloads the reference price table and revalues every
// listing against it.
func (h *TriggerHandler) ImportReferences(ctx context.Context, _ *struct{}) (*TriggerOutput, error) {
	return h.run(ctx, engine.JobReferenceImport)
}

// Revalue revalues every stored listing against the current snapshot.
func (h *TriggerHandler) Revalue(ctx context.Context, _ *struct{}) (*TriggerOutput, error) {
	return h.run(ctx, engine.JobRevaluation)
}

func (h *TriggerHandler) run(ctx context.Context, job string) (*TriggerOutput, error) {
	err := h.trigger.Trigger(ctx, job)
	switch {
	case errors.Is(err, engine.ErrJobRunning):
		return nil, huma.Error409Conflict(job + " is already running")
	case errors.Is(err, engine.ErrNoReferences):
		return nil, huma.Error422UnprocessableEntity(job + " failed: " + err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError(job + " failed: " + err.Error())
	}

	resp := &TriggerOutput{}
	resp.Body.Job = job
	resp.Body.Status = job + " completed"
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *TriggerHandler) {
	errs := []int{http.StatusConflict, http.StatusInternalServerError}

	huma.Register(api, huma.Operation{
		OperationID: "trigger-ingest",
		Method:      http.MethodPost,
		Path:        "/api/v1/ingest",
		Summary:     "Trigger manual ingestion",
		Description: "Searches eBay, stores new and changed listings, and values each one " +
			"against the current reference snapshot.",
		Tags:   []string{"jobs"},
		Errors: errs,
	}, h.Ingest)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-reference-import",
		Method:      http.MethodPost,
		Path:        "/api/v1/reference/import",
		Summary:     "Import reference prices",
		Description: "Downloads the reference price table, stores it as today's snapshot, " +
			"swaps it in for matching, and revalues all listings.",
		Tags:   []string{"jobs", "reference"},
		Errors: append([]int{http.StatusUnprocessableEntity}, errs...),
	}, h.ImportReferences)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-revaluation",
		Method:      http.MethodPost,
		Path:        "/api/v1/revalue",
		Summary:     "Revalue all listings",
		Description: "Recomputes every stored listing's valuation against the current snapshot.",
		Tags:        []string{"jobs"},
		Errors:      errs,
	}, h.Revalue)
}
