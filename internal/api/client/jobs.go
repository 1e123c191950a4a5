package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// TriggerResponse reports a finished job.
type TriggerResponse struct {
	Job    string `json:"job"`
	Status string `json:"status"`
}

// ListJobs returns the most recent run of each job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns one job's runs, newest first. A zero limit uses the
// server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// TriggerIngestion runs an ingestion pass and waits for it.
func (c *Client) TriggerIngestion(ctx context.Context) (*TriggerResponse, error) {
	return c.trigger(ctx, "/api/v1/ingest")
}

// TriggerReferenceImport imports the reference table and waits for it.
func (c *Client) TriggerReferenceImport(ctx context.Context) (*TriggerResponse, error) {
	return c.trigger(ctx, "/api/v1/reference/import")
}

// TriggerRevaluation revalues all listings and waits for it.
func (c *Client) TriggerRevaluation(ctx context.Context) (*TriggerResponse, error) {
	return c.trigger(ctx, "/api/v1/revalue")
}

func (c *Client) trigger(ctx context.Context, path string) (*TriggerResponse, error) {
	var resp TriggerResponse
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
