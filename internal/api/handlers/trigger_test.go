package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/card-price-tracker/internal/engine"
)

// fakeTrigger implements JobTrigger for testing.
type fakeTrigger struct {
	err error
	got string
}

func (f *fakeTrigger) Trigger(_ context.Context, job string) error {
	f.got = job
	return f.err
}

func TestTriggerHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		err        error
		wantJob    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ingest",
			path:       "/api/v1/ingest",
			wantJob:    engine.JobIngestion,
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ingestion completed"`,
		},
		{
			name:       "reference import",
			path:       "/api/v1/reference/import",
			wantJob:    engine.JobReferenceImport,
			wantStatus: http.StatusOK,
			wantBody:   `"job":"reference_import"`,
		},
		{
			name:       "revalue",
			path:       "/api/v1/revalue",
			wantJob:    engine.JobRevaluation,
			wantStatus: http.StatusOK,
			wantBody:   `"status":"revaluation completed"`,
		},
		{
			name:       "already running is a conflict",
			path:       "/api/v1/ingest",
			err:        engine.ErrJobRunning,
			wantJob:    engine.JobIngestion,
			wantStatus: http.StatusConflict,
			wantBody:   "ingestion is already running",
		},
		{
			name:       "empty reference table",
			path:       "/api/v1/reference/import",
			err:        fmt.Errorf("import: %w", engine.ErrNoReferences),
			wantJob:    engine.JobReferenceImport,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "reference import produced no records",
		},
		{
			name:       "job failure",
			path:       "/api/v1/revalue",
			err:        errors.New("3 listings failed revaluation"),
			wantJob:    engine.JobRevaluation,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "revaluation failed: 3 listings failed revaluation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ft := &fakeTrigger{err: tt.err}
			_, api := humatest.New(t)
			handlers.RegisterTriggerRoutes(api, handlers.NewTriggerHandler(ft))

			resp := api.Post(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantJob, ft.got)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
