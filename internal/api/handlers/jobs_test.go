package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/api/handlers"
	storeMocks "github.com/donaldgifford/card-price-tracker/internal/store/mocks"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func sampleJobRun(jobName, status string) domain.JobRun {
	return domain.JobRun{
		ID:        "job-run-" + jobName,
		JobName:   jobName,
		StartedAt: time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestListJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runs       []domain.JobRun
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name: "latest run per job",
			runs: []domain.JobRun{
				sampleJobRun("ingestion", domain.JobStatusSucceeded),
				sampleJobRun("reference_import", domain.JobStatusFailed),
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"job_name":"ingestion"`, `"job_name":"reference_import"`, `"status":"failed"`},
		},
		{
			name:       "no runs yet",
			wantStatus: http.StatusOK,
			wantBody:   []string{"[]"},
		},
		{
			name:       "store error",
			err:        errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"listing jobs failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListLatestJobRuns(mock.Anything).Return(tt.runs, tt.err).Once()

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(ms))

			resp := api.Get("/api/v1/jobs")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetJobHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "default limit",
			path: "/api/v1/jobs/ingestion",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListJobRuns(mock.Anything, "ingestion", 20).
					Return([]domain.JobRun{sampleJobRun("ingestion", domain.JobStatusSucceeded)}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"job_name":"ingestion"`,
		},
		{
			name: "explicit limit",
			path: "/api/v1/jobs/revaluation?limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListJobRuns(mock.Anything, "revaluation", 5).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name:       "unknown job rejected",
			path:       "/api/v1/jobs/baseline_refresh",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/jobs/reference_import",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListJobRuns(mock.Anything, "reference_import", 20).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching job history failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
