package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
)

// Pinger checks connectivity to the backing database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SnapshotSource returns the reference snapshot currently in use, or nil
// before the first import has been loaded.
type SnapshotSource interface {
	Load() *matcher.Snapshot
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	db        Pinger
	snapshots SnapshotSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, snapshots SnapshotSource) *HealthHandler {
	return &HealthHandler{db: db, snapshots: snapshots}
}

// ReadyResponse is the readiness response body.
type ReadyResponse struct {
	Status             string `json:"status"             example:"ready"`
	SnapshotLoaded     bool   `json:"snapshot_loaded"`
	SnapshotRecords    int    `json:"snapshot_records"`
	SnapshotImportDate string `json:"snapshot_import_date,omitempty" example:"2026-10-17"`
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise. The body
// reports whether a reference snapshot is loaded; listings are served
// without one but valuations resolve to no_reference until it is.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}

	resp := ReadyResponse{Status: "ready"}
	if h.snapshots != nil {
		if snap := h.snapshots.Load(); snap != nil {
			resp.SnapshotLoaded = true
			resp.SnapshotRecords = snap.Len()
			resp.SnapshotImportDate = snap.ImportDate().Format("2006-01-02")
		}
	}
	return c.JSON(http.StatusOK, resp)
}
