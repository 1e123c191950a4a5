// Package store defines the datastore abstraction for card-price-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	IdentityKey *string
	Grade       *string
	Graded      *bool
	MatchTier   *string
	MinValue    *decimal.Decimal
	Limit       int // default 50
	Offset      int
	OrderBy     string // "market_value", "price", "discount", "first_seen_at"
}

// ReferenceImport summarizes one stored reference snapshot.
type ReferenceImport struct {
	ImportDate time.Time `json:"import_date"`
	Records    int       `json:"records"`
}

// Store defines all data access operations for card-price-tracker.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, r *domain.ListingRecord) (*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	ListListingsAfter(ctx context.Context, afterItemID string, limit int) ([]domain.Listing, error)
	UpdateListingValuation(ctx context.Context, id string, v *domain.Valuation) error

	// Reference snapshots
	SaveReferenceSnapshot(ctx context.Context, refs []domain.PriceReference) (int, error)
	LoadLatestReferences(ctx context.Context) ([]domain.PriceReference, error)
	LatestReferenceImport(ctx context.Context) (*ReferenceImport, error)
	ReferenceHistory(ctx context.Context, productID string, since time.Time) ([]domain.PriceReference, error)
	PruneReferenceSnapshots(ctx context.Context, keep int) (int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
