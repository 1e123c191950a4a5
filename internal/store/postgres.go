package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

const (
	defaultPoolSize = 10

	// referenceBatchSize bounds the rows queued per pgx.Batch round trip.
	referenceBatchSize = 1000
)

// Option configures a PostgresStore.
type Option func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) Option {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or refreshes a listing by item_id and returns the
// stored row, including any valuation from an earlier pass.
func (s *PostgresStore) UpsertListing(
	ctx context.Context,
	r *domain.ListingRecord,
) (*domain.Listing, error) {
	args := pgx.NamedArgs{
		"item_id":             r.ItemID,
		"title":               r.Title,
		"item_url":            r.ItemURL,
		"image_url":           r.ImageURL,
		"condition_raw":       r.Condition,
		"variant_attributes":  r.Variant,
		"price":               r.Price,
		"currency":            r.Currency,
		"shipping_cost":       r.ShippingCost,
		"listing_type":        string(r.ListingType),
		"seller_name":         r.SellerName,
		"seller_feedback_pct": r.SellerFeedbackPct,
		"card_name":           r.CardName,
		"set_name":            r.SetName,
		"card_number":         r.CardNumber,
		"listed_at":           r.ListedAt,
	}

	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryUpsertListing, args), l); err != nil {
		return nil, fmt.Errorf("upserting listing %s: %w", r.ItemID, err)
	}
	return l, nil
}

// GetListing retrieves a listing by its internal UUID. It returns
// pgx.ErrNoRows when the listing does not exist.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	listings, err := s.queryListings(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListListingsAfter pages through all listings ordered by item_id, starting
// after afterItemID. An empty afterItemID starts from the beginning.
func (s *PostgresStore) ListListingsAfter(
	ctx context.Context,
	afterItemID string,
	limit int,
) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListListingsAfter, afterItemID, limit)
}

// UpdateListingValuation stores a valuation and its denormalized filter columns.
func (s *PostgresStore) UpdateListingValuation(
	ctx context.Context,
	id string,
	v *domain.Valuation,
) error {
	args := pgx.NamedArgs{
		"id":                   id,
		"identity_key":         v.IdentityKey,
		"grade":                v.Grade.Grade.String(),
		"is_graded":            v.Grade.IsGraded,
		"match_tier":           v.MatchTier.String(),
		"reference_product_id": v.ReferenceProductID,
		"market_value":         v.Resolution.Value,
		"valuation":            v,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateListingValuation, args)
	if err != nil {
		return fmt.Errorf("updating valuation for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating valuation for %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// SaveReferenceSnapshot replaces the snapshot for the records' import date
// in one transaction and returns the number of rows written. All records
// must share one ImportDate.
func (s *PostgresStore) SaveReferenceSnapshot(
	ctx context.Context,
	refs []domain.PriceReference,
) (int, error) {
	if len(refs) == 0 {
		return 0, nil
	}
	importDate := refs[0].ImportDate
	for i := range refs {
		if !refs[i].ImportDate.Equal(importDate) {
			return 0, fmt.Errorf("reference %s: import date %s differs from %s",
				refs[i].ProductID, refs[i].ImportDate.Format(time.DateOnly), importDate.Format(time.DateOnly))
		}
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryDeleteReferenceSnapshot, importDate); err != nil {
			return fmt.Errorf("clearing snapshot %s: %w", importDate.Format(time.DateOnly), err)
		}

		for start := 0; start < len(refs); start += referenceBatchSize {
			end := min(start+referenceBatchSize, len(refs))
			if err := insertReferenceBatch(ctx, tx, refs[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("saving reference snapshot: %w", err)
	}
	return len(refs), nil
}

func insertReferenceBatch(ctx context.Context, tx pgx.Tx, refs []domain.PriceReference) error {
	batch := &pgx.Batch{}
	for i := range refs {
		r := &refs[i]
		batch.Queue(queryInsertReferencePrice, pgx.NamedArgs{
			"product_id":   r.ProductID,
			"import_date":  r.ImportDate,
			"product_name": r.ProductName,
			"console_name": r.ConsoleName,
			"genre":        r.Genre,
			"prices":       r.Prices,
			"sales_volume": r.SalesVolume,
			"release_date": r.ReleaseDate,
		})
	}

	results := tx.SendBatch(ctx, batch)
	for i := range refs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("inserting reference %s: %w", refs[i].ProductID, err)
		}
	}
	return results.Close()
}

// LoadLatestReferences returns every record of the most recent snapshot.
func (s *PostgresStore) LoadLatestReferences(ctx context.Context) ([]domain.PriceReference, error) {
	rows, err := s.pool.Query(ctx, queryLoadLatestReferences)
	if err != nil {
		return nil, fmt.Errorf("querying latest references: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// LatestReferenceImport returns the newest snapshot's date and size. It
// returns pgx.ErrNoRows when nothing has been imported.
func (s *PostgresStore) LatestReferenceImport(ctx context.Context) (*ReferenceImport, error) {
	ri := &ReferenceImport{}
	if err := s.pool.QueryRow(ctx, queryLatestReferenceImport).Scan(&ri.ImportDate, &ri.Records); err != nil {
		return nil, err
	}
	return ri, nil
}

// ReferenceHistory returns one product's records from every snapshot on or
// after since, oldest first.
func (s *PostgresStore) ReferenceHistory(
	ctx context.Context,
	productID string,
	since time.Time,
) ([]domain.PriceReference, error) {
	rows, err := s.pool.Query(ctx, queryReferenceHistory, productID, since)
	if err != nil {
		return nil, fmt.Errorf("querying reference history: %w", err)
	}
	defer rows.Close()

	return scanReferences(rows)
}

// PruneReferenceSnapshots keeps the newest keep snapshots and deletes the
// rest, returning the number of rows removed.
func (s *PostgresStore) PruneReferenceSnapshots(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		return 0, errors.New("keep must be at least 1")
	}
	tag, err := s.pool.Exec(ctx, queryPruneReferenceSnapshots, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning reference snapshots: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	if _, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected); err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks 'running' rows older than olderThan as failed,
// then deletes rows older than 30 days. It returns the number marked failed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsFailed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs failed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}
	return affected, nil
}

func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func scanReferences(rows pgx.Rows) ([]domain.PriceReference, error) {
	var refs []domain.PriceReference
	for rows.Next() {
		var r domain.PriceReference
		if err := rows.Scan(
			&r.ProductID, &r.ProductName, &r.ConsoleName, &r.Genre,
			&r.Prices, &r.SalesVolume, &r.ReleaseDate, &r.ImportDate,
		); err != nil {
			return nil, fmt.Errorf("scanning reference: %w", err)
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating references: %w", err)
	}
	return refs, nil
}

func (s *PostgresStore) queryListings(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}
	return listings, nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanListing(row scannable, l *domain.Listing) error {
	var listingType string
	err := row.Scan(
		&l.ID, &l.ItemID, &l.Title, &l.ItemURL, &l.ImageURL, &l.Condition, &l.Variant,
		&l.Price, &l.Currency, &l.ShippingCost, &listingType, &l.SellerName, &l.SellerFeedbackPct,
		&l.CardName, &l.SetName, &l.CardNumber, &l.ListedAt,
		&l.Valuation, &l.ValuedAt, &l.FirstSeenAt, &l.UpdatedAt,
	)
	l.ListingType = domain.ListingType(listingType)
	return err
}
