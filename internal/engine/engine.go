package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/card-price-tracker/internal/ebay"
	"github.com/donaldgifford/card-price-tracker/internal/metrics"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	"github.com/donaldgifford/card-price-tracker/internal/store"
	"github.com/donaldgifford/card-price-tracker/pkg/identity"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

const (
	defaultConcurrency         = 8
	defaultRevaluationPageSize = 500
	defaultSearchLimit         = 50
)

// ErrNoReferences is returned when an import yields no usable records. The
// current snapshot is left in place.
var ErrNoReferences = errors.New("reference import produced no records")

// Search is one configured marketplace query.
type Search struct {
	Name       string
	Query      string
	CategoryID string
	Limit      int
}

// Engine orchestrates ingestion, reference imports and valuation.
type Engine struct {
	store     store.Store
	ebay      ebay.EbayClient
	fetcher   pricecharting.Fetcher
	valuator  *Valuator
	snapshots *SnapshotHolder
	log       *slog.Logger

	searches          []Search
	detailMinPrice    decimal.Decimal
	consoleFilter     string
	columnHeaders     map[string]domain.Column
	concurrency       int
	pageSize          int
	snapshotRetention int
	now               func() time.Time
}

// NewEngine creates a new Engine with injected dependencies. e and f may be
// nil when ingestion or imports are not configured.
func NewEngine(
	s store.Store,
	e ebay.EbayClient,
	f pricecharting.Fetcher,
	v *Valuator,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		ebay:        e,
		fetcher:     f,
		valuator:    v,
		snapshots:   &SnapshotHolder{},
		log:         slog.Default(),
		concurrency: defaultConcurrency,
		pageSize:    defaultRevaluationPageSize,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSearches sets the marketplace queries run by ingestion.
func WithSearches(searches []Search) EngineOption {
	return func(e *Engine) {
		e.searches = searches
	}
}

// WithDetailMinPrice sets the price at or above which ingestion fetches
// item details (aspects and condition descriptors).
func WithDetailMinPrice(p decimal.Decimal) EngineOption {
	return func(e *Engine) {
		e.detailMinPrice = p
	}
}

// WithConsoleFilter restricts imported reference rows to consoles whose
// name contains substr.
func WithConsoleFilter(substr string) EngineOption {
	return func(e *Engine) {
		e.consoleFilter = substr
	}
}

// WithColumnHeaders adds CSV header mappings to reference imports.
func WithColumnHeaders(headers map[string]domain.Column) EngineOption {
	return func(e *Engine) {
		e.columnHeaders = headers
	}
}

// WithConcurrency bounds the number of listings revalued in parallel.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithRevaluationPageSize sets how many listings are read per page during
// revaluation.
func WithRevaluationPageSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// WithSnapshotRetention keeps only the newest n reference snapshots after
// each import. Zero keeps all.
func WithSnapshotRetention(n int) EngineOption {
	return func(e *Engine) {
		e.snapshotRetention = n
	}
}

// WithSnapshotHolder shares a snapshot holder with other components.
func WithSnapshotHolder(h *SnapshotHolder) EngineOption {
	return func(e *Engine) {
		e.snapshots = h
	}
}

// WithNowFunc overrides the clock used to date reference imports.
func WithNowFunc(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Snapshots returns the holder of the current reference snapshot.
func (eng *Engine) Snapshots() *SnapshotHolder {
	return eng.snapshots
}

// Valuate values one listing against the current snapshot without storing it.
func (eng *Engine) Valuate(rec *domain.ListingRecord) *domain.Valuation {
	return eng.valuator.Valuate(rec, eng.snapshots.Load())
}

// LoadSnapshot publishes the most recent stored reference snapshot. An
// empty store leaves the holder unset.
func (eng *Engine) LoadSnapshot(ctx context.Context) error {
	refs, err := eng.store.LoadLatestReferences(ctx)
	if err != nil {
		return fmt.Errorf("loading reference snapshot: %w", err)
	}
	if len(refs) == 0 {
		eng.log.Warn("no stored reference snapshot; valuations will have no reference match")
		return nil
	}

	snap := matcher.NewSnapshot(refs)
	eng.snapshots.Store(snap)
	eng.log.Info("reference snapshot loaded",
		"records", snap.Len(),
		"import_date", snap.ImportDate().Format(time.DateOnly),
	)
	return nil
}

// RunIngestion runs every configured search, stores single-card listings
// and values them. It returns the number of listings stored.
func (eng *Engine) RunIngestion(ctx context.Context) (int, error) {
	if eng.ebay == nil {
		return 0, errors.New("ingestion is not configured")
	}

	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := eng.snapshots.Load()
	var stored int

	for i := range eng.searches {
		if err := ctx.Err(); err != nil {
			return stored, err
		}

		s := &eng.searches[i]
		n, err := eng.processSearch(ctx, s, snap)
		stored += n
		if err == nil {
			continue
		}
		if errors.Is(err, ebay.ErrDailyLimitReached) {
			eng.log.Warn("daily API limit reached, stopping ingestion",
				"search", s.Name,
				"stored", stored,
			)
			break
		}
		if ctx.Err() != nil {
			return stored, ctx.Err()
		}
		eng.log.Error("search failed", "search", s.Name, "error", err)
		metrics.IngestionErrorsTotal.Inc()
	}

	return stored, nil
}

func (eng *Engine) processSearch(ctx context.Context, s *Search, snap *matcher.Snapshot) (int, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	resp, err := eng.ebay.Search(ctx, ebay.SearchRequest{
		Query:      s.Query,
		CategoryID: s.CategoryID,
		Limit:      limit,
		Sort:       "newlyListed",
	})
	if err != nil {
		return 0, fmt.Errorf("searching eBay: %w", err)
	}

	eng.log.Info("search complete", "search", s.Name, "items", len(resp.Items), "total", resp.Total)

	var stored int
	for i := range resp.Items {
		ok, err := eng.processItem(ctx, &resp.Items[i], snap)
		if err != nil {
			return stored, err
		}
		if ok {
			stored++
		}
	}
	return stored, nil
}

// processItem stores and values one search result. Only a daily-limit or
// context error is returned; other failures are logged and skipped.
func (eng *Engine) processItem(
	ctx context.Context,
	sum *ebay.ItemSummary,
	snap *matcher.Snapshot,
) (bool, error) {
	if !identity.IsSingleCardListing(sum.Title) {
		metrics.IngestionSkippedTotal.WithLabelValues("lot").Inc()
		eng.log.Debug("skipping multi-card listing", "item_id", sum.ItemID, "title", sum.Title)
		return false, nil
	}

	detail, err := eng.fetchDetail(ctx, sum)
	if err != nil {
		return false, err
	}

	rec := ebay.ToListingRecord(sum, detail)
	if !rec.Price.IsPositive() {
		metrics.IngestionSkippedTotal.WithLabelValues("no_price").Inc()
		return false, nil
	}

	listing, err := eng.store.UpsertListing(ctx, &rec)
	if err != nil {
		eng.log.Error("upsert failed", "item_id", rec.ItemID, "error", err)
		metrics.IngestionErrorsTotal.Inc()
		return false, nil
	}
	metrics.IngestionListingsTotal.Inc()

	v := eng.valuator.Valuate(&rec, snap)
	if err := eng.store.UpdateListingValuation(ctx, listing.ID, v); err != nil {
		eng.log.Error("storing valuation failed", "item_id", rec.ItemID, "error", err)
		metrics.IngestionErrorsTotal.Inc()
	}
	return true, nil
}

func (eng *Engine) fetchDetail(ctx context.Context, sum *ebay.ItemSummary) (*ebay.Item, error) {
	price, err := decimal.NewFromString(sum.Price.Value)
	if err != nil || price.LessThan(eng.detailMinPrice) {
		return nil, nil
	}

	item, err := eng.ebay.GetItem(ctx, sum.ItemID)
	switch {
	case err == nil:
		return item, nil
	case errors.Is(err, ebay.ErrDailyLimitReached), ctx.Err() != nil:
		return nil, err
	default:
		eng.log.Warn("item detail fetch failed, using summary only",
			"item_id", sum.ItemID,
			"error", err,
		)
		return nil, nil
	}
}

// RunReferenceImport downloads and parses the reference table, stores it
// as today's snapshot, publishes it and revalues stored listings. It
// returns the number of reference records imported.
func (eng *Engine) RunReferenceImport(ctx context.Context) (int, error) {
	if eng.fetcher == nil {
		return 0, errors.New("reference import is not configured")
	}

	start := time.Now()
	defer func() {
		metrics.ReferenceImportDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := eng.fetcher.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching reference table: %w", err)
	}
	defer body.Close()

	today := eng.now().UTC().Truncate(24 * time.Hour)
	var parseOpts []pricecharting.ParseOption
	if eng.consoleFilter != "" {
		parseOpts = append(parseOpts, pricecharting.WithConsoleFilter(eng.consoleFilter))
	}
	if len(eng.columnHeaders) > 0 {
		parseOpts = append(parseOpts, pricecharting.WithColumnHeaders(eng.columnHeaders))
	}

	res, err := pricecharting.Parse(body, today, parseOpts...)
	if err != nil {
		return 0, fmt.Errorf("parsing reference table: %w", err)
	}
	metrics.ReferenceImportSkippedRows.Add(float64(res.Skipped))
	if len(res.References) == 0 {
		return 0, ErrNoReferences
	}

	n, err := eng.store.SaveReferenceSnapshot(ctx, res.References)
	if err != nil {
		return 0, err
	}
	metrics.ReferenceImportRows.Set(float64(n))

	eng.snapshots.Store(matcher.NewSnapshot(res.References))
	eng.log.Info("reference snapshot imported",
		"records", n,
		"skipped", res.Skipped,
		"import_date", today.Format(time.DateOnly),
	)

	if eng.snapshotRetention > 0 {
		removed, err := eng.store.PruneReferenceSnapshots(ctx, eng.snapshotRetention)
		if err != nil {
			eng.log.Error("pruning reference snapshots failed", "error", err)
		} else if removed > 0 {
			eng.log.Info("pruned old reference snapshots", "rows", removed)
		}
	}

	if _, err := eng.RunRevaluation(ctx); err != nil {
		return n, fmt.Errorf("revaluing after import: %w", err)
	}
	return n, nil
}

// RunRevaluation values every stored listing against the current snapshot
// and returns the number updated. Listings are read in pages and valued
// with bounded concurrency.
func (eng *Engine) RunRevaluation(ctx context.Context) (int, error) {
	snap := eng.snapshots.Load()
	if snap == nil {
		eng.log.Warn("no reference snapshot, skipping revaluation")
		return 0, nil
	}

	start := time.Now()
	defer func() {
		metrics.RevaluationDuration.Observe(time.Since(start).Seconds())
	}()

	var updated, failed atomic.Int64
	after := ""
	for {
		page, err := eng.store.ListListingsAfter(ctx, after, eng.pageSize)
		if err != nil {
			return int(updated.Load()), fmt.Errorf("listing listings for revaluation: %w", err)
		}
		if len(page) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(eng.concurrency)
		for i := range page {
			l := &page[i]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				v := eng.valuator.Valuate(&l.ListingRecord, snap)
				if err := eng.store.UpdateListingValuation(gctx, l.ID, v); err != nil {
					eng.log.Error("revaluation update failed", "listing", l.ID, "error", err)
					failed.Add(1)
					return nil
				}
				updated.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return int(updated.Load()), err
		}

		after = page[len(page)-1].ItemID
		if len(page) < eng.pageSize {
			break
		}
	}

	eng.log.Info("revaluation complete",
		"updated", updated.Load(),
		"failed", failed.Load(),
		"snapshot_date", snap.ImportDate().Format(time.DateOnly),
	)
	if n := failed.Load(); n > 0 {
		return int(updated.Load()), fmt.Errorf("%d listings failed revaluation", n)
	}
	return int(updated.Load()), nil
}
