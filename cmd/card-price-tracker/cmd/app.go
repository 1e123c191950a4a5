package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/card-price-tracker/internal/config"
	"github.com/donaldgifford/card-price-tracker/internal/ebay"
	"github.com/donaldgifford/card-price-tracker/internal/engine"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	"github.com/donaldgifford/card-price-tracker/internal/store"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

// eBay counts the daily call quota per Pacific calendar day.
const ebayQuotaZone = "America/Los_Angeles"

// openStore connects to PostgreSQL and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.PostgresStore, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Debug("database ready", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return st, nil
}

// newValuator builds a valuator from the configured calibration.
func newValuator(cfg *config.Config) (*engine.Valuator, error) {
	cal, err := cfg.Valuation.Calibration()
	if err != nil {
		return nil, fmt.Errorf("valuation calibration: %w", err)
	}
	r, err := valuation.NewResolver(cal)
	if err != nil {
		return nil, err
	}
	return engine.NewValuator(r), nil
}

// newEbayClient returns nil when no credentials are configured.
func newEbayClient(cfg *config.Config) (*ebay.BrowseClient, *ebay.RateLimiter, error) {
	if cfg.Ebay.AppID == "" || cfg.Ebay.CertID == "" {
		return nil, nil, nil
	}

	loc, err := time.LoadLocation(ebayQuotaZone)
	if err != nil {
		return nil, nil, fmt.Errorf("loading quota time zone: %w", err)
	}
	rl := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
		ebay.WithQuotaLocation(loc),
	)
	tokens := ebay.NewOAuthTokenProvider(cfg.Ebay.AppID, cfg.Ebay.CertID, ebay.WithTokenURL(cfg.Ebay.TokenURL))
	client := ebay.NewBrowseClient(tokens,
		ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithRateLimiter(rl),
		ebay.WithItemCache(cfg.Ebay.ItemCacheTTL),
	)
	return client, rl, nil
}

// newEngine wires the engine from config. fetcher overrides the configured
// CSV URL when non-nil.
func newEngine(
	cfg *config.Config,
	st store.Store,
	fetcher pricecharting.Fetcher,
	log *slog.Logger,
) (*engine.Engine, *ebay.RateLimiter, error) {
	v, err := newValuator(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, rl, err := newEbayClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	var ec ebay.EbayClient
	if client != nil {
		ec = client
	}

	if fetcher == nil && cfg.PriceCharting.CSVURL != "" {
		fetcher = pricecharting.NewHTTPFetcher(cfg.PriceCharting.CSVURL,
			pricecharting.WithTimeout(cfg.PriceCharting.Timeout))
	}

	headers, err := cfg.PriceCharting.ColumnHeaders()
	if err != nil {
		return nil, nil, err
	}

	searches := make([]engine.Search, len(cfg.Ebay.Searches))
	for i, s := range cfg.Ebay.Searches {
		searches[i] = engine.Search{Name: s.Name, Query: s.Query, CategoryID: s.CategoryID, Limit: s.Limit}
	}

	eng := engine.NewEngine(st, ec, fetcher, v,
		engine.WithLogger(log),
		engine.WithSearches(searches),
		engine.WithDetailMinPrice(cfg.Ebay.DetailMinPrice),
		engine.WithConsoleFilter(cfg.PriceCharting.ConsoleFilter),
		engine.WithColumnHeaders(headers),
		engine.WithConcurrency(cfg.Valuation.Concurrency),
		engine.WithSnapshotRetention(cfg.PriceCharting.KeepSnapshots),
	)
	return eng, rl, nil
}
