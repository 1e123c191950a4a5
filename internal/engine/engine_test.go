package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/ebay"
	ebayMocks "github.com/donaldgifford/card-price-tracker/internal/ebay/mocks"
	"github.com/donaldgifford/card-price-tracker/internal/metrics"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	pcMocks "github.com/donaldgifford/card-price-tracker/internal/pricecharting/mocks"
	storeMocks "github.com/donaldgifford/card-price-tracker/internal/store/mocks"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValuator(t *testing.T) *Valuator {
	t.Helper()
	r, err := valuation.NewResolver(valuation.DefaultCalibration())
	require.NoError(t, err)
	return NewValuator(r)
}

var snapshotDate = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func testSnapshot() *matcher.Snapshot {
	vol := 120
	return matcher.NewSnapshot([]domain.PriceReference{
		{
			ProductID:   "6910",
			ProductName: "Lugia #9",
			ConsoleName: "Pokemon Neo Genesis",
			Prices: map[domain.Column]decimal.Decimal{
				domain.ColumnRaw:    decimal.RequireFromString("200"),
				domain.ColumnGrade8: decimal.RequireFromString("90"),
				domain.ColumnGrade9: decimal.RequireFromString("100"),
				domain.ColumnPSA10:  decimal.RequireFromString("1400"),
			},
			SalesVolume: &vol,
			ImportDate:  snapshotDate,
		},
		{
			ProductID:   "6950",
			ProductName: "Lugia #45",
			ConsoleName: "Pokemon Neo Genesis",
			Prices: map[domain.Column]decimal.Decimal{
				domain.ColumnRaw: decimal.RequireFromString("3"),
			},
			ImportDate: snapshotDate,
		},
	})
}

func newTestEngine(
	t *testing.T,
	ms *storeMocks.MockStore,
	me *ebayMocks.MockEbayClient,
	mf *pcMocks.MockFetcher,
	opts ...EngineOption,
) *Engine {
	t.Helper()
	opts = append([]EngineOption{WithLogger(quietLogger())}, opts...)

	var client ebay.EbayClient
	if me != nil {
		client = me
	}
	var fetcher pricecharting.Fetcher
	if mf != nil {
		fetcher = mf
	}
	return NewEngine(ms, client, fetcher, testValuator(t), opts...)
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, h.Write(m))
	return m.GetHistogram().GetSampleCount()
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	eng := NewEngine(storeMocks.NewMockStore(t), nil, nil, testValuator(t))
	assert.Equal(t, defaultConcurrency, eng.concurrency)
	assert.Equal(t, defaultRevaluationPageSize, eng.pageSize)
	assert.True(t, eng.detailMinPrice.IsZero())
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.Snapshots())
	assert.Nil(t, eng.Snapshots().Load())
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	holder := &SnapshotHolder{}
	searches := []Search{{Name: "vintage", Query: "pokemon psa"}}
	eng := NewEngine(storeMocks.NewMockStore(t), nil, nil, testValuator(t),
		WithLogger(l),
		WithSearches(searches),
		WithDetailMinPrice(decimal.NewFromInt(25)),
		WithConsoleFilter("pokemon"),
		WithConcurrency(3),
		WithConcurrency(0),
		WithRevaluationPageSize(100),
		WithSnapshotRetention(14),
		WithSnapshotHolder(holder),
	)

	assert.Same(t, l, eng.log)
	assert.Same(t, holder, eng.Snapshots())
	assert.Equal(t, searches, eng.searches)
	assert.Equal(t, "25", eng.detailMinPrice.String())
	assert.Equal(t, "pokemon", eng.consoleFilter)
	assert.Equal(t, 3, eng.concurrency, "non-positive concurrency is ignored")
	assert.Equal(t, 100, eng.pageSize)
	assert.Equal(t, 14, eng.snapshotRetention)
}

func summary(id, title, price string) ebay.ItemSummary {
	return ebay.ItemSummary{
		ItemID:        id,
		Title:         title,
		Price:         ebay.ItemPrice{Value: price, Currency: "USD"},
		Condition:     "Graded",
		BuyingOptions: []string{"FIXED_PRICE"},
	}
}

func TestRunIngestion(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := ebayMocks.NewMockEbayClient(t)
	eng := newTestEngine(t, ms, me, nil,
		WithSearches([]Search{{Name: "lugia", Query: "lugia neo genesis", CategoryID: "183454"}}),
		WithDetailMinPrice(decimal.NewFromInt(50)),
	)
	eng.Snapshots().Store(testSnapshot())

	me.EXPECT().
		Search(mock.Anything, ebay.SearchRequest{
			Query: "lugia neo genesis", CategoryID: "183454", Limit: defaultSearchLimit, Sort: "newlyListed",
		}).
		Return(&ebay.SearchResponse{Items: []ebay.ItemSummary{
			summary("lot-1", "Pokemon Lot of 50 Cards Neo Genesis Lugia", "40.00"),
			summary("cheap-1", "Lugia 45/111 Neo Genesis Rare", "3.50"),
			summary("psa-1", "PSA 9 Lugia 9/111 Neo Genesis Holo", "120.00"),
		}, Total: 3}, nil).
		Once()

	me.EXPECT().GetItem(mock.Anything, "psa-1").Return(&ebay.Item{
		ItemSummary: summary("psa-1", "PSA 9 Lugia 9/111 Neo Genesis Holo", "120.00"),
		LocalizedAspects: []ebay.Aspect{
			{Name: "Card Name", Value: "Lugia"},
			{Name: "Set", Value: "Neo Genesis"},
			{Name: "Card Number", Value: "9/111"},
			{Name: "Graded", Value: "Yes"},
			{Name: "Professional Grader", Value: "Professional Sports Authenticator (PSA)"},
			{Name: "Grade", Value: "9"},
			{Name: "Features", Value: "Holo"},
		},
	}, nil).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.MatchedBy(func(r *domain.ListingRecord) bool {
		return r.ItemID == "cheap-1" && r.Variant == nil
	})).Return(&domain.Listing{ID: "l-cheap"}, nil).Once()
	ms.EXPECT().UpsertListing(mock.Anything, mock.MatchedBy(func(r *domain.ListingRecord) bool {
		return r.ItemID == "psa-1" && r.CardName == "Lugia"
	})).Return(&domain.Listing{ID: "l-psa"}, nil).Once()

	var psaValuation *domain.Valuation
	ms.EXPECT().UpdateListingValuation(mock.Anything, "l-cheap", mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "l-psa", mock.Anything).
		Run(func(_ context.Context, _ string, v *domain.Valuation) { psaValuation = v }).
		Return(nil).Once()

	before := histogramCount(t, metrics.IngestionDuration)
	stored, err := eng.RunIngestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.Greater(t, histogramCount(t, metrics.IngestionDuration), before)

	require.NotNil(t, psaValuation)
	assert.Equal(t, domain.MatchNameNumberSet, psaValuation.MatchTier)
	assert.Equal(t, "6910", psaValuation.ReferenceProductID)
	assert.Equal(t, "100", psaValuation.Resolution.Value.Decimal.String())
	assert.Equal(t, "PSA 9", psaValuation.Resolution.Label)
}

func TestRunIngestion_DailyLimitStopsRun(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := ebayMocks.NewMockEbayClient(t)
	eng := newTestEngine(t, ms, me, nil, WithSearches([]Search{
		{Name: "first", Query: "charizard"},
		{Name: "second", Query: "pikachu"},
	}))

	me.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
		return r.Query == "charizard"
	})).Return(nil, ebay.ErrDailyLimitReached).Once()

	stored, err := eng.RunIngestion(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestRunIngestion_SearchErrorContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	me := ebayMocks.NewMockEbayClient(t)
	eng := newTestEngine(t, ms, me, nil, WithSearches([]Search{
		{Name: "broken", Query: "charizard"},
		{Name: "working", Query: "pikachu", Limit: 10},
	}))

	me.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
		return r.Query == "charizard"
	})).Return(nil, errors.New("eBay API error (status 500)")).Once()
	me.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
		return r.Query == "pikachu" && r.Limit == 10
	})).Return(&ebay.SearchResponse{Items: []ebay.ItemSummary{
		summary("p-1", "Pikachu 58/102 Base Set", "5.00"),
	}}, nil).Once()
	me.EXPECT().GetItem(mock.Anything, "p-1").Return(nil, errors.New("timeout")).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(&domain.Listing{ID: "l1"}, nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "l1", mock.MatchedBy(func(v *domain.Valuation) bool {
		return v.Resolution.Basis.Rule == domain.RuleNoReference
	})).Return(nil).Once()

	stored, err := eng.RunIngestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestRunIngestion_NotConfigured(t *testing.T) {
	t.Parallel()

	eng := NewEngine(storeMocks.NewMockStore(t), nil, nil, testValuator(t))
	_, err := eng.RunIngestion(context.Background())
	require.Error(t, err)
}

const importCSV = `id,console-name,product-name,loose-price,graded-price,manual-only-price,sales-volume
6910,Pokemon Neo Genesis,Lugia #9,$200.00,$100.00,"$1,400.00",120
8000,Magic Alpha,Black Lotus,$9000.00,,,4
`

func TestRunReferenceImport(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mf := pcMocks.NewMockFetcher(t)
	now := time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)
	eng := newTestEngine(t, ms, nil, mf,
		WithConsoleFilter("pokemon"),
		WithSnapshotRetention(7),
		WithNowFunc(func() time.Time { return now }),
	)

	mf.EXPECT().Fetch(mock.Anything).Return(io.NopCloser(strings.NewReader(importCSV)), nil).Once()
	ms.EXPECT().SaveReferenceSnapshot(mock.Anything, mock.MatchedBy(func(refs []domain.PriceReference) bool {
		return len(refs) == 1 && refs[0].ProductID == "6910" &&
			refs[0].ImportDate.Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	})).Return(1, nil).Once()
	ms.EXPECT().PruneReferenceSnapshots(mock.Anything, 7).Return(0, nil).Once()

	listing := domain.Listing{ID: "l1", ListingRecord: domain.ListingRecord{
		ItemID: "psa-1", Title: "Lugia 9/111 Neo Genesis PSA 10", Condition: "Graded",
		CardName: "Lugia", SetName: "Neo Genesis", CardNumber: "9",
	}}
	ms.EXPECT().ListListingsAfter(mock.Anything, "", defaultRevaluationPageSize).
		Return([]domain.Listing{listing}, nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "l1", mock.MatchedBy(func(v *domain.Valuation) bool {
		return v.Resolution.Value.Valid && v.Resolution.Value.Decimal.Equal(decimal.NewFromInt(1400))
	})).Return(nil).Once()

	n, err := eng.RunReferenceImport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snap := eng.Snapshots().Load()
	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.Len())
}

func TestRunReferenceImport_ColumnHeaders(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mf := pcMocks.NewMockFetcher(t)
	eng := newTestEngine(t, ms, nil, mf,
		WithColumnHeaders(map[string]domain.Column{"cgc-10-pristine-price": domain.ColumnCGC10Pristine}),
	)

	const guide = "id,console-name,product-name,manual-only-price,condition-17-price,cgc-10-pristine-price\n" +
		"2058,Pokemon Jungle,Pikachu #58,$400.00,$300.00,$1250.00\n"
	mf.EXPECT().Fetch(mock.Anything).Return(io.NopCloser(strings.NewReader(guide)), nil).Once()
	ms.EXPECT().SaveReferenceSnapshot(mock.Anything, mock.Anything).Return(1, nil).Once()

	listing := domain.Listing{ID: "l2", ListingRecord: domain.ListingRecord{
		ItemID: "cgc-1", Title: "Pikachu 58/64 Jungle CGC 10 Pristine", Condition: "Graded",
		CardName: "Pikachu", SetName: "Jungle", CardNumber: "58",
	}}
	ms.EXPECT().ListListingsAfter(mock.Anything, "", defaultRevaluationPageSize).
		Return([]domain.Listing{listing}, nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "l2", mock.MatchedBy(func(v *domain.Valuation) bool {
		return v.Resolution.Basis.Rule == domain.RuleExact &&
			v.Resolution.Value.Valid && v.Resolution.Value.Decimal.Equal(decimal.NewFromInt(1250))
	})).Return(nil).Once()

	n, err := eng.RunReferenceImport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunReferenceImport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(*pcMocks.MockFetcher, *storeMocks.MockStore)
		wantErr error
	}{
		{
			name: "fetch fails",
			setup: func(mf *pcMocks.MockFetcher, _ *storeMocks.MockStore) {
				mf.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("unexpected status 503")).Once()
			},
		},
		{
			name: "no records keeps snapshot",
			setup: func(mf *pcMocks.MockFetcher, _ *storeMocks.MockStore) {
				mf.EXPECT().Fetch(mock.Anything).
					Return(io.NopCloser(strings.NewReader("id,console-name,product-name\n")), nil).Once()
			},
			wantErr: ErrNoReferences,
		},
		{
			name: "save fails",
			setup: func(mf *pcMocks.MockFetcher, ms *storeMocks.MockStore) {
				mf.EXPECT().Fetch(mock.Anything).Return(io.NopCloser(strings.NewReader(importCSV)), nil).Once()
				ms.EXPECT().SaveReferenceSnapshot(mock.Anything, mock.Anything).
					Return(0, errors.New("connection reset")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			mf := pcMocks.NewMockFetcher(t)
			eng := newTestEngine(t, ms, nil, mf)
			prior := testSnapshot()
			eng.Snapshots().Store(prior)
			tt.setup(mf, ms)

			_, err := eng.RunReferenceImport(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			assert.Same(t, prior, eng.Snapshots().Load())
		})
	}
}

func TestRunRevaluation_Pages(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms, nil, nil, WithRevaluationPageSize(2), WithConcurrency(2))
	eng.Snapshots().Store(testSnapshot())

	rec := func(id string) domain.Listing {
		return domain.Listing{ID: "id-" + id, ListingRecord: domain.ListingRecord{
			ItemID: id, Title: "Lugia 9/111 Neo Genesis Holo Near Mint",
		}}
	}

	ms.EXPECT().ListListingsAfter(mock.Anything, "", 2).
		Return([]domain.Listing{rec("a"), rec("b")}, nil).Once()
	ms.EXPECT().ListListingsAfter(mock.Anything, "b", 2).
		Return([]domain.Listing{rec("c")}, nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, mock.Anything, mock.MatchedBy(func(v *domain.Valuation) bool {
		return v.MatchTier == domain.MatchNameNumberSet && v.SnapshotDate != nil
	})).Return(nil).Times(3)

	n, err := eng.RunRevaluation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRunRevaluation_UpdateFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms, nil, nil)
	eng.Snapshots().Store(testSnapshot())

	ms.EXPECT().ListListingsAfter(mock.Anything, "", defaultRevaluationPageSize).
		Return([]domain.Listing{
			{ID: "ok", ListingRecord: domain.ListingRecord{ItemID: "a", Title: "Lugia"}},
			{ID: "bad", ListingRecord: domain.ListingRecord{ItemID: "b", Title: "Lugia"}},
		}, nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "ok", mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdateListingValuation(mock.Anything, "bad", mock.Anything).
		Return(errors.New("deadlock detected")).Once()

	n, err := eng.RunRevaluation(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "1 listings failed")
}

func TestRunRevaluation_NoSnapshot(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, storeMocks.NewMockStore(t), nil, nil)
	n, err := eng.RunRevaluation(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("publishes stored snapshot", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms, nil, nil)
		ms.EXPECT().LoadLatestReferences(mock.Anything).Return(testSnapshot().Records(), nil).Once()

		require.NoError(t, eng.LoadSnapshot(context.Background()))
		require.NotNil(t, eng.Snapshots().Load())
		assert.Equal(t, 2, eng.Snapshots().Load().Len())
	})

	t.Run("empty store leaves holder unset", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms, nil, nil)
		ms.EXPECT().LoadLatestReferences(mock.Anything).Return(nil, nil).Once()

		require.NoError(t, eng.LoadSnapshot(context.Background()))
		assert.Nil(t, eng.Snapshots().Load())
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(t, ms, nil, nil)
		ms.EXPECT().LoadLatestReferences(mock.Anything).Return(nil, errors.New("down")).Once()

		require.Error(t, eng.LoadSnapshot(context.Background()))
	})
}
