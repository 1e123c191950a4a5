package handlers_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

var importDate = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

// staticSnapshots is a SnapshotSource returning a fixed snapshot.
type staticSnapshots struct {
	snap *matcher.Snapshot
}

func (s staticSnapshots) Load() *matcher.Snapshot { return s.snap }

func intPtr(n int) *int { return &n }

func lugiaReferences() []domain.PriceReference {
	return []domain.PriceReference{
		{
			ProductID:   "1001",
			ProductName: "Lugia #9",
			ConsoleName: "Pokemon Neo Genesis",
			Prices: map[domain.Column]decimal.Decimal{
				domain.ColumnRaw:    decimal.NewFromInt(200),
				domain.ColumnGrade9: decimal.NewFromInt(100),
				domain.ColumnPSA10:  decimal.NewFromInt(1400),
			},
			SalesVolume: intPtr(120),
			ImportDate:  importDate,
		},
		{
			ProductID:   "1002",
			ProductName: "Lugia #45",
			ConsoleName: "Pokemon Neo Genesis",
			Prices: map[domain.Column]decimal.Decimal{
				domain.ColumnRaw: decimal.NewFromInt(3),
			},
			SalesVolume: intPtr(4),
			ImportDate:  importDate,
		},
	}
}

func lugiaSnapshot() staticSnapshots {
	return staticSnapshots{snap: matcher.NewSnapshot(lugiaReferences())}
}
