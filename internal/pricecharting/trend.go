package pricecharting

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// TrendPoint is one column value on one import date.
type TrendPoint struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// Change compares the latest price against an earlier import.
type Change struct {
	Since   time.Time       `json:"since"`
	Price   decimal.Decimal `json:"price"`
	Delta   decimal.Decimal `json:"delta"`
	Percent decimal.Decimal `json:"percent"`
}

// Trend is the price history of one reference column for one product.
type Trend struct {
	ProductID string        `json:"product_id"`
	Column    domain.Column `json:"column"`
	Points    []TrendPoint  `json:"points"`
	Latest    *TrendPoint   `json:"latest,omitempty"`
	Change7d  *Change       `json:"change_7d,omitempty"`
	Change30d *Change       `json:"change_30d,omitempty"`
}

// ComputeTrend builds a trend from history ordered by import date. Changes
// compare the latest import with the imports exactly 7 and 30 days earlier;
// a change is omitted when either side has no price.
func ComputeTrend(productID string, history []domain.PriceReference, col domain.Column) *Trend {
	t := &Trend{ProductID: productID, Column: col, Points: []TrendPoint{}}

	byDate := make(map[time.Time]decimal.Decimal, len(history))
	for i := range history {
		p, ok := history[i].Price(col)
		if !ok {
			continue
		}
		date := history[i].ImportDate.UTC()
		byDate[date] = p
		t.Points = append(t.Points, TrendPoint{Date: date, Price: p})
	}
	if len(t.Points) == 0 {
		return t
	}

	latest := t.Points[len(t.Points)-1]
	t.Latest = &latest
	t.Change7d = changeSince(latest, byDate, 7)
	t.Change30d = changeSince(latest, byDate, 30)
	return t
}

func changeSince(latest TrendPoint, byDate map[time.Time]decimal.Decimal, days int) *Change {
	since := latest.Date.AddDate(0, 0, -days)
	prev, ok := byDate[since]
	if !ok {
		return nil
	}
	delta := latest.Price.Sub(prev)
	return &Change{
		Since:   since,
		Price:   prev,
		Delta:   delta,
		Percent: delta.Div(prev).Mul(decimal.NewFromInt(100)).Round(2),
	}
}
