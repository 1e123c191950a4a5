package identity

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one priced listing to aggregate.
type Entry struct {
	ItemID   string
	Identity Identity
	Price    decimal.Decimal
}

// Bucket collects the listings that share an identity key.
type Bucket struct {
	Key      string          `json:"key"`
	Identity Identity        `json:"identity"`
	Count    int             `json:"listing_count"`
	Total    decimal.Decimal `json:"total_value"`
	Min      decimal.Decimal `json:"min_price"`
	Max      decimal.Decimal `json:"max_price"`
	Median   decimal.Decimal `json:"median_price"`
	Average  decimal.Decimal `json:"average_price"`
	ItemIDs  []string        `json:"item_ids"`

	prices []decimal.Decimal
}

// Summary is the result of aggregating a listing corpus.
type Summary struct {
	Buckets []Bucket `json:"buckets"`
	// Unidentifiable counts entries excluded for a missing name or set.
	Unidentifiable int `json:"unidentifiable"`
	// Unpriced counts entries excluded for a non-positive price.
	Unpriced int `json:"unpriced"`
}

// Aggregate folds entries into buckets by identity key. Entries without a
// name or set are counted and excluded, never bucketed under an empty key.
// Buckets are ordered by key.
func Aggregate(entries []Entry) Summary {
	var sum Summary
	byKey := make(map[string]*Bucket)

	for _, e := range entries {
		key, err := e.Identity.Key()
		if err != nil {
			sum.Unidentifiable++
			continue
		}
		if !e.Price.IsPositive() {
			sum.Unpriced++
			continue
		}

		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key, Identity: e.Identity, Min: e.Price, Max: e.Price}
			byKey[key] = b
		}
		b.Count++
		b.Total = b.Total.Add(e.Price)
		b.Min = decimal.Min(b.Min, e.Price)
		b.Max = decimal.Max(b.Max, e.Price)
		b.ItemIDs = append(b.ItemIDs, e.ItemID)
		b.prices = append(b.prices, e.Price)
	}

	sum.Buckets = make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		b.Average = b.Total.Div(decimal.NewFromInt(int64(b.Count))).Round(2)
		b.Median = median(b.prices)
		b.prices = nil
		sum.Buckets = append(sum.Buckets, *b)
	}
	slices.SortFunc(sum.Buckets, func(a, b Bucket) int {
		return strings.Compare(a.Key, b.Key)
	})

	return sum
}

func median(prices []decimal.Decimal) decimal.Decimal {
	sorted := slices.Clone(prices)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2)).Round(2)
}
