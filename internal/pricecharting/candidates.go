package pricecharting

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Candidate is a card liquid and valuable enough to be worth tracking on
// the marketplace.
type Candidate struct {
	ProductID   string          `json:"product_id"`
	SetName     string          `json:"set_name"`
	CardName    string          `json:"card_name"`
	CardNumber  string          `json:"card_number,omitempty"`
	Year        int             `json:"year,omitempty"`
	PSA10       decimal.Decimal `json:"psa_10_price"`
	PSA9        decimal.Decimal `json:"psa_9_price"`
	Raw         decimal.Decimal `json:"raw_price"`
	SalesVolume int             `json:"sales_volume"`
}

// Candidates selects references with at least minVolume sales and a PSA 10
// price of at least minPSA10, ordered by sales volume descending.
func Candidates(refs []domain.PriceReference, minVolume int, minPSA10 decimal.Decimal) []Candidate {
	var out []Candidate
	for i := range refs {
		ref := &refs[i]
		psa10, ok := ref.Price(domain.ColumnPSA10)
		if !ok || psa10.LessThan(minPSA10) || ref.Volume() < minVolume {
			continue
		}

		name, number := SplitProductName(ref.ProductName)
		c := Candidate{
			ProductID:   ref.ProductID,
			SetName:     ref.ConsoleName,
			CardName:    name,
			CardNumber:  number,
			PSA10:       psa10,
			SalesVolume: ref.Volume(),
		}
		c.PSA9, _ = ref.Price(domain.ColumnGrade9)
		c.Raw, _ = ref.Price(domain.ColumnRaw)
		if ref.ReleaseDate != nil {
			c.Year = ref.ReleaseDate.Year()
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.SalesVolume, a.SalesVolume)
	})
	return out
}
