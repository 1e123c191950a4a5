package identity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/pkg/identity"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	holo := identity.Identity{Name: "Charizard", Set: "Base Set", Number: "4/102", Flags: identity.Flags{Holo: true}}
	firstEd := identity.Identity{
		Name:   "Charizard",
		Set:    "Base Set",
		Number: "4/102",
		Flags:  identity.Flags{Holo: true, FirstEdition: true},
	}

	entries := []identity.Entry{
		{ItemID: "1", Identity: holo, Price: decimal.RequireFromString("500")},
		{ItemID: "2", Identity: holo, Price: decimal.RequireFromString("700")},
		{ItemID: "3", Identity: holo, Price: decimal.RequireFromString("450.50")},
		{ItemID: "4", Identity: firstEd, Price: decimal.RequireFromString("10000")},
		{ItemID: "5", Identity: firstEd, Price: decimal.RequireFromString("12000")},
		{ItemID: "6", Identity: identity.Identity{Name: "Charizard"}, Price: decimal.RequireFromString("90")},
		{ItemID: "7", Identity: holo, Price: decimal.Zero},
	}

	sum := identity.Aggregate(entries)

	assert.Equal(t, 1, sum.Unidentifiable)
	assert.Equal(t, 1, sum.Unpriced)
	require.Len(t, sum.Buckets, 2)

	// Sorted by key: "...|4/102|1ST|HOLO" < "...|4/102|HOLO".
	fe := sum.Buckets[0]
	assert.Equal(t, "CHARIZARD|BASE SET|4/102|1ST|HOLO", fe.Key)
	assert.Equal(t, 2, fe.Count)
	assert.True(t, decimal.RequireFromString("22000").Equal(fe.Total))
	assert.True(t, decimal.RequireFromString("11000").Equal(fe.Median))
	assert.True(t, decimal.RequireFromString("11000").Equal(fe.Average))
	assert.Equal(t, []string{"4", "5"}, fe.ItemIDs)

	h := sum.Buckets[1]
	assert.Equal(t, "CHARIZARD|BASE SET|4/102|HOLO", h.Key)
	assert.Equal(t, 3, h.Count)
	assert.True(t, decimal.RequireFromString("450.50").Equal(h.Min))
	assert.True(t, decimal.RequireFromString("700").Equal(h.Max))
	assert.True(t, decimal.RequireFromString("500").Equal(h.Median))
	assert.True(t, decimal.RequireFromString("550.17").Equal(h.Average))
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	sum := identity.Aggregate(nil)
	assert.Empty(t, sum.Buckets)
	assert.Zero(t, sum.Unidentifiable)
}
