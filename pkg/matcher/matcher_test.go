package matcher_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func intPtr(i int) *int { return &i }

func ref(id, product, console string, volume *int) domain.PriceReference {
	return domain.PriceReference{
		ProductID:   id,
		ProductName: product,
		ConsoleName: console,
		Prices:      map[domain.Column]decimal.Decimal{domain.ColumnRaw: decimal.NewFromInt(10)},
		SalesVolume: volume,
		ImportDate:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMatch_Tiers(t *testing.T) {
	t.Parallel()

	snap := matcher.NewSnapshot([]domain.PriceReference{
		ref("1", "Lugia #9", "Pokemon Neo Genesis", intPtr(120)),
		ref("2", "Lugia #9", "Pokemon Japanese Neo Premium File", intPtr(900)),
		ref("3", "Lugia [1st Edition] #9", "Pokemon Neo Genesis", intPtr(300)),
		ref("4", "Lugia #45", "Pokemon Neo Genesis", intPtr(5000)),
		ref("5", "Lugia V #138", "Pokemon Silver Tempest", intPtr(80)),
		ref("6", "Charizard VMAX #20", "Pokemon Darkness Ablaze", intPtr(700)),
		ref("7", "Charizard VMAX #74", "Pokemon Shining Fates", intPtr(2000)),
		ref("8", "Pikachu #58", "Pokemon Base Set", intPtr(40)),
	})

	tests := []struct {
		name     string
		query    matcher.Query
		wantID   string
		wantTier domain.MatchTier
	}{
		{
			name:     "tier 1 highest volume",
			query:    matcher.Query{Name: "Lugia", Number: "9/111", Set: "Neo Genesis"},
			wantID:   "3",
			wantTier: domain.MatchNameNumberSet,
		},
		{
			name:     "tier 1 beats higher volume tier 3",
			query:    matcher.Query{Name: "Lugia", Number: "#009", Set: "Pokemon Neo Genesis"},
			wantID:   "3",
			wantTier: domain.MatchNameNumberSet,
		},
		{
			name:     "tier 2 without set",
			query:    matcher.Query{Name: "Lugia", Number: "9"},
			wantID:   "2",
			wantTier: domain.MatchNameNumber,
		},
		{
			name:     "tier 3 without number",
			query:    matcher.Query{Name: "lugia", Set: "Neo Genesis"},
			wantID:   "4",
			wantTier: domain.MatchNameSet,
		},
		{
			name:     "tier 3 when number unknown to table",
			query:    matcher.Query{Name: "Lugia", Number: "999", Set: "Neo Genesis"},
			wantID:   "4",
			wantTier: domain.MatchNameSet,
		},
		{
			name:     "tier 4 with marker",
			query:    matcher.Query{Name: "Charizard VMAX"},
			wantID:   "7",
			wantTier: domain.MatchNameOnly,
		},
		{
			name:     "generic name never falls to tier 4",
			query:    matcher.Query{Name: "Pikachu"},
			wantTier: domain.MatchNone,
		},
		{
			name:     "generic name with wrong set",
			query:    matcher.Query{Name: "Lugia", Set: "Evolving Skies"},
			wantTier: domain.MatchNone,
		},
		{
			name:     "number must be a whole token",
			query:    matcher.Query{Name: "Lugia", Number: "4"},
			wantTier: domain.MatchNone,
		},
		{
			name:     "no name",
			query:    matcher.Query{Number: "9", Set: "Neo Genesis"},
			wantTier: domain.MatchNone,
		},
		{
			name:     "unknown name",
			query:    matcher.Query{Name: "Mewtwo", Number: "9", Set: "Neo Genesis"},
			wantTier: domain.MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := snap.Match(tt.query)
			assert.Equal(t, tt.wantTier, got.Tier)
			if tt.wantID == "" {
				assert.Nil(t, got.Reference)
				assert.False(t, got.Matched())
				return
			}
			require.NotNil(t, got.Reference)
			assert.Equal(t, tt.wantID, got.Reference.ProductID)
		})
	}
}

func TestMatch_TieKeepsSnapshotOrder(t *testing.T) {
	t.Parallel()

	snap := matcher.NewSnapshot([]domain.PriceReference{
		ref("a", "Umbreon VMAX #215", "Pokemon Evolving Skies", intPtr(10)),
		ref("b", "Umbreon VMAX #215", "Pokemon Evolving Skies", intPtr(10)),
		ref("c", "Umbreon VMAX #215", "Pokemon Evolving Skies", nil),
	})

	got := snap.Match(matcher.Query{Name: "Umbreon VMAX", Number: "215/203", Set: "Evolving Skies"})
	require.True(t, got.Matched())
	assert.Equal(t, "a", got.Reference.ProductID)
}

func TestMatch_NilVolumeCountsAsZero(t *testing.T) {
	t.Parallel()

	snap := matcher.NewSnapshot([]domain.PriceReference{
		ref("nil", "Mew #8", "Pokemon Celebrations", nil),
		ref("one", "Mew #8", "Pokemon Celebrations", intPtr(1)),
	})

	got := snap.Match(matcher.Query{Name: "Mew", Number: "8", Set: "Celebrations"})
	require.True(t, got.Matched())
	assert.Equal(t, "one", got.Reference.ProductID)
}

func TestMatch_DiacriticsFolded(t *testing.T) {
	t.Parallel()

	snap := matcher.NewSnapshot([]domain.PriceReference{
		ref("1", "Flabébé #83", "Pokémon Forbidden Light", intPtr(3)),
	})

	got := snap.Match(matcher.Query{Name: "FLABEBE", Number: "083", Set: "Forbidden Light"})
	require.True(t, got.Matched())
	assert.Equal(t, domain.MatchNameNumberSet, got.Tier)
}

func TestMatch_ShortNameScansAll(t *testing.T) {
	t.Parallel()

	snap := matcher.NewSnapshot([]domain.PriceReference{
		ref("1", "Mr. Mime #6", "Pokemon Jungle", intPtr(3)),
		ref("2", "Mew #8", "Pokemon Celebrations", intPtr(3)),
	})

	got := snap.Match(matcher.Query{Name: "Mr", Number: "6"})
	require.True(t, got.Matched())
	assert.Equal(t, "1", got.Reference.ProductID)
}

func TestMatch_IndexAgreesWithFullScan(t *testing.T) {
	t.Parallel()

	var refs []domain.PriceReference
	for i := range 200 {
		refs = append(refs, ref(
			fmt.Sprint(i),
			fmt.Sprintf("Card%d Pikachu #%d", i%17, i%23),
			"Pokemon Base Set",
			intPtr(i%7),
		))
	}
	snap := matcher.NewSnapshot(refs)

	for n := range 23 {
		q := matcher.Query{Name: "card3 pikachu", Number: fmt.Sprint(n), Set: "Base Set"}
		got := snap.Match(q)

		// Reference result by brute force.
		wantID := ""
		bestVol := -1
		for _, r := range refs {
			if matcher.Fold(r.ProductName) != fmt.Sprintf("card3 pikachu #%d", n) {
				continue
			}
			if r.Volume() > bestVol {
				bestVol = r.Volume()
				wantID = r.ProductID
			}
		}

		require.True(t, got.Matched(), "number %d", n)
		if wantID == "" {
			assert.Equal(t, domain.MatchNameSet, got.Tier, "number %d", n)
			continue
		}
		assert.Equal(t, domain.MatchNameNumberSet, got.Tier, "number %d", n)
		assert.Equal(t, wantID, got.Reference.ProductID, "number %d", n)
	}
}

func TestMatch_NilSnapshotPanics(t *testing.T) {
	t.Parallel()

	var snap *matcher.Snapshot
	assert.Panics(t, func() { snap.Match(matcher.Query{Name: "Lugia"}) })
}

func TestSnapshot_Metadata(t *testing.T) {
	t.Parallel()

	older := ref("1", "Lugia #9", "Pokemon Neo Genesis", nil)
	older.ImportDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	newer := ref("2", "Ho-Oh #7", "Pokemon Neo Revelation", nil)

	refs := []domain.PriceReference{older, newer}
	snap := matcher.NewSnapshot(refs)
	refs[0].ProductName = "changed"

	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, newer.ImportDate, snap.ImportDate())
	assert.Equal(t, "Lugia #9", snap.Records()[0].ProductName)
}
