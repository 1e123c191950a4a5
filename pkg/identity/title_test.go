package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-price-tracker/pkg/identity"
)

func TestParseTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  identity.ParsedTitle
	}{
		{
			name:  "lugia first edition holo",
			title: "2000 Pokemon Neo Genesis 1st Edition Lugia Holo 9/111 PSA 4",
			want: identity.ParsedTitle{
				Name:   "Lugia",
				Set:    "Neo Genesis",
				Number: "9/111",
				Flags:  identity.Flags{FirstEdition: true, Holo: true},
			},
		},
		{
			name:  "reverse holo",
			title: "Umbreon Evolving Skies Reverse Holo #94",
			want: identity.ParsedTitle{
				Name:   "Umbreon",
				Set:    "Evolving Skies",
				Number: "94",
				Flags:  identity.Flags{ReverseHolo: true},
			},
		},
		{
			name:  "mewtwo not mew",
			title: "Mewtwo Base Set Shadowless 10/102",
			want: identity.ParsedTitle{
				Name:   "Mewtwo",
				Set:    "Base Set",
				Number: "10/102",
				Flags:  identity.Flags{Shadowless: true},
			},
		},
		{
			name:  "fa inside word ignored",
			title: "Rayquaza Crown Zenith FAKE-free",
			want:  identity.ParsedTitle{Name: "Rayquaza", Set: "Crown Zenith"},
		},
		{
			name:  "alt art full art",
			title: "Umbreon Evolving Skies Alt Art Full Art",
			want: identity.ParsedTitle{
				Name:  "Umbreon",
				Set:   "Evolving Skies",
				Flags: identity.Flags{AltArt: true, FullArt: true},
			},
		},
		{
			name:  "nothing known",
			title: "Vintage trading card",
			want:  identity.ParsedTitle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, identity.ParseTitle(tt.title))
		})
	}
}

func TestIsSingleCardListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  bool
	}{
		{title: "Lugia Neo Genesis 1st Edition Holo PSA 9", want: true},
		{title: "Pokemon cards CHOOSE YOUR CARD", want: false},
		{title: "You pick! Neo Genesis singles", want: false},
		{title: "5X Lugia promo", want: false},
		{title: "Lot of 10 holos", want: false},
		{title: "Bulk commons", want: false},
		{title: "My whole collection", want: false},
		{title: "Neo Genesis complete set", want: false},
		{title: "Ho-Oh Legendary Collection Reverse Holo", want: true},
		{title: "Charizard VMAX Shining Fates", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, identity.IsSingleCardListing(tt.title))
		})
	}
}
