package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
)

func TestNormalizeNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "005/025", want: "5"},
		{in: "#5", want: "5"},
		{in: "5", want: "5"},
		{in: " #012 ", want: "12"},
		{in: "000", want: "0"},
		{in: "0/102", want: "0"},
		{in: "TG05/TG30", want: "TG05"},
		{in: "", want: ""},
		{in: "#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matcher.NormalizeNumber(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pokemon flabebe", matcher.Fold("  Pokémon   FLABÉBÉ "))
	assert.Equal(t, "ho-oh ex", matcher.Fold("Ho-Oh EX"))
	assert.Empty(t, matcher.Fold("   "))
}

func TestSetTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "strips pokemon", in: "pokemon neo genesis", want: []string{"genesis"}},
		{name: "strips locale", in: "pokemon japanese mega dream", want: []string{"mega", "dream"}},
		{name: "noise only at front", in: "legends of japanese", want: []string{"legends", "japanese"}},
		{name: "punctuation splits", in: "ex ruby & sapphire", want: []string{"ruby", "sapphire"}},
		{name: "all noise", in: "pokemon", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matcher.SetTokens(tt.in))
		})
	}
}

func TestHasSpecificityMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{name: "Charizard VMAX", want: true},
		{name: "Mewtwo GX", want: true},
		{name: "Blastoise ex", want: true},
		{name: "Radiant Charizard", want: true},
		{name: "Pikachu Illustration Rare", want: true},
		{name: "Umbreon Full Art", want: true},
		{name: "Exeggutor", want: false},
		{name: "Goldeen", want: false},
		{name: "Lugia", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matcher.HasSpecificityMarker(tt.name))
		})
	}
}
