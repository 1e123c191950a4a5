// Package identity builds composite keys that identify a specific card
// state (name, set, number, printing variant and grade) and folds listing
// corpora into per-identity buckets.
package identity

import (
	"errors"
	"strings"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// ErrUnidentifiable is returned when a card lacks a name or set.
var ErrUnidentifiable = errors.New("card identity requires a name and a set")

// unknownNumber stands in for a missing card number.
const unknownNumber = "UNKNOWN"

// Flags are the printing variants that distinguish otherwise identical
// cards.
type Flags struct {
	FirstEdition bool `json:"is_1st_edition,omitempty"`
	Shadowless   bool `json:"is_shadowless,omitempty"`
	Holo         bool `json:"is_holo,omitempty"`
	ReverseHolo  bool `json:"is_reverse_holo,omitempty"`
	FullArt      bool `json:"is_full_art,omitempty"`
	AltArt       bool `json:"is_alt_art,omitempty"`
	SecretRare   bool `json:"is_secret_rare,omitempty"`
	RainbowRare  bool `json:"is_rainbow_rare,omitempty"`
}

// flagSuffixes is the canonical suffix order. Only true flags are emitted.
var flagSuffixes = []struct {
	attr   string
	suffix string
	set    func(*Flags) *bool
}{
	{"is_1st_edition", "1ST", func(f *Flags) *bool { return &f.FirstEdition }},
	{"is_shadowless", "SHADOWLESS", func(f *Flags) *bool { return &f.Shadowless }},
	{"is_holo", "HOLO", func(f *Flags) *bool { return &f.Holo }},
	{"is_reverse_holo", "REVERSE", func(f *Flags) *bool { return &f.ReverseHolo }},
	{"is_full_art", "FULLART", func(f *Flags) *bool { return &f.FullArt }},
	{"is_alt_art", "ALTART", func(f *Flags) *bool { return &f.AltArt }},
	{"is_secret_rare", "SECRET", func(f *Flags) *bool { return &f.SecretRare }},
	{"is_rainbow_rare", "RAINBOW", func(f *Flags) *bool { return &f.RainbowRare }},
}

// Suffixes returns the key suffixes of the true flags in canonical order.
func (f Flags) Suffixes() []string {
	var out []string
	for _, fs := range flagSuffixes {
		if *fs.set(&f) {
			out = append(out, fs.suffix)
		}
	}
	return out
}

// FlagsFromMap reads flags from a variant-attribute document. Keys use the
// stored attribute names ("is_holo", ...). Values may be booleans or the
// strings "true"/"yes"/"1". Unknown keys are ignored, so the result does
// not depend on map iteration order.
func FlagsFromMap(m map[string]any) Flags {
	var f Flags
	for _, fs := range flagSuffixes {
		*fs.set(&f) = truthy(m[fs.attr])
	}
	return f
}

// FlagsFromAttributes reads flags from structured variant attributes.
func FlagsFromAttributes(a *domain.VariantAttributes) Flags {
	if a == nil {
		return Flags{}
	}
	return Flags{
		FirstEdition: a.FirstEdition,
		Shadowless:   a.Shadowless,
		Holo:         a.Holo,
		ReverseHolo:  a.ReverseHolo,
		FullArt:      a.FullArt,
		AltArt:       a.AltArt,
		SecretRare:   a.SecretRare,
		RainbowRare:  a.RainbowRare,
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true
		}
	}
	return false
}

// Identity describes one card state.
type Identity struct {
	Name   string `json:"name"`
	Set    string `json:"set"`
	Number string `json:"number,omitempty"`
	Flags  Flags  `json:"flags"`

	// Grade is nil for identities that ignore grading. Raw grades add no
	// suffix; unknown grades add GRADED; specific grades add their compact
	// label.
	Grade *domain.Grade `json:"grade,omitempty"`
}

// FromListing builds the identity of a listing from its card fields,
// variant attributes and extracted grade.
func FromListing(rec *domain.ListingRecord, gr domain.GradeResult) Identity {
	g := gr.Grade
	return Identity{
		Name:   rec.CardName,
		Set:    rec.SetName,
		Number: rec.CardNumber,
		Flags:  FlagsFromAttributes(rec.Variant),
		Grade:  &g,
	}
}

// Key returns the composite identity key, or ErrUnidentifiable when the
// name or set is missing.
func (id Identity) Key() (string, error) {
	key, err := BuildKey(id.Name, id.Set, id.Number, id.Flags)
	if err != nil {
		return "", err
	}
	if id.Grade == nil {
		return key, nil
	}
	switch id.Grade.Kind {
	case domain.GradeSpecific:
		return key + "|" + id.Grade.Compact(), nil
	case domain.GradeUnknown:
		return key + "|GRADED", nil
	default:
		return key, nil
	}
}

// BuildKey concatenates name, set and number (UNKNOWN when empty) followed
// by the suffixes of the true flags, separated by '|'. Text parts are
// upper-cased and whitespace-collapsed; a leading '#' is dropped from the
// number.
func BuildKey(name, set, number string, flags Flags) (string, error) {
	name, set = clean(name), clean(set)
	if name == "" || set == "" {
		return "", ErrUnidentifiable
	}

	number = clean(strings.TrimLeft(strings.TrimSpace(number), "#"))
	if number == "" {
		number = unknownNumber
	}

	parts := append([]string{name, set, number}, flags.Suffixes()...)
	return strings.Join(parts, "|"), nil
}

func clean(s string) string {
	s = strings.ReplaceAll(s, "|", " ")
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
