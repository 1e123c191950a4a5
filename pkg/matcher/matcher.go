package matcher

import (
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Query identifies the card to look up. Number and Set may be empty.
type Query struct {
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	Set    string `json:"set,omitempty"`
}

// specificityMarkers are the name words that make a bare name match
// trustworthy enough for the name-only tier.
var specificityMarkers = []string{
	"vmax", "gx", "ex", "vstar", "radiant",
	"full art", "illustration rare", "gold", "rainbow",
}

// HasSpecificityMarker reports whether a card name carries one of the
// markers that allow a name-only match.
func HasSpecificityMarker(name string) bool {
	folded := Fold(name)
	for _, m := range specificityMarkers {
		if containsWord(folded, m) {
			return true
		}
	}
	return false
}

// Match returns the best reference record for q.
//
// Tiers, most precise first: name+number+set, name+number, name+set and
// name only. The name-only tier is used only when the name carries a
// specificity marker. The first tier with any candidate wins; within it
// the record with the highest sales volume wins, earlier records winning
// ties. A record's name matches when its product name contains q.Name. Its
// number matches when the product name has a "#<digits>" token equal to
// the normalized q.Number. Its set matches when its console name shares a
// word of four or more letters with q.Set once leading noise words such as
// "Pokemon" and "Japanese" are removed.
//
// Match panics on a nil snapshot.
func (s *Snapshot) Match(q Query) domain.MatchResult {
	if s == nil {
		panic("matcher: Match called on nil snapshot")
	}

	name := Fold(q.Name)
	if name == "" {
		return domain.MatchResult{}
	}
	number := NormalizeNumber(q.Number)
	setTokens := SetTokens(Fold(q.Set))
	allowNameOnly := HasSpecificityMarker(q.Name)

	best := make(map[domain.MatchTier]int)
	bestVolume := make(map[domain.MatchTier]int)

	for _, i := range s.candidates(name) {
		e := s.entries[i]
		numMatch := number != "" && e.numbers[number]
		setMatch := sharesToken(e.setTokens, setTokens)

		var tier domain.MatchTier
		switch {
		case numMatch && setMatch:
			tier = domain.MatchNameNumberSet
		case numMatch:
			tier = domain.MatchNameNumber
		case setMatch:
			tier = domain.MatchNameSet
		case allowNameOnly:
			tier = domain.MatchNameOnly
		default:
			continue
		}

		volume := s.refs[i].Volume()
		if _, ok := best[tier]; !ok || volume > bestVolume[tier] {
			best[tier] = i
			bestVolume[tier] = volume
		}
	}

	for _, tier := range []domain.MatchTier{
		domain.MatchNameNumberSet,
		domain.MatchNameNumber,
		domain.MatchNameSet,
		domain.MatchNameOnly,
	} {
		if i, ok := best[tier]; ok {
			return domain.MatchResult{Reference: &s.refs[i], Tier: tier}
		}
	}
	return domain.MatchResult{}
}

func sharesToken(have map[string]bool, want []string) bool {
	for _, w := range want {
		if have[w] {
			return true
		}
	}
	return false
}
