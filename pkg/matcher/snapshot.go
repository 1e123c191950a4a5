// Package matcher finds the reference price record that best describes a
// card, using match tiers of decreasing precision over an immutable
// snapshot of the reference table.
package matcher

import (
	"strings"
	"time"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// entry holds the precomputed match keys for one reference record.
type entry struct {
	name      string
	numbers   map[string]bool
	setTokens map[string]bool
}

// Snapshot is a read-only, indexed copy of one reference table import. It
// is safe for concurrent use. A new import produces a new Snapshot.
type Snapshot struct {
	refs       []domain.PriceReference
	entries    []entry
	trigrams   map[string][]int
	importDate time.Time
}

// NewSnapshot indexes refs. The slice is copied; later changes to refs do
// not affect the snapshot.
func NewSnapshot(refs []domain.PriceReference) *Snapshot {
	s := &Snapshot{
		refs:     make([]domain.PriceReference, len(refs)),
		entries:  make([]entry, len(refs)),
		trigrams: make(map[string][]int),
	}
	copy(s.refs, refs)

	for i := range s.refs {
		r := &s.refs[i]
		if r.ImportDate.After(s.importDate) {
			s.importDate = r.ImportDate
		}

		name := Fold(r.ProductName)
		e := entry{
			name:      name,
			numbers:   make(map[string]bool),
			setTokens: make(map[string]bool),
		}
		for _, n := range numberTokens(name) {
			e.numbers[n] = true
		}
		for _, tok := range SetTokens(Fold(r.ConsoleName)) {
			e.setTokens[tok] = true
		}
		s.entries[i] = e

		for _, g := range trigramsOf(name) {
			posts := s.trigrams[g]
			if len(posts) == 0 || posts[len(posts)-1] != i {
				s.trigrams[g] = append(posts, i)
			}
		}
	}

	return s
}

// Len returns the number of reference records.
func (s *Snapshot) Len() int { return len(s.refs) }

// ImportDate returns the latest import date among the records.
func (s *Snapshot) ImportDate() time.Time { return s.importDate }

// Records returns the snapshot's records. Callers must not modify them.
func (s *Snapshot) Records() []domain.PriceReference { return s.refs }

// candidates returns, in snapshot order, the indexes of records whose
// folded product name contains name.
func (s *Snapshot) candidates(name string) []int {
	grams := trigramsOf(name)
	if len(grams) == 0 {
		out := make([]int, 0, len(s.entries))
		for i, e := range s.entries {
			if strings.Contains(e.name, name) {
				out = append(out, i)
			}
		}
		return out
	}

	// Every candidate contains all of name's trigrams, so the rarest one's
	// postings are enough to scan.
	smallest := s.trigrams[grams[0]]
	for _, g := range grams[1:] {
		if p := s.trigrams[g]; len(p) < len(smallest) {
			smallest = p
		}
	}

	out := make([]int, 0, len(smallest))
	for _, i := range smallest {
		if strings.Contains(s.entries[i].name, name) {
			out = append(out, i)
		}
	}
	return out
}

// trigramsOf returns the distinct byte trigrams of s.
func trigramsOf(s string) []string {
	if len(s) < 3 {
		return nil
	}
	seen := make(map[string]bool, len(s))
	out := make([]string, 0, len(s)-2)
	for i := 0; i+3 <= len(s); i++ {
		g := s[i : i+3]
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}
