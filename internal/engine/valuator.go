package engine

import (
	"github.com/donaldgifford/card-price-tracker/internal/metrics"
	"github.com/donaldgifford/card-price-tracker/pkg/grade"
	"github.com/donaldgifford/card-price-tracker/pkg/identity"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

// Valuator runs a listing through grade extraction, identity, reference
// matching and market value resolution. It is safe for concurrent use.
type Valuator struct {
	resolver *valuation.Resolver
}

// NewValuator returns a Valuator using the given resolver.
func NewValuator(r *valuation.Resolver) *Valuator {
	return &Valuator{resolver: r}
}

// Valuate values rec against snap. A nil snapshot yields a valuation with
// no reference match.
func (v *Valuator) Valuate(rec *domain.ListingRecord, snap *matcher.Snapshot) *domain.Valuation {
	gr := grade.Extract(rec.Title, rec.Condition, rec.Variant)
	card := WithTitleFallback(rec)

	out := &domain.Valuation{Grade: gr}

	id := identity.FromListing(&card, gr)
	if rec.Variant == nil {
		id.Flags = identity.ParseTitle(rec.Title).Flags
	}
	if key, err := id.Key(); err == nil {
		out.IdentityKey = key
		out.Identifiable = true
	}

	var match domain.MatchResult
	if snap != nil && card.CardName != "" {
		match = snap.Match(matcher.Query{
			Name:   card.CardName,
			Number: card.CardNumber,
			Set:    card.SetName,
		})
		importDate := snap.ImportDate()
		out.SnapshotDate = &importDate
	}
	out.MatchTier = match.Tier
	if match.Matched() {
		out.ReferenceProductID = match.Reference.ProductID
		out.ReferenceProductName = match.Reference.ProductName
	}

	out.Resolution = v.resolver.Resolve(gr, match.Reference)

	metrics.ValuationsTotal.Inc()
	metrics.MatchTiersTotal.WithLabelValues(match.Tier.String()).Inc()
	metrics.GradeOutcomesTotal.WithLabelValues(gradeKindLabel(gr.Grade)).Inc()
	metrics.ValuationRulesTotal.WithLabelValues(string(out.Resolution.Basis.Rule)).Inc()

	return out
}

// WithTitleFallback returns a copy of rec whose empty card name, set and
// number are filled from the listing title.
func WithTitleFallback(rec *domain.ListingRecord) domain.ListingRecord {
	card := *rec
	if card.CardName != "" && card.SetName != "" && card.CardNumber != "" {
		return card
	}
	parsed := identity.ParseTitle(rec.Title)
	if card.CardName == "" {
		card.CardName = parsed.Name
	}
	if card.SetName == "" {
		card.SetName = parsed.Set
	}
	if card.CardNumber == "" {
		card.CardNumber = parsed.Number
	}
	return card
}

func gradeKindLabel(g domain.Grade) string {
	switch g.Kind {
	case domain.GradeRaw:
		return "raw"
	case domain.GradeSpecific:
		return "specific"
	default:
		return "unknown"
	}
}
