package ebay

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Item specific and descriptor names used by trading card listings.
const (
	aspectCardName     = "Card Name"
	aspectCharacter    = "Character"
	aspectSet          = "Set"
	aspectCardNumber   = "Card Number"
	aspectGraded       = "Graded"
	aspectGrade        = "Grade"
	aspectGrader       = "Professional Grader"
	aspectFeatures     = "Features"
	aspectRarity       = "Rarity"
	aspectLanguage     = "Language"
	aspectYear         = "Year Manufactured"
	aspectCondition    = "Condition"
	aspectCardCondText = "Card Condition"
)

// ToListingRecord converts a search result, and the detailed item when one
// was fetched, into a listing record. item may be nil.
func ToListingRecord(sum *ItemSummary, item *Item) domain.ListingRecord {
	rec := domain.ListingRecord{
		ItemID:      sum.ItemID,
		Title:       sum.Title,
		ItemURL:     sum.ItemWebURL,
		Currency:    sum.Price.Currency,
		Condition:   sum.Condition,
		ListingType: parseListingType(sum.BuyingOptions),
	}

	if p, err := decimal.NewFromString(sum.Price.Value); err == nil {
		rec.Price = p
	}
	if sum.Image != nil {
		rec.ImageURL = sum.Image.ImageURL
	}
	if sum.Seller != nil {
		rec.SellerName = sum.Seller.Username
		if pct, err := strconv.ParseFloat(sum.Seller.FeedbackPercentage, 64); err == nil {
			rec.SellerFeedbackPct = pct
		}
	}
	if len(sum.ShippingOptions) > 0 {
		if sc := sum.ShippingOptions[0].ShippingCost; sc != nil {
			if cost, err := decimal.NewFromString(sc.Value); err == nil {
				rec.ShippingCost = decimal.NewNullDecimal(cost)
			}
		}
	}
	if ts, err := time.Parse(time.RFC3339, sum.ItemCreationDate); err == nil {
		rec.ListedAt = &ts
	}

	if item == nil {
		return rec
	}
	if item.Condition != "" {
		rec.Condition = item.Condition
	}

	aspects := aspectMap(item.LocalizedAspects)
	rec.CardName = firstNonEmpty(aspects[aspectCardName], aspects[aspectCharacter])
	rec.SetName = aspects[aspectSet]
	rec.CardNumber = aspects[aspectCardNumber]
	rec.Variant = variantAttributes(aspects, item.ConditionDescriptors)

	return rec
}

func variantAttributes(aspects map[string]string, descriptors []ConditionDescriptor) *domain.VariantAttributes {
	features := aspects[aspectFeatures]
	rarity := aspects[aspectRarity]

	v := &domain.VariantAttributes{
		Grade:          firstNonEmpty(aspects[aspectGrade], descriptorValue(descriptors, aspectGrade)),
		GradingCompany: firstNonEmpty(aspects[aspectGrader], descriptorValue(descriptors, aspectGrader)),
		Condition:      aspects[aspectCondition],
		DetailedCondition: firstNonEmpty(
			descriptorValue(descriptors, aspectCardCondText),
			aspects[aspectCardCondText],
		),

		Holo:         containsFold(features, "Holo") && !containsFold(features, "Reverse Holo"),
		ReverseHolo:  containsFold(features, "Reverse Holo"),
		FirstEdition: containsFold(features, "1st Edition"),
		Shadowless:   containsFold(features, "Shadowless"),
		FullArt:      containsFold(features, "Full Art"),
		AltArt:       containsFold(features, "Alternate Art") || containsFold(features, "Alt Art"),
		SecretRare:   containsFold(rarity, "Secret Rare"),
		RainbowRare:  containsFold(rarity, "Rainbow Rare"),

		Language: aspects[aspectLanguage],
		Year:     aspects[aspectYear],
	}

	switch strings.ToLower(strings.TrimSpace(aspects[aspectGraded])) {
	case "yes":
		v.IsGraded = boolPtr(true)
	case "no":
		v.IsGraded = boolPtr(false)
	}

	if *v == (domain.VariantAttributes{}) {
		return nil
	}
	return v
}

// aspectMap indexes item specifics by name. The first value wins when a
// name repeats.
func aspectMap(aspects []Aspect) map[string]string {
	m := make(map[string]string, len(aspects))
	for _, a := range aspects {
		if _, ok := m[a.Name]; !ok {
			m[a.Name] = strings.TrimSpace(a.Value)
		}
	}
	return m
}

// descriptorValue returns the first value of the named descriptor.
func descriptorValue(descriptors []ConditionDescriptor, name string) string {
	for _, d := range descriptors {
		if !strings.EqualFold(strings.TrimSpace(d.Name), name) || len(d.Values) == 0 {
			continue
		}
		return strings.TrimSpace(d.Values[0].Content)
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolPtr(b bool) *bool { return &b }

func parseListingType(buyingOptions []string) domain.ListingType {
	if slices.Contains(buyingOptions, "AUCTION") {
		return domain.ListingAuction
	}
	if slices.Contains(buyingOptions, "BEST_OFFER") {
		return domain.ListingBestOffer
	}
	return domain.ListingBuyItNow
}
