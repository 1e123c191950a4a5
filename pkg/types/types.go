// Package domain defines the core business types for the card price tracker.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingType represents the eBay listing format.
type ListingType string

// Listing type constants.
const (
	ListingAuction   ListingType = "auction"
	ListingBuyItNow  ListingType = "buy_it_now"
	ListingBestOffer ListingType = "best_offer"
)

// ListingRecord is one observed marketplace offer as captured by ingestion.
// It is never mutated after capture.
type ListingRecord struct {
	ItemID   string `json:"item_id"`
	Title    string `json:"title"`
	ItemURL  string `json:"item_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	// Condition is the marketplace's structured condition string ("Graded",
	// "Ungraded", "Near Mint or Better", ...). Empty when not supplied.
	Condition string             `json:"condition,omitempty"`
	Variant   *VariantAttributes `json:"variant_attributes,omitempty"`

	// Pricing
	Price        decimal.Decimal     `json:"price"`
	Currency     string              `json:"currency,omitempty"`
	ShippingCost decimal.NullDecimal `json:"shipping_cost"`
	ListingType  ListingType         `json:"listing_type,omitempty"`

	// Seller
	SellerName        string  `json:"seller_name,omitempty"`
	SellerFeedbackPct float64 `json:"seller_feedback_pct,omitempty"`

	// Card identity as reported by the marketplace (aspects) or parsed
	// from the title.
	CardName   string `json:"card_name,omitempty"`
	SetName    string `json:"set_name,omitempty"`
	CardNumber string `json:"card_number,omitempty"`

	ListedAt *time.Time `json:"listed_at,omitempty"`
}

// TotalCost returns price plus shipping.
func (r *ListingRecord) TotalCost() decimal.Decimal {
	if r.ShippingCost.Valid {
		return r.Price.Add(r.ShippingCost.Decimal)
	}
	return r.Price
}

// VariantAttributes carries the structured attributes a marketplace exposes
// for a trading card listing. JSON keys match the stored variant_attributes
// document.
type VariantAttributes struct {
	// IsGraded is tri-state: nil means the marketplace said nothing.
	IsGraded          *bool  `json:"is_graded,omitempty"`
	Grade             string `json:"grade,omitempty"`
	GradingCompany    string `json:"grading_company,omitempty"`
	Condition         string `json:"condition,omitempty"`
	DetailedCondition string `json:"detailed_condition,omitempty"`

	Holo         bool `json:"is_holo,omitempty"`
	ReverseHolo  bool `json:"is_reverse_holo,omitempty"`
	FirstEdition bool `json:"is_1st_edition,omitempty"`
	Shadowless   bool `json:"is_shadowless,omitempty"`
	FullArt      bool `json:"is_full_art,omitempty"`
	AltArt       bool `json:"is_alt_art,omitempty"`
	SecretRare   bool `json:"is_secret_rare,omitempty"`
	RainbowRare  bool `json:"is_rainbow_rare,omitempty"`

	Language string `json:"language,omitempty"`
	Year     string `json:"year,omitempty"`
}

// Valuation is the engine's output for one listing against one reference
// snapshot.
type Valuation struct {
	Grade        GradeResult `json:"grade"`
	IdentityKey  string      `json:"identity_key,omitempty"`
	Identifiable bool        `json:"identifiable"`

	MatchTier            MatchTier `json:"match_tier"`
	ReferenceProductID   string    `json:"reference_product_id,omitempty"`
	ReferenceProductName string    `json:"reference_product_name,omitempty"`

	Resolution Resolution `json:"resolution"`

	SnapshotDate *time.Time `json:"snapshot_date,omitempty"`
}

// Listing is a persisted listing with its latest valuation.
type Listing struct {
	ID string `json:"id"`
	ListingRecord

	Valuation *Valuation `json:"valuation,omitempty"`
	ValuedAt  *time.Time `json:"valued_at,omitempty"`

	FirstSeenAt time.Time `json:"first_seen_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// Job run statuses.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)
