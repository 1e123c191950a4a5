package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByMarketValue = "market_value"
	orderByPrice       = "price"
	orderByDiscount    = "discount"
	orderByFirstSeen   = "first_seen_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByMarketValue: "market_value DESC NULLS LAST",
	orderByPrice:       "price ASC",
	orderByDiscount:    "(market_value - price) DESC NULLS LAST",
	orderByFirstSeen:   "first_seen_at DESC",
}

const defaultOrderBy = "first_seen_at DESC"

const listingColumns = `id, item_id, title, item_url, image_url, condition_raw, variant_attributes,
	price, currency, shipping_cost, listing_type, seller_name, seller_feedback_pct,
	card_name, set_name, card_number, listed_at,
	valuation, valued_at, first_seen_at, updated_at`

const baseListingsSelect = "SELECT " + listingColumns + "\nFROM listings"

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if q.IdentityKey != nil {
		add("identity_key = $%d", *q.IdentityKey)
	}
	if q.Grade != nil {
		add("grade = $%d", *q.Grade)
	}
	if q.Graded != nil {
		add("is_graded = $%d", *q.Graded)
	}
	if q.MatchTier != nil {
		add("match_tier = $%d", *q.MatchTier)
	}
	if q.MinValue != nil {
		add("market_value >= $%d", *q.MinValue)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, id LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}
