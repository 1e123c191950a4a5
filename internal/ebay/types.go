package ebay

// ItemSummary represents a single item from the eBay Browse API search response.
type ItemSummary struct {
	ItemID           string           `json:"itemId"`
	Title            string           `json:"title"`
	Price            ItemPrice        `json:"price"`
	ItemWebURL       string           `json:"itemWebUrl"`
	Image            *ItemImage       `json:"image,omitempty"`
	Seller           *ItemSeller      `json:"seller,omitempty"`
	Condition        string           `json:"condition"`
	ConditionID      string           `json:"conditionId"`
	BuyingOptions    []string         `json:"buyingOptions"`
	ShippingOptions  []ShippingOption `json:"shippingOptions,omitempty"`
	ItemCreationDate string           `json:"itemCreationDate,omitempty"`
}

// Item is the detailed listing returned by the getItem call. Trading card
// listings carry their item specifics in LocalizedAspects and, for ungraded
// cards, the seller's condition grade in ConditionDescriptors.
type Item struct {
	ItemSummary

	LocalizedAspects     []Aspect              `json:"localizedAspects,omitempty"`
	ConditionDescriptors []ConditionDescriptor `json:"conditionDescriptors,omitempty"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemSeller holds eBay seller information.
type ItemSeller struct {
	Username           string `json:"username"`
	FeedbackScore      int    `json:"feedbackScore"`
	FeedbackPercentage string `json:"feedbackPercentage"`
}

// ShippingOption holds eBay shipping information.
type ShippingOption struct {
	ShippingCost *ItemPrice `json:"shippingCost,omitempty"`
}

// Aspect is one item specific, e.g. {"name": "Card Name", "value": "Lugia"}.
type Aspect struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ConditionDescriptor is a structured condition attribute such as
// "Card Condition" or "Professional Grader".
type ConditionDescriptor struct {
	Name   string                     `json:"name"`
	Values []ConditionDescriptorValue `json:"values"`
}

// ConditionDescriptorValue is one value of a condition descriptor.
type ConditionDescriptorValue struct {
	Content        string   `json:"content"`
	AdditionalInfo []string `json:"additionalInfo,omitempty"`
}
