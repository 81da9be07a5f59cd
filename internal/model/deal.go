package model

// DealTypeClearance marks rule-based deals on a specific low-stock item;
// DealTypeInnovative marks deals sourced from strategic analysis. Other
// rule-based deals carry their originating opportunity type verbatim.
const (
	DealTypeClearance  = "clearance"
	DealTypeInnovative = "innovative"
)

// Deal is one offer attached to a restaurant. OriginalPrice and
// DiscountedPrice are set only for clearance deals; Rationale only for
// strategy-sourced deals.
type Deal struct {
	RestaurantID    string  `json:"restaurant_id,omitempty"`
	Restaurant      string  `json:"restaurant"`
	Description     string  `json:"deal"`
	Type            string  `json:"type"`
	Urgency         Urgency `json:"urgency"`
	OriginalPrice   float64 `json:"original_price,omitempty"`
	DiscountedPrice float64 `json:"discounted_price,omitempty"`
	Rationale       string  `json:"rationale,omitempty"`
}

// Savings returns the price reduction for clearance deals, 0 otherwise.
func (d Deal) Savings() float64 {
	if d.OriginalPrice <= 0 {
		return 0
	}
	return d.OriginalPrice - d.DiscountedPrice
}
