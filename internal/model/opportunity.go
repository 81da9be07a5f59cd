package model

// OpportunityType classifies a detected business condition eligible for
// a deal.
type OpportunityType string

const (
	OpportunityClosingSoon OpportunityType = "closing_soon"
	OpportunitySlowSales   OpportunityType = "slow_sales"
	OpportunityClearStock  OpportunityType = "clear_stock"
)

// Urgency is the coarse priority tier driving deal strength and ranking.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
)

// Opportunity is a detected condition at one restaurant. Item is set only
// for clear_stock opportunities.
type Opportunity struct {
	RestaurantID   string          `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	Type           OpportunityType `json:"type"`
	Item           string          `json:"item,omitempty"`
	Urgency        Urgency         `json:"urgency"`
}
