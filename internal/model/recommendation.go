package model

// PriceTier buckets a dish by expected spend.
type PriceTier string

const (
	PriceBudget  PriceTier = "budget"
	PriceMid     PriceTier = "mid"
	PricePremium PriceTier = "premium"
)

// Recommendation is a single dish suggestion. Confidence is always kept
// within [0,1]; Explanation is empty until the annotation stage fills it.
type Recommendation struct {
	DishName    string    `json:"dish_name"`
	Cuisine     string    `json:"cuisine"`
	Reason      string    `json:"reason"`
	Confidence  float64   `json:"confidence"`
	Tags        []string  `json:"tags"`
	PriceRange  PriceTier `json:"price_range"`
	MealType    string    `json:"meal_type"`
	Explanation string    `json:"explanation,omitempty"`
}

// ClampConfidence forces the confidence score into [0,1].
func (r *Recommendation) ClampConfidence() {
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
}
