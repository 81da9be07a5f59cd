package model

// MealSlot identifies a meal period for ordering patterns.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnacks    MealSlot = "snacks"
)

// TrendSummary captures current food ordering trends for a location and
// season. Produced once per run by the trend analysis stage.
type TrendSummary struct {
	TrendingCuisines    []string              `json:"trending_cuisines"`
	WeatherFoods        []string              `json:"weather_foods"`
	SeasonalSpecialties []string              `json:"seasonal_specialties"`
	OrderPatterns       map[MealSlot][]string `json:"order_patterns"`
	// TrendingReasons explains, per driver ("weather", "season"), why the
	// trends hold. Optional; fallback summaries omit it.
	TrendingReasons map[string]string `json:"trending_reasons,omitempty"`
}
