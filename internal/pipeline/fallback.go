package pipeline

import (
	"fmt"

	"github.com/platewise/platewise/internal/model"
)

// fallbackWeather is the fixed substitute when the weather collaborator
// is unavailable, tagged with the requested location.
func fallbackWeather(location string) model.Weather {
	return model.Weather{
		Condition:       "pleasant",
		Description:     "pleasant weather",
		Temperature:     25,
		FeelsLike:       27,
		Humidity:        70,
		City:            location,
		Country:         "Unknown",
		FoodSuggestions: []string{"balanced meals", "seasonal favorites"},
	}
}

// festivalTable is the static month→festival fallback covering the major
// Indian festival months. Unlisted months deliberately yield an empty
// list: no major festival, not missing data.
var festivalTable = map[string][]model.Festival{
	"January": {{
		Name:          "Makar Sankranti",
		Foods:         []string{"til gur", "kheer", "pongal"},
		PopularOrders: []string{"sweet boxes", "traditional meals"},
	}},
	"February": {{
		Name:          "Vasant Panchami",
		Foods:         []string{"yellow sweets", "saffron dishes"},
		PopularOrders: []string{"mithai", "festive meals"},
	}},
	"March": {{
		Name:          "Holi",
		Foods:         []string{"gujiya", "thandai", "sweets"},
		PopularOrders: []string{"holi sweets", "festive snacks"},
	}},
	"April": {{
		Name:          "Ram Navami",
		Foods:         []string{"prasad", "fruits", "vegetarian meals"},
		PopularOrders: []string{"satvik food", "fruits"},
	}},
	"August": {{
		Name:          "Krishna Janmashtami",
		Foods:         []string{"makhan", "sweets", "fruits"},
		PopularOrders: []string{"festive sweets", "milk products"},
	}},
	"September": {{
		Name:          "Ganesh Chaturthi",
		Foods:         []string{"modak", "laddu", "sweets"},
		PopularOrders: []string{"modak", "festive sweets"},
	}},
	"October": {{
		Name:          "Dussehra",
		Foods:         []string{"sweets", "festive meals"},
		PopularOrders: []string{"celebration meals", "sweets"},
	}},
	"November": {{
		Name:          "Diwali",
		Foods:         []string{"mithai", "dry fruits", "festive meals"},
		PopularOrders: []string{"diwali sweets", "gift boxes"},
	}},
}

// fallbackFestivals returns the static festival list for a month. The
// result is never nil so callers can serialize it as an empty array.
func fallbackFestivals(month string) []model.Festival {
	if entries, ok := festivalTable[month]; ok {
		out := make([]model.Festival, len(entries))
		copy(out, entries)
		return out
	}
	return []model.Festival{}
}

// fallbackTrends is the full fixed trend summary substituted whenever the
// trend response is unusable. Always complete, never a partial merge.
func fallbackTrends() model.TrendSummary {
	return model.TrendSummary{
		TrendingCuisines:    []string{"Indian", "Chinese", "Italian", "South Indian"},
		WeatherFoods:        []string{"comfort food", "seasonal favorites"},
		SeasonalSpecialties: []string{"local dishes", "traditional meals"},
		OrderPatterns: map[model.MealSlot][]string{
			model.MealBreakfast: {"paratha", "idli", "poha"},
			model.MealLunch:     {"rice meals", "roti sabzi", "biryani"},
			model.MealDinner:    {"dal rice", "noodles", "pizza"},
			model.MealSnacks:    {"samosa", "pakora", "chai"},
		},
	}
}

// fallbackRecommendations is the fixed three-item list served when
// recommendation generation fails outright.
func fallbackRecommendations() []model.Recommendation {
	return []model.Recommendation{
		{
			DishName:   "Butter Chicken with Naan",
			Cuisine:    "North Indian",
			Reason:     "Popular comfort food perfect for any weather",
			Confidence: 0.85,
			Tags:       []string{"comfort", "popular", "non-veg"},
			PriceRange: model.PriceMid,
			MealType:   "dinner",
		},
		{
			DishName:   "Vegetable Biryani",
			Cuisine:    "Indian",
			Reason:     "Aromatic rice dish loved by everyone",
			Confidence: 0.80,
			Tags:       []string{"vegetarian", "aromatic", "filling"},
			PriceRange: model.PriceMid,
			MealType:   "lunch",
		},
		{
			DishName:   "Margherita Pizza",
			Cuisine:    "Italian",
			Reason:     "Classic favorite that never disappoints",
			Confidence: 0.75,
			Tags:       []string{"vegetarian", "cheesy", "popular"},
			PriceRange: model.PriceMid,
			MealType:   "dinner",
		},
	}
}

// fallbackExplanation is the templated per-dish substitute when an
// explanation call fails or returns empty text.
func fallbackExplanation(dish string) string {
	if dish == "" {
		dish = "this dish"
	}
	return fmt.Sprintf("Perfect choice because %s is a popular favorite that matches current preferences and trends!", dish)
}
