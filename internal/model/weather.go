package model

import "sort"

// Weather is a point-in-time weather snapshot for a location, enriched
// with food suggestion tags derived from condition and temperature.
// Immutable once produced by the context stage.
type Weather struct {
	Condition       string   `json:"condition"`
	Description     string   `json:"description"`
	Temperature     int      `json:"temperature"`
	FeelsLike       int      `json:"feels_like"`
	Humidity        int      `json:"humidity"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	FoodSuggestions []string `json:"food_suggestions"`
}

// conditionFoods maps a weather condition tag to foods people reach for
// under that condition.
var conditionFoods = map[string][]string{
	"rain":         {"pakoras", "chai", "hot snacks", "soup"},
	"drizzle":      {"hot beverages", "fried snacks"},
	"clear":        {"fresh juice", "salads", "grilled items"},
	"clouds":       {"comfort food", "warm meals"},
	"snow":         {"hot chocolate", "warm soup", "hearty meals"},
	"thunderstorm": {"comfort food", "hot beverages"},
}

// FoodSuggestionsFor derives food suggestion tags from a condition tag and
// a temperature in °C. The result is deduplicated and sorted so repeated
// calls with the same inputs produce the same slice.
func FoodSuggestionsFor(condition string, temperature int) []string {
	var suggestions []string

	switch {
	case temperature < 15:
		suggestions = append(suggestions, "hot soup", "tea", "warm beverages", "comfort food")
	case temperature > 30:
		suggestions = append(suggestions, "cold drinks", "ice cream", "light salads", "fresh juices")
	default:
		suggestions = append(suggestions, "balanced meals", "fresh food")
	}

	suggestions = append(suggestions, conditionFoods[condition]...)

	seen := make(map[string]struct{}, len(suggestions))
	out := suggestions[:0]
	for _, s := range suggestions {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
