package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodSuggestionsForCold(t *testing.T) {
	got := FoodSuggestionsFor("clear", 10)
	assert.Contains(t, got, "hot soup")
	assert.Contains(t, got, "tea")
	assert.Contains(t, got, "fresh juice")
}

func TestFoodSuggestionsForHot(t *testing.T) {
	got := FoodSuggestionsFor("rain", 35)
	assert.Contains(t, got, "cold drinks")
	assert.Contains(t, got, "pakoras")
	assert.Contains(t, got, "chai")
}

func TestFoodSuggestionsForMild(t *testing.T) {
	got := FoodSuggestionsFor("clouds", 25)
	assert.Contains(t, got, "balanced meals")
	assert.Contains(t, got, "comfort food")
	assert.Contains(t, got, "warm meals")
}

func TestFoodSuggestionsForUnknownCondition(t *testing.T) {
	got := FoodSuggestionsFor("haze", 25)
	assert.Equal(t, []string{"balanced meals", "fresh food"}, got)
}

func TestFoodSuggestionsSortedAndUnique(t *testing.T) {
	// thunderstorm and cold both contribute "comfort food".
	got := FoodSuggestionsFor("thunderstorm", 5)
	assert.True(t, sort.StringsAreSorted(got))

	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	assert.Equal(t, 1, seen["comfort food"])
}
