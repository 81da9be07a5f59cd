package deals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/internal/model"
)

func fixtureRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{
			ID: "r1", Name: "Tandoori Tales", Cuisine: "Indian",
			OpenHour: 11, CloseHour: 23, Rating: 4.0, LastHourSales: 8,
			Inventory: []model.InventoryLine{
				{Item: "Paneer Tikka", Cost: 150, Quantity: 3},
				{Item: "Roti", Cost: 20, Quantity: 12},
			},
		},
		{
			ID: "r2", Name: "Dragon Bowl", Cuisine: "Chinese",
			OpenHour: 12, CloseHour: 22, Rating: 4.3, LastHourSales: 2,
			Inventory: []model.InventoryLine{
				{Item: "Hakka Noodles", Cost: 130, Quantity: 22},
				{Item: "Spring Rolls", Cost: 80, Quantity: 4},
			},
		},
	}
}

func TestDetectOpportunitiesLowStock(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		ObservedAt:  time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC),
	}

	st = p.detectOpportunities(context.Background(), st)

	var cleared []string
	for _, o := range st.Opportunities {
		if o.Type == model.OpportunityClearStock {
			assert.Equal(t, model.UrgencyHigh, o.Urgency)
			cleared = append(cleared, o.Item)
		}
	}
	// Every line under the stock threshold, in roster order, nothing else.
	assert.Equal(t, []string{"Paneer Tikka", "Spring Rolls"}, cleared)
}

func TestDetectOpportunitiesClosingSoon(t *testing.T) {
	p := New(demoConfig(), nil)
	// Dragon Bowl closes at 22; observed 20:30 is inside the window,
	// Tandoori Tales (closes 23) is not.
	st := State{
		Restaurants: fixtureRestaurants(),
		ObservedAt:  time.Date(2025, time.June, 1, 20, 30, 0, 0, time.UTC),
	}

	st = p.detectOpportunities(context.Background(), st)

	var closing []string
	for _, o := range st.Opportunities {
		if o.Type == model.OpportunityClosingSoon {
			assert.Equal(t, model.UrgencyHigh, o.Urgency)
			closing = append(closing, o.RestaurantName)
		}
	}
	assert.Equal(t, []string{"Dragon Bowl"}, closing)
}

func TestDetectOpportunitiesSlowSales(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		ObservedAt:  time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC),
	}

	st = p.detectOpportunities(context.Background(), st)

	var slow []model.Opportunity
	for _, o := range st.Opportunities {
		if o.Type == model.OpportunitySlowSales {
			slow = append(slow, o)
		}
	}
	require.Len(t, slow, 1)
	assert.Equal(t, "Dragon Bowl", slow[0].RestaurantName)
	assert.Equal(t, model.UrgencyMedium, slow[0].Urgency)
}

func TestDetectOpportunitiesStableOrder(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		ObservedAt:  time.Date(2025, time.June, 1, 20, 30, 0, 0, time.UTC),
	}

	first := p.detectOpportunities(context.Background(), st)
	second := p.detectOpportunities(context.Background(), st)
	assert.Equal(t, first.Opportunities, second.Opportunities)
}
