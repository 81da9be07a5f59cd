package deals

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/internal/model"
)

func TestSynthesizeClearanceDeal(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		Opportunities: []model.Opportunity{
			{
				RestaurantID:   "r1",
				RestaurantName: "Tandoori Tales",
				Type:           model.OpportunityClearStock,
				Item:           "Paneer Tikka",
				Urgency:        model.UrgencyHigh,
			},
		},
	}

	st = p.synthesizeDeals(context.Background(), st)

	require.Len(t, st.Deals, 1)
	d := st.Deals[0]
	assert.Equal(t, model.DealTypeClearance, d.Type)
	assert.Equal(t, "30% off Paneer Tikka", d.Description)
	assert.Equal(t, 150.0, d.OriginalPrice)
	assert.Equal(t, math.Round(150*0.70), d.DiscountedPrice)
	assert.GreaterOrEqual(t, d.DiscountedPrice, 0.0)
	assert.LessOrEqual(t, d.DiscountedPrice, d.OriginalPrice)
}

func TestSynthesizeMediumUrgencyDiscount(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		Opportunities: []model.Opportunity{
			{
				RestaurantID:   "r2",
				RestaurantName: "Dragon Bowl",
				Type:           model.OpportunitySlowSales,
				Urgency:        model.UrgencyMedium,
			},
		},
	}

	st = p.synthesizeDeals(context.Background(), st)

	require.Len(t, st.Deals, 1)
	d := st.Deals[0]
	assert.Equal(t, "20% off all menu", d.Description)
	assert.Equal(t, string(model.OpportunitySlowSales), d.Type)
	assert.Zero(t, d.OriginalPrice)
	assert.Zero(t, d.Savings())
}

func TestSynthesizeInnovativeDeals(t *testing.T) {
	p := New(demoConfig(), nil)
	st := State{
		Restaurants: fixtureRestaurants(),
		Insights: Insights{
			Creative: []CreativeDeal{
				{Type: "Happy Hour Combo", Target: "Dragon Bowl", Rationale: "Pair slow movers with bestsellers"},
				{Target: "Imaginary Kitchen"},
			},
		},
	}

	st = p.synthesizeDeals(context.Background(), st)

	require.Len(t, st.Deals, 2)
	assert.Equal(t, "Happy Hour Combo", st.Deals[0].Description)
	assert.Equal(t, model.DealTypeInnovative, st.Deals[0].Type)
	assert.Equal(t, model.UrgencyHigh, st.Deals[0].Urgency)
	assert.Equal(t, "r2", st.Deals[0].RestaurantID)

	// No idea type falls back to a generic label; unknown targets keep
	// their name but get no roster id.
	assert.Equal(t, "Special Offer", st.Deals[1].Description)
	assert.Empty(t, st.Deals[1].RestaurantID)
}
