package deals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/internal/model"
)

func TestRankOrdering(t *testing.T) {
	p := New(demoConfig(), nil, WithTiebreak(func() float64 { return 0.5 }))
	st := State{
		Restaurants: fixtureRestaurants(),
		Insights:    Insights{Critical: []string{"Dragon Bowl"}},
		Deals: []model.Deal{
			{Restaurant: "Tandoori Tales", Description: "low", Urgency: model.UrgencyMedium},
			{Restaurant: "Tandoori Tales", Description: "high", Urgency: model.UrgencyHigh},
			{Restaurant: "Dragon Bowl", Description: "high critical", Urgency: model.UrgencyHigh},
		},
	}

	st = p.personalizeAndRank(context.Background(), st)

	require.Len(t, st.Final, 3)
	assert.Equal(t, "high critical", st.Final[0].Description)
	assert.Equal(t, "high", st.Final[1].Description)
	assert.Equal(t, "low", st.Final[2].Description)
}

func TestRankTiebreakDescending(t *testing.T) {
	scores := []float64{0.2, 0.9}
	i := 0
	p := New(demoConfig(), nil, WithTiebreak(func() float64 {
		s := scores[i%len(scores)]
		i++
		return s
	}))
	st := State{
		Deals: []model.Deal{
			{Restaurant: "A", Urgency: model.UrgencyHigh},
			{Restaurant: "B", Urgency: model.UrgencyHigh},
		},
	}

	st = p.personalizeAndRank(context.Background(), st)

	require.Len(t, st.Final, 2)
	// B drew the larger tiebreak so it sorts first.
	assert.Equal(t, "B", st.Final[0].Restaurant)
}

func TestRankCuisineFilter(t *testing.T) {
	p := New(demoConfig(), nil, WithTiebreak(func() float64 { return 0.5 }))
	st := State{
		Request:     Request{Cuisine: "Chinese"},
		Restaurants: fixtureRestaurants(),
		Deals: []model.Deal{
			{Restaurant: "Tandoori Tales", Urgency: model.UrgencyHigh},
			{Restaurant: "Dragon Bowl", Urgency: model.UrgencyMedium},
			{Restaurant: "Unknown Kitchen", Urgency: model.UrgencyHigh},
		},
	}

	st = p.personalizeAndRank(context.Background(), st)

	require.Len(t, st.Final, 1)
	assert.Equal(t, "Dragon Bowl", st.Final[0].Restaurant)
}

func TestRankCuisineFilterIsExact(t *testing.T) {
	p := New(demoConfig(), nil, WithTiebreak(func() float64 { return 0.5 }))
	st := State{
		Request:     Request{Cuisine: "chinese"},
		Restaurants: fixtureRestaurants(),
		Deals: []model.Deal{
			{Restaurant: "Dragon Bowl", Urgency: model.UrgencyHigh},
		},
	}

	st = p.personalizeAndRank(context.Background(), st)
	assert.Empty(t, st.Final)
}
