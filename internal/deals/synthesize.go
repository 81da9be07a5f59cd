package deals

import (
	"context"
	"fmt"
	"math"

	"github.com/platewise/platewise/internal/model"
)

const (
	baseDiscountPct    = 20
	urgencyDiscountPct = 10
)

// synthesizeDeals merges two independent deal sources: rule-based deals
// derived from every opportunity, then strategy-augmented deals from the
// insight set. No deduplication happens across sources; a restaurant may
// legitimately carry several deals of different origin.
func (p *Pipeline) synthesizeDeals(_ context.Context, st State) State {
	var deals []model.Deal

	for _, opp := range st.Opportunities {
		discount := baseDiscountPct
		if opp.Urgency == model.UrgencyHigh {
			discount += urgencyDiscountPct
		}

		deal := model.Deal{
			RestaurantID: opp.RestaurantID,
			Restaurant:   opp.RestaurantName,
			Urgency:      opp.Urgency,
		}

		if opp.Type == model.OpportunityClearStock {
			restaurant, ok := findByID(st.Restaurants, opp.RestaurantID)
			if !ok {
				panic(fmt.Sprintf("deals: opportunity references unknown restaurant %s", opp.RestaurantID))
			}
			line, ok := restaurant.Line(opp.Item)
			if !ok {
				panic(fmt.Sprintf("deals: opportunity references unknown item %q at %s", opp.Item, opp.RestaurantID))
			}
			deal.Description = fmt.Sprintf("%d%% off %s", discount, opp.Item)
			deal.Type = model.DealTypeClearance
			deal.OriginalPrice = line.Cost
			deal.DiscountedPrice = math.Round(line.Cost * (1 - float64(discount)/100))
		} else {
			deal.Description = fmt.Sprintf("%d%% off all menu", discount)
			deal.Type = string(opp.Type)
		}

		deals = append(deals, deal)
	}

	for _, idea := range st.Insights.Creative {
		description := idea.Type
		if description == "" {
			description = "Special Offer"
		}
		deal := model.Deal{
			Restaurant:  idea.Target,
			Description: description,
			Type:        model.DealTypeInnovative,
			Urgency:     model.UrgencyHigh,
			Rationale:   idea.Rationale,
		}
		if r, ok := findByName(st.Restaurants, idea.Target); ok {
			deal.RestaurantID = r.ID
		}
		deals = append(deals, deal)
	}

	st.Deals = deals
	return st
}

// findByID looks a restaurant up by roster id.
func findByID(restaurants []model.Restaurant, id string) (model.Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return model.Restaurant{}, false
}
