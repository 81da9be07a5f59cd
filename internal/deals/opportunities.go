package deals

import (
	"context"

	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/model"
)

const (
	// closingWindowHours is how close to closing a restaurant must be
	// before a closing_soon opportunity fires.
	closingWindowHours = 2
	// slowSalesThreshold is the last-hour sales count below which a
	// restaurant counts as slow.
	slowSalesThreshold = 3
	// lowStockThreshold is the quantity below which an inventory line
	// yields a clear_stock opportunity.
	lowStockThreshold = 5
)

// detectOpportunities runs the deterministic rule scan over the snapshot.
// Output order is fixed: roster order, then rule order (closing_soon,
// slow_sales, clear_stock), then inventory line order. Rules are not
// mutually exclusive; one restaurant can yield several opportunities.
func (p *Pipeline) detectOpportunities(_ context.Context, st State) State {
	hour := st.ObservedAt.Hour()
	var opportunities []model.Opportunity

	for _, r := range st.Restaurants {
		if hour >= r.CloseHour-closingWindowHours {
			opportunities = append(opportunities, model.Opportunity{
				RestaurantID:   r.ID,
				RestaurantName: r.Name,
				Type:           model.OpportunityClosingSoon,
				Urgency:        model.UrgencyHigh,
			})
		}

		if r.LastHourSales < slowSalesThreshold {
			opportunities = append(opportunities, model.Opportunity{
				RestaurantID:   r.ID,
				RestaurantName: r.Name,
				Type:           model.OpportunitySlowSales,
				Urgency:        model.UrgencyMedium,
			})
		}

		for _, line := range r.Inventory {
			if line.Quantity < lowStockThreshold {
				opportunities = append(opportunities, model.Opportunity{
					RestaurantID:   r.ID,
					RestaurantName: r.Name,
					Type:           model.OpportunityClearStock,
					Item:           line.Item,
					Urgency:        model.UrgencyHigh,
				})
			}
		}
	}

	zap.L().Debug("deals: opportunities detected",
		zap.Int("count", len(opportunities)), zap.Int("hour", hour))
	st.Opportunities = opportunities
	return st
}
