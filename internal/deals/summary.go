package deals

import "github.com/platewise/platewise/internal/model"

// TotalSavings sums the price reduction across all clearance deals in the
// final list.
func (s State) TotalSavings() float64 {
	var total float64
	for _, d := range s.Final {
		total += d.Savings()
	}
	return total
}

// HighPriorityCount counts high-urgency deals in the final list.
func (s State) HighPriorityCount() int {
	count := 0
	for _, d := range s.Final {
		if d.Urgency == model.UrgencyHigh {
			count++
		}
	}
	return count
}

// AverageRating averages the roster rating of each final deal's
// restaurant. Deals whose restaurant is not on the roster (strategy
// targets the model invented) contribute nothing. Returns 0 for an empty
// deal list.
func (s State) AverageRating() float64 {
	var sum float64
	n := 0
	for _, d := range s.Final {
		if r, ok := findByName(s.Restaurants, d.Restaurant); ok {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
