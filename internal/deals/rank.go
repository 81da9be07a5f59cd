package deals

import (
	"context"
	"sort"

	"github.com/platewise/platewise/internal/model"
)

// personalizeAndRank filters deals by the caller's cuisine preference
// (exact, case-sensitive match against the roster) and sorts descending
// on (urgency is high, restaurant is critical, random tiebreak). Only the
// first two keys are a guaranteed ordering; ties are deliberately shuffled
// per call via the injected randomness source.
func (p *Pipeline) personalizeAndRank(_ context.Context, st State) State {
	filtered := st.Deals
	if st.Request.Cuisine != "" {
		filtered = make([]model.Deal, 0, len(st.Deals))
		for _, d := range st.Deals {
			r, ok := findByName(st.Restaurants, d.Restaurant)
			if ok && r.Cuisine == st.Request.Cuisine {
				filtered = append(filtered, d)
			}
		}
	}

	critical := make(map[string]struct{}, len(st.Insights.Critical))
	for _, name := range st.Insights.Critical {
		critical[name] = struct{}{}
	}

	type ranked struct {
		deal     model.Deal
		high     bool
		critical bool
		tiebreak float64
	}

	entries := make([]ranked, len(filtered))
	for i, d := range filtered {
		_, isCritical := critical[d.Restaurant]
		entries[i] = ranked{
			deal:     d,
			high:     d.Urgency == model.UrgencyHigh,
			critical: isCritical,
			tiebreak: p.tiebreak(),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.high != b.high {
			return a.high
		}
		if a.critical != b.critical {
			return a.critical
		}
		return a.tiebreak > b.tiebreak
	})

	final := make([]model.Deal, len(entries))
	for i, e := range entries {
		final[i] = e.deal
	}
	st.Final = final
	return st
}
