package pipeline

import (
	"time"

	"github.com/platewise/platewise/internal/model"
)

// State is the run record threaded through the recommendation pipeline.
// Stages receive it by value and return an updated copy; nothing mutates
// a state another stage still holds, so a stage falling back can never
// corrupt what downstream stages observe.
type State struct {
	RunID       string
	UserID      string
	Location    string
	RequestedAt time.Time
	DemoMode    bool

	// Stage outputs, filled in pipeline order. Every field is populated
	// (live or fallback) before the next stage reads it.
	Month           string
	Weather         model.Weather
	Festivals       []model.Festival
	Trends          model.TrendSummary
	Recommendations []model.Recommendation
	Final           []model.Recommendation

	// Notices is the append-only degradation log. It grows within a run
	// and never causes termination.
	Notices []string
}

// withNotice returns the state with a notice appended.
func (s State) withNotice(msg string) State {
	s.Notices = append(s.Notices, msg)
	return s
}
