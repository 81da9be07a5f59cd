package server

import (
	"net/http"
	"time"

	"github.com/platewise/platewise/internal/deals"
	"github.com/platewise/platewise/internal/model"
)

// foodRequest is the body of POST /api/food/recommendations.
type foodRequest struct {
	UserID   string `json:"user_id"`
	Location string `json:"location"`
}

// foodContext echoes the gathered context back to the caller.
type foodContext struct {
	Location     string           `json:"location"`
	Weather      model.Weather    `json:"weather"`
	Festivals    []model.Festival `json:"festivals"`
	CurrentMonth string           `json:"current_month"`
}

// foodResponse is the body of POST /api/food/recommendations.
type foodResponse struct {
	Recommendations []model.Recommendation `json:"recommendations"`
	Context         foodContext            `json:"context"`
	Errors          []string               `json:"errors"`
	Timestamp       string                 `json:"timestamp"`
	DemoMode        bool                   `json:"demo_mode"`
}

func (s *Server) handleFoodRecommendations(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := decode(r, &req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		req.UserID = "default_user"
	}

	st := s.food.Run(r.Context(), req.UserID, req.Location)

	errs := st.Notices
	if errs == nil {
		errs = []string{}
	}
	respond(w, http.StatusOK, foodResponse{
		Recommendations: st.Final,
		Context: foodContext{
			Location:     st.Location,
			Weather:      st.Weather,
			Festivals:    st.Festivals,
			CurrentMonth: st.Month,
		},
		Errors:    errs,
		Timestamp: time.Now().Format(time.RFC3339),
		DemoMode:  st.DemoMode,
	})
}

// dealRequest is the body of POST /api/deals/recommendations.
type dealRequest struct {
	Cuisine  string `json:"cuisine"`
	Location string `json:"location"`
}

// dealResponse is the body of POST /api/deals/recommendations.
type dealResponse struct {
	Deals             []model.Deal `json:"deals"`
	MarketingIdeas    []string     `json:"marketing_ideas"`
	TotalSavings      float64      `json:"total_savings"`
	HighPriorityCount int          `json:"high_priority_count"`
	AverageRating     float64      `json:"average_rating"`
	Timestamp         string       `json:"timestamp"`
}

func (s *Server) handleDealRecommendations(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := decode(r, &req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	st := s.deal.Run(r.Context(), deals.Request{
		Cuisine:  req.Cuisine,
		Location: req.Location,
	})

	marketing := st.Insights.Marketing
	if marketing == nil {
		marketing = []string{}
	}
	respond(w, http.StatusOK, dealResponse{
		Deals:             st.Final,
		MarketingIdeas:    marketing,
		TotalSavings:      st.TotalSavings(),
		HighPriorityCount: st.HighPriorityCount(),
		AverageRating:     st.AverageRating(),
		Timestamp:         time.Now().Format(time.RFC3339),
	})
}
