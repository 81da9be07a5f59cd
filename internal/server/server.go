// Package server exposes the recommendation and deal pipelines over HTTP.
// Handlers never surface pipeline failures: every response is well-formed,
// with degradation reported through the demo_mode flag and the errors list.
package server

import (
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/config"
	"github.com/platewise/platewise/internal/deals"
	"github.com/platewise/platewise/internal/pipeline"
)

// Server wires the pipelines to the HTTP surface.
type Server struct {
	cfg  *config.Config
	food *pipeline.Pipeline
	deal *deals.Pipeline
	// pick chooses among n canned demo chat replies; injected so handler
	// tests can pin the choice.
	pick func(n int) int
}

// Option configures a Server.
type Option func(*Server)

// WithPicker injects the demo chat reply chooser.
func WithPicker(pick func(n int) int) Option {
	return func(s *Server) {
		s.pick = pick
	}
}

// New creates a Server around the two pipelines.
func New(cfg *config.Config, food *pipeline.Pipeline, deal *deals.Pipeline, opts ...Option) *Server {
	s := &Server{
		cfg:  cfg,
		food: food,
		deal: deal,
		pick: rand.Intn,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/food/recommendations", s.handleFoodRecommendations)
		r.Post("/food/chat", s.handleFoodChat)
		r.Post("/deals/recommendations", s.handleDealRecommendations)
		r.Get("/system/status", s.handleSystemStatus)
	})
	return r
}

// respond writes v as a JSON response body.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

// decode reads the request body as JSON into dst.
func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSystemStatus(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"llm_api_available":     s.cfg.LLM.Key != "",
		"weather_api_available": s.cfg.Weather.Key != "",
		"demo_mode":             s.cfg.DemoMode(),
		"status":                "operational",
	})
}
