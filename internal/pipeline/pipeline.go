// Package pipeline implements the staged food recommendation pipeline:
// gather context, analyze trends, generate recommendations, annotate
// explanations. Stages run in a fixed linear order; a collaborator
// failure inside a stage is absorbed with a deterministic fallback and a
// notice, never a run failure.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/platewise/platewise/internal/config"
	"github.com/platewise/platewise/pkg/anthropic"
	"github.com/platewise/platewise/pkg/openweather"
)

// Pipeline orchestrates one recommendation run per call. Safe for
// concurrent use; each run owns its state exclusively.
type Pipeline struct {
	cfg     *config.Config
	llm     anthropic.Client
	weather openweather.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock injects the wall clock, pinning month/hour derivations in tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline with its collaborators.
func New(cfg *config.Config, llm anthropic.Client, weather openweather.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		llm:     llm,
		weather: weather,
		limiter: rate.NewLimiter(rate.Limit(cfg.LLM.RatePerSec), cfg.LLM.Burst),
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// stage is one unit of the linear pipeline.
type stage struct {
	name string
	fn   func(ctx context.Context, st State) State
}

// Run executes the full pipeline for one user request and returns the
// final state. Collaborator failures never surface; an internal defect is
// recovered into an emergency static result rather than a panic.
func (p *Pipeline) Run(ctx context.Context, userID, location string) (final State) {
	if location == "" {
		location = p.cfg.Pipeline.DefaultLocation
	}

	st := State{
		RunID:       uuid.NewString(),
		UserID:      userID,
		Location:    location,
		RequestedAt: p.now(),
		DemoMode:    p.cfg.DemoMode(),
	}

	log := zap.L().With(zap.String("run_id", st.RunID), zap.String("location", location))

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline: internal defect, serving emergency result", zap.Any("panic", r))
			final = emergencyState(st, r)
		}
	}()

	stages := []stage{
		{"gather_context", p.gatherContext},
		{"analyze_trends", p.analyzeTrends},
		{"generate_recommendations", p.generateRecommendations},
		{"annotate_explanations", p.annotateExplanations},
	}

	log.Info("pipeline: starting run", zap.Bool("demo_mode", st.DemoMode))
	for _, s := range stages {
		start := p.now()
		st = s.fn(ctx, st)
		log.Info("pipeline: stage complete",
			zap.String("stage", s.name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.Int("notices", len(st.Notices)),
		)
	}
	log.Info("pipeline: run complete", zap.Int("recommendations", len(st.Final)))

	return st
}

// emergencyState builds the static response served when a stage panics.
// The caller still receives a well-formed, non-empty result.
func emergencyState(st State, cause any) State {
	st.DemoMode = true
	st.Final = fallbackRecommendations()
	for i := range st.Final {
		if st.Final[i].Explanation == "" {
			st.Final[i].Explanation = fallbackExplanation(st.Final[i].DishName)
		}
	}
	return st.withNotice(fmt.Sprintf("System error: %v", cause))
}

// complete issues one rate-limited, deadline-bounded generative-text call.
// A timeout is indistinguishable from any other collaborator failure.
func (p *Pipeline) complete(ctx context.Context, prompt string, maxTokens int64, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Pipeline.CallTimeout())
	defer cancel()

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := p.llm.Complete(ctx, anthropic.CompletionRequest{
		Model:       p.cfg.LLM.Model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
