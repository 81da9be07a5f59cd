// Package deals implements the staged deal pipeline: snapshot inventory,
// detect opportunities, strategic analysis, synthesize deals, personalize
// and rank. Like the recommendation pipeline it is a fixed linear saga;
// the only collaborator (strategic analysis) degrades to an empty insight
// set rather than failing the run.
package deals

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/platewise/platewise/internal/config"
	"github.com/platewise/platewise/internal/model"
	"github.com/platewise/platewise/pkg/anthropic"
)

// Request carries caller preferences into a run.
type Request struct {
	Cuisine  string
	Location string
}

// CreativeDeal is one strategy-sourced deal idea.
type CreativeDeal struct {
	Type      string `json:"type"`
	Target    string `json:"target"`
	Rationale string `json:"rationale"`
}

// Insights is the strategic-analysis output. All fields default to empty:
// a failed analysis means zero augmentation, never a failed run.
type Insights struct {
	Critical  []string       `json:"critical"`
	Creative  []CreativeDeal `json:"creative_deals"`
	Marketing []string       `json:"marketing"`
}

// State is the run record threaded through the deal pipeline. Stages
// receive it by value and return an updated copy.
type State struct {
	RunID      string
	Request    Request
	ObservedAt time.Time
	DemoMode   bool

	Restaurants   []model.Restaurant
	Opportunities []model.Opportunity
	Insights      Insights
	Deals         []model.Deal
	Final         []model.Deal

	Notices []string
}

func (s State) withNotice(msg string) State {
	s.Notices = append(s.Notices, msg)
	return s
}

// Pipeline orchestrates one deal run per call. Safe for concurrent use.
type Pipeline struct {
	cfg     *config.Config
	llm     anthropic.Client
	limiter *rate.Limiter
	now     func() time.Time
	// tiebreak supplies ranking randomness; injected so tests can pin ties.
	tiebreak func() float64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock injects the wall clock.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithTiebreak injects the ranking randomness source.
func WithTiebreak(fn func() float64) Option {
	return func(p *Pipeline) {
		p.tiebreak = fn
	}
}

// New creates a Pipeline with its collaborators.
func New(cfg *config.Config, llm anthropic.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		llm:      llm,
		limiter:  rate.NewLimiter(rate.Limit(cfg.LLM.RatePerSec), cfg.LLM.Burst),
		now:      time.Now,
		tiebreak: rand.Float64,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type stage struct {
	name string
	fn   func(ctx context.Context, st State) State
}

// Run executes the full deal pipeline for one request and returns the
// final state. An internal defect is recovered into an emergency empty
// result rather than a panic.
func (p *Pipeline) Run(ctx context.Context, req Request) (final State) {
	st := State{
		RunID:    uuid.NewString(),
		Request:  req,
		DemoMode: p.cfg.DemoMode(),
	}

	log := zap.L().With(zap.String("run_id", st.RunID), zap.String("cuisine", req.Cuisine))

	defer func() {
		if r := recover(); r != nil {
			log.Error("deals: internal defect, serving emergency result", zap.Any("panic", r))
			final = emergencyState(st, r)
		}
	}()

	stages := []stage{
		{"snapshot_inventory", p.snapshotInventory},
		{"detect_opportunities", p.detectOpportunities},
		{"strategic_analysis", p.strategicAnalysis},
		{"synthesize_deals", p.synthesizeDeals},
		{"personalize_and_rank", p.personalizeAndRank},
	}

	log.Info("deals: starting run", zap.Bool("demo_mode", st.DemoMode))
	for _, s := range stages {
		start := time.Now()
		st = s.fn(ctx, st)
		log.Info("deals: stage complete",
			zap.String("stage", s.name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
	log.Info("deals: run complete", zap.Int("deals", len(st.Final)))

	return st
}

// emergencyState is the static response served when a stage panics: a
// well-formed empty deal set, never a crash.
func emergencyState(st State, cause any) State {
	st.DemoMode = true
	st.Final = []model.Deal{}
	return st.withNotice(fmt.Sprintf("System error: %v", cause))
}

// snapshotInventory loads the static roster and stamps the invocation
// time. Pure in-memory read; an unparseable roster is an internal defect,
// not a collaborator failure, so it propagates to the recover wrapper.
func (p *Pipeline) snapshotInventory(_ context.Context, st State) State {
	restaurants, err := Roster()
	if err != nil {
		panic(fmt.Sprintf("deals: load roster: %v", err))
	}
	st.Restaurants = restaurants
	st.ObservedAt = p.now()
	return st
}
