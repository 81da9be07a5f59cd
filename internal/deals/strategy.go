package deals

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/llmjson"
	"github.com/platewise/platewise/pkg/anthropic"
)

const strategyPrompt = `Analyze these restaurant opportunities:
%s

Current time: %s

Suggest creative deals in JSON format with these keys:
- "critical" (list of restaurant names that need attention)
- "creative_deals" (list of deal ideas with 'type', 'target', 'rationale')
- "marketing" (list of marketing angle ideas)`

// strategicAnalysis asks the generative-text collaborator to augment the
// rule-detected opportunities. Any call or parse failure leaves all three
// insight lists empty; the pipeline proceeds with zero augmentation.
func (p *Pipeline) strategicAnalysis(ctx context.Context, st State) State {
	if st.DemoMode {
		return st
	}

	fallback := func(err error) State {
		zap.L().Warn("deals: strategic analysis failed", zap.Error(err))
		st.Insights = Insights{}
		return st.withNotice("Strategic analysis unavailable")
	}

	var summary strings.Builder
	for _, o := range st.Opportunities {
		fmt.Fprintf(&summary, "%s: %s (urgency: %s)\n", o.RestaurantName, o.Type, o.Urgency)
	}

	prompt := fmt.Sprintf(strategyPrompt, summary.String(), st.ObservedAt.Format("15:04"))

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.Pipeline.CallTimeout())
	defer cancel()

	if err := p.limiter.Wait(callCtx); err != nil {
		return fallback(err)
	}
	resp, err := p.llm.Complete(callCtx, anthropic.CompletionRequest{
		Model:       p.cfg.LLM.Model,
		Prompt:      prompt,
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		return fallback(err)
	}

	insights, err := parseInsights(resp.Text)
	if err != nil {
		return fallback(err)
	}

	st.Insights = insights
	return st
}

// parseInsights extracts the strategy object from completion text.
// creative_deals entries are validated individually: only mappings that
// carry a target survive, so one junk entry cannot discard the rest.
func parseInsights(text string) (Insights, error) {
	var raw struct {
		Critical  []string          `json:"critical"`
		Creative  []json.RawMessage `json:"creative_deals"`
		Marketing []string          `json:"marketing"`
	}
	if err := llmjson.Object(text, &raw); err != nil {
		return Insights{}, err
	}

	insights := Insights{
		Critical:  raw.Critical,
		Marketing: raw.Marketing,
	}
	for _, entry := range raw.Creative {
		var idea CreativeDeal
		if err := json.Unmarshal(entry, &idea); err != nil || idea.Target == "" {
			continue
		}
		insights.Creative = append(insights.Creative, idea)
	}
	return insights, nil
}
