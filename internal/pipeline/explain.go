package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/platewise/platewise/internal/model"
)

const explainPrompt = `Explain why we recommended "%s" to the user.

Context:
- Weather: %s
- Location: %s
- Current trends: %s
- Festivals: %s

Provide a friendly, 1-2 sentence explanation that helps the user understand
why this food item is perfect for them right now.

Start with "Perfect choice because" and keep it conversational and specific.`

// annotateExplanations attaches a justification to every recommendation.
// Items fan out concurrently and are reassembled by index, so completion
// order never reorders the list. A failed or empty explanation falls back
// to the dish template without touching its siblings.
func (p *Pipeline) annotateExplanations(ctx context.Context, st State) State {
	final := make([]model.Recommendation, len(st.Recommendations))
	copy(final, st.Recommendations)

	if st.DemoMode {
		for i := range final {
			final[i].Explanation = fallbackExplanation(final[i].DishName)
		}
		st.Final = final
		return st
	}

	festivalNames := make([]string, 0, len(st.Festivals))
	for _, f := range st.Festivals {
		festivalNames = append(festivalNames, f.Name)
	}
	trendList := strings.Join(st.Trends.TrendingCuisines, ", ")
	festivalList := strings.Join(festivalNames, ", ")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Pipeline.ExplainConcurrency)

	for i := range final {
		g.Go(func() error {
			rec := &final[i]
			prompt := fmt.Sprintf(explainPrompt,
				rec.DishName, st.Weather.Description, st.Location, trendList, festivalList)

			text, err := p.complete(gCtx, prompt, 150, 0.3)
			if err != nil || strings.TrimSpace(text) == "" {
				if err != nil {
					zap.L().Warn("pipeline: explanation failed",
						zap.String("dish", rec.DishName), zap.Error(err))
				}
				rec.Explanation = fallbackExplanation(rec.DishName)
				return nil
			}
			rec.Explanation = strings.TrimSpace(text)
			return nil
		})
	}
	// Per-item failures are absorbed above; Wait only orders completion.
	_ = g.Wait()

	st.Final = final
	return st
}
