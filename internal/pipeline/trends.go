package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/llmjson"
	"github.com/platewise/platewise/internal/model"
)

const trendsPrompt = `You are an expert food trend analyst. Analyze current food ordering trends for %s during %s season with %s.

Return ONLY valid JSON in this exact format:
{
  "trending_cuisines": ["cuisine1", "cuisine2", "cuisine3"],
  "weather_foods": ["food1", "food2", "food3"],
  "seasonal_specialties": ["dish1", "dish2", "dish3"],
  "order_patterns": {
    "breakfast": ["item1", "item2"],
    "lunch": ["item1", "item2"],
    "dinner": ["item1", "item2"],
    "snacks": ["item1", "item2"]
  },
  "trending_reasons": {
    "weather": "brief explanation",
    "season": "brief explanation"
  }
}

Focus on realistic, popular food items available in %s. Return ONLY the JSON object, no additional text or commentary.`

// trendRequiredKeys must all appear in the response object; a response
// missing any one of them is discarded whole in favor of the full
// fallback summary.
var trendRequiredKeys = []string{"trending_cuisines", "weather_foods", "seasonal_specialties", "order_patterns"}

// analyzeTrends asks the generative-text collaborator for a trend summary
// scoped to location, season, and the weather gathered upstream.
func (p *Pipeline) analyzeTrends(ctx context.Context, st State) State {
	season := model.SeasonFor(p.now().Month())

	fallback := func(err error) State {
		zap.L().Warn("pipeline: trend analysis failed", zap.String("season", season), zap.Error(err))
		st.Trends = fallbackTrends()
		return st.withNotice("Trend analysis unavailable")
	}

	if st.DemoMode {
		st.Trends = fallbackTrends()
		return st
	}

	weatherDesc := fmt.Sprintf("%s weather, %d°C", st.Weather.Condition, st.Weather.Temperature)
	text, err := p.complete(ctx, fmt.Sprintf(trendsPrompt, st.Location, season, weatherDesc, st.Location), 800, 0.3)
	if err != nil {
		return fallback(err)
	}

	if _, err := llmjson.ObjectKeys(text, trendRequiredKeys...); err != nil {
		return fallback(err)
	}

	var trends model.TrendSummary
	if err := llmjson.Object(text, &trends); err != nil {
		return fallback(err)
	}

	st.Trends = trends
	return st
}
