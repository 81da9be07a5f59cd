package pipeline

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/llmjson"
	"github.com/platewise/platewise/internal/model"
)

const recommendPrompt = `You are an expert food recommendation system. Generate 5 personalized food recommendations for %s based on:

Weather: %s, %d°C
Current trends: %s
Festivals: %s
Time: %s

Return ONLY a valid JSON array in this exact format:
[
  {
    "dish_name": "specific dish name",
    "cuisine": "cuisine type",
    "reason": "why this recommendation fits the context",
    "confidence": 0.85,
    "tags": ["tag1", "tag2", "tag3"],
    "price_range": "budget/mid/premium",
    "meal_type": "breakfast/lunch/dinner/snack"
  }
]

Make recommendations specific, realistic, and available for food delivery. Consider weather, local preferences, and current trends. Return ONLY the JSON array, no additional text or commentary.`

// generateRecommendations asks for a ranked dish list grounded in the
// accumulated context. Anything short of a parseable non-empty array is
// replaced by the fixed fallback list.
func (p *Pipeline) generateRecommendations(ctx context.Context, st State) State {
	fallback := func(err error) State {
		zap.L().Warn("pipeline: recommendation generation failed", zap.Error(err))
		st.Recommendations = fallbackRecommendations()
		return st.withNotice("AI recommendations unavailable")
	}

	if st.DemoMode {
		st.Recommendations = fallbackRecommendations()
		return st
	}

	timeOfDay := model.TimeOfDayFor(p.now().Hour())
	trendsJSON, _ := json.Marshal(st.Trends)
	festivalsJSON, _ := json.Marshal(st.Festivals)

	prompt := fmt.Sprintf(recommendPrompt,
		st.Location,
		st.Weather.Description, st.Weather.Temperature,
		string(trendsJSON),
		string(festivalsJSON),
		timeOfDay,
	)

	text, err := p.complete(ctx, prompt, 1000, 0.4)
	if err != nil {
		return fallback(err)
	}

	var recs []model.Recommendation
	if err := llmjson.Array(text, &recs); err != nil {
		return fallback(err)
	}
	if len(recs) == 0 {
		return fallback(fmt.Errorf("empty recommendations array"))
	}

	for i := range recs {
		recs[i].ClampConfidence()
	}
	st.Recommendations = recs
	return st
}
