package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/platewise/platewise/internal/llmjson"
	"github.com/platewise/platewise/internal/model"
)

const festivalPrompt = `List the major festivals celebrated in %s during %s.
For each festival, provide traditional foods that are commonly ordered online.

Return ONLY valid JSON in this exact format:
{
  "festivals": [
    {
      "name": "festival_name",
      "date_range": "approximate dates",
      "foods": ["food1", "food2", "food3"],
      "popular_orders": ["dish1", "dish2"],
      "significance": "brief description"
    }
  ]
}

Focus only on major festivals that significantly impact food ordering patterns.
If no major festivals in %s, return an empty festivals array.`

// gatherContext resolves the current month, then fetches weather and the
// festival calendar. The two lookups are independent: one failing never
// blocks the other, and each degrades to its own fallback.
func (p *Pipeline) gatherContext(ctx context.Context, st State) State {
	st.Month = p.now().Month().String()

	st = p.fetchWeather(ctx, st)
	st = p.fetchFestivals(ctx, st)

	return st
}

func (p *Pipeline) fetchWeather(ctx context.Context, st State) State {
	if st.DemoMode {
		st.Weather = fallbackWeather(st.Location)
		return st
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.Pipeline.CallTimeout())
	defer cancel()

	obs, err := p.weather.CurrentWeather(callCtx, st.Location)
	if err != nil {
		zap.L().Warn("pipeline: weather lookup failed", zap.String("location", st.Location), zap.Error(err))
		st.Weather = fallbackWeather(st.Location)
		return st.withNotice("Weather data unavailable")
	}

	condition := strings.ToLower(obs.Condition)
	temperature := int(math.Round(obs.Temperature))
	st.Weather = model.Weather{
		Condition:       condition,
		Description:     obs.Description,
		Temperature:     temperature,
		FeelsLike:       int(math.Round(obs.FeelsLike)),
		Humidity:        obs.Humidity,
		City:            obs.City,
		Country:         obs.Country,
		FoodSuggestions: model.FoodSuggestionsFor(condition, temperature),
	}
	return st
}

func (p *Pipeline) fetchFestivals(ctx context.Context, st State) State {
	if st.DemoMode {
		st.Festivals = fallbackFestivals(st.Month)
		return st
	}

	fallback := func(err error) State {
		zap.L().Warn("pipeline: festival lookup failed", zap.String("month", st.Month), zap.Error(err))
		st.Festivals = fallbackFestivals(st.Month)
		return st.withNotice("Festival data unavailable")
	}

	text, err := p.complete(ctx, fmt.Sprintf(festivalPrompt, st.Location, st.Month, st.Month), 600, 0.2)
	if err != nil {
		return fallback(err)
	}

	var parsed struct {
		Festivals []model.Festival `json:"festivals"`
	}
	if err := llmjson.Object(text, &parsed); err != nil {
		return fallback(err)
	}
	if parsed.Festivals == nil {
		parsed.Festivals = []model.Festival{}
	}
	st.Festivals = parsed.Festivals
	return st
}
