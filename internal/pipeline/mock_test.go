package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platewise/platewise/internal/config"
	"github.com/platewise/platewise/pkg/anthropic"
	"github.com/platewise/platewise/pkg/openweather"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Complete(ctx context.Context, req anthropic.CompletionRequest) (*anthropic.Completion, error) {
	args := m.Called(ctx, req)
	if c := args.Get(0); c != nil {
		return c.(*anthropic.Completion), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockWeather struct {
	mock.Mock
}

func (m *mockWeather) CurrentWeather(ctx context.Context, location string) (*openweather.Observation, error) {
	args := m.Called(ctx, location)
	if o := args.Get(0); o != nil {
		return o.(*openweather.Observation), args.Error(1)
	}
	return nil, args.Error(1)
}

func demoConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Model:      "claude-haiku-4-5-20251001",
			RatePerSec: 100,
			Burst:      10,
		},
		Pipeline: config.PipelineConfig{
			CallTimeoutSecs:    5,
			ExplainConcurrency: 5,
			DefaultLocation:    "Mumbai",
		},
	}
}

func liveConfig() *config.Config {
	cfg := demoConfig()
	cfg.LLM.Key = "test-llm-key"
	cfg.Weather.Key = "test-weather-key"
	return cfg
}
