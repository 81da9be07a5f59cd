package main

import (
	"github.com/platewise/platewise/internal/deals"
	"github.com/platewise/platewise/internal/pipeline"
	"github.com/platewise/platewise/pkg/anthropic"
	"github.com/platewise/platewise/pkg/openweather"
)

// buildPipelines constructs both pipelines with their collaborator
// clients. In demo mode the clients are never called, so empty
// credentials are harmless.
func buildPipelines() (*pipeline.Pipeline, *deals.Pipeline) {
	llm := anthropic.NewClient(cfg.LLM.Key)

	var weatherOpts []openweather.Option
	if cfg.Weather.BaseURL != "" {
		weatherOpts = append(weatherOpts, openweather.WithBaseURL(cfg.Weather.BaseURL))
	}
	weather := openweather.NewClient(cfg.Weather.Key, weatherOpts...)

	return pipeline.New(cfg, llm, weather), deals.New(cfg, llm)
}
