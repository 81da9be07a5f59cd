package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Weather  WeatherConfig  `yaml:"weather" mapstructure:"weather"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// LLMConfig holds generative-text backend settings.
type LLMConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
	// RatePerSec caps completion calls per second; Burst is the limiter
	// bucket size.
	RatePerSec float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst      int     `yaml:"burst" mapstructure:"burst"`
}

// WeatherConfig holds OpenWeatherMap API settings.
type WeatherConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// PipelineConfig configures run behavior shared by both pipelines.
type PipelineConfig struct {
	// CallTimeoutSecs bounds every collaborator call; a timeout degrades
	// to fallback like any other failure.
	CallTimeoutSecs    int    `yaml:"call_timeout_secs" mapstructure:"call_timeout_secs"`
	ExplainConcurrency int    `yaml:"explain_concurrency" mapstructure:"explain_concurrency"`
	DefaultLocation    string `yaml:"default_location" mapstructure:"default_location"`
}

// CallTimeout returns the collaborator call timeout as a duration.
func (p PipelineConfig) CallTimeout() time.Duration {
	return time.Duration(p.CallTimeoutSecs) * time.Second
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DemoMode reports whether the system runs without live collaborators.
// Missing either credential flips the whole system into demo mode: all
// collaborator calls are skipped and fallback data served unconditionally.
func (c *Config) DemoMode() bool {
	return c.LLM.Key == "" || c.Weather.Key == ""
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PLATEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("llm.model", "claude-haiku-4-5-20251001")
	v.SetDefault("llm.rate_per_sec", 5.0)
	v.SetDefault("llm.burst", 5)
	v.SetDefault("pipeline.call_timeout_secs", 15)
	v.SetDefault("pipeline.explain_concurrency", 5)
	v.SetDefault("pipeline.default_location", "Mumbai")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
