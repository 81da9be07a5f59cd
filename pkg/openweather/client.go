// Package openweather fetches current weather from the OpenWeatherMap
// API. Callers treat it as a black box returning a structured observation
// or an error.
package openweather

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

const defaultBaseURL = "http://api.openweathermap.org/data/2.5"

// Client fetches the current weather for a location.
type Client interface {
	CurrentWeather(ctx context.Context, location string) (*Observation, error)
}

// Observation is the current weather at a location, in metric units.
type Observation struct {
	Condition   string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	City        string
	Country     string
}

// apiResponse mirrors the subset of the /weather payload we read.
type apiResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates an OpenWeatherMap API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CurrentWeather(ctx context.Context, location string) (*Observation, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "openweather: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "openweather: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "openweather: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("openweather: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, eris.Wrap(err, "openweather: unmarshal response")
	}
	if len(payload.Weather) == 0 {
		return nil, eris.New("openweather: response missing weather block")
	}

	return &Observation{
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		City:        payload.Name,
		Country:     payload.Sys.Country,
	}, nil
}
