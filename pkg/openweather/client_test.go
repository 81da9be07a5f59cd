package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeather(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"weather": [{"main": "Rain", "description": "light rain"}],
				"main": {"temp": 27.6, "feels_like": 30.4, "humidity": 85},
				"sys": {"country": "IN"},
				"name": "Mumbai"
			}`,
		},
		{
			name:    "bad_api_key",
			status:  http.StatusUnauthorized,
			body:    `{"cod": 401, "message": "Invalid API key"}`,
			wantErr: "unexpected status 401",
		},
		{
			name:    "city_not_found",
			status:  http.StatusNotFound,
			body:    `{"cod": "404", "message": "city not found"}`,
			wantErr: "unexpected status 404",
		},
		{
			name:    "malformed_response",
			status:  http.StatusOK,
			body:    `{invalid json`,
			wantErr: "unmarshal response",
		},
		{
			name:    "missing_weather_block",
			status:  http.StatusOK,
			body:    `{"main": {"temp": 20}, "name": "Mumbai"}`,
			wantErr: "missing weather block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/weather", r.URL.Path)
				assert.Equal(t, "Mumbai", r.URL.Query().Get("q"))
				assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
				assert.Equal(t, "metric", r.URL.Query().Get("units"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))
			obs, err := client.CurrentWeather(context.Background(), "Mumbai")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, obs)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, obs)
			assert.Equal(t, "Rain", obs.Condition)
			assert.Equal(t, "light rain", obs.Description)
			assert.Equal(t, 27.6, obs.Temperature)
			assert.Equal(t, 85, obs.Humidity)
			assert.Equal(t, "Mumbai", obs.City)
			assert.Equal(t, "IN", obs.Country)
		})
	}
}

func TestCurrentWeatherContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CurrentWeather(ctx, "Mumbai")
	require.Error(t, err)
}
