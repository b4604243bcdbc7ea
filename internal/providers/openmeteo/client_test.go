package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const forecastJSON = `{
  "latitude": -23.5,
  "longitude": -46.625,
  "timezone": "America/Sao_Paulo",
  "current": {"time": "2025-10-17T15:00", "temperature_2m": 24.6, "relative_humidity_2m": 61, "apparent_temperature": 25.2, "weather_code": 2, "wind_speed_10m": 11.3, "rain": 0, "showers": 0.4},
  "hourly": {"time": ["2025-10-17T00:00", "2025-10-17T01:00"], "temperature_2m": [18.1, 17.6], "weather_code": [1, 3], "rain": [0, 0.2], "showers": [0, null]},
  "daily": {"time": ["2025-10-17"], "weather_code": [61], "temperature_2m_max": [26.4], "temperature_2m_min": [16.2], "sunrise": ["2025-10-17T05:38"], "sunset": ["2025-10-17T18:12"], "rain_sum": [3.1]}
}`

func TestForecastClient_GetForecast(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastJSON))
	}))
	defer server.Close()

	client := NewForecastClient(server.URL+"/v1", server.Client())

	resp, err := client.GetForecast(context.Background(), -23.5505, -46.6333, 8)
	if err != nil {
		t.Fatalf("GetForecast() unexpected error = %v", err)
	}

	if gotPath != "/v1/forecast" {
		t.Errorf("path = %q, want %q", gotPath, "/v1/forecast")
	}

	wantQuery := map[string]string{
		"latitude":      "-23.550500",
		"longitude":     "-46.633300",
		"current":       strings.Join(CurrentVars, ","),
		"hourly":        strings.Join(HourlyVars, ","),
		"daily":         strings.Join(DailyVars, ","),
		"timezone":      "auto",
		"forecast_days": "8",
	}
	for k, want := range wantQuery {
		if gotQuery[k] != want {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], want)
		}
	}

	if resp.Timezone != "America/Sao_Paulo" {
		t.Errorf("Timezone = %q", resp.Timezone)
	}
	if resp.Current.Temperature2M != 24.6 || resp.Current.Showers != 0.4 || resp.Current.WeatherCode != 2 {
		t.Errorf("Current = %+v", resp.Current)
	}
	if len(resp.Hourly.Time) != 2 || resp.Hourly.Showers[1] != 0 {
		t.Errorf("Hourly = %+v", resp.Hourly)
	}
	if resp.Daily.Sunrise[0] != "2025-10-17T05:38" || resp.Daily.RainSum[0] != 3.1 {
		t.Errorf("Daily = %+v", resp.Daily)
	}
}

func TestForecastClient_GetForecast_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{"server error", http.StatusInternalServerError, `{"error":true}`, "fetch returned status 500"},
		{"bad request", http.StatusBadRequest, `{"reason":"Latitude must be in range"}`, "Latitude must be in range"},
		{"malformed body", http.StatusOK, `{"current": [`, "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewForecastClient(server.URL, server.Client())
			_, err := client.GetForecast(context.Background(), 0, 0, 8)
			if err == nil {
				t.Fatal("GetForecast() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("GetForecast() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestForecastClient_GetForecast_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewForecastClient(url, nil)
	_, err := client.GetForecast(context.Background(), 0, 0, 8)
	if err == nil || !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("GetForecast() error = %v, want transport failure", err)
	}
}

func TestGeocodingClient_Search(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"results":[{"id":2267057,"name":"Lisboa","latitude":38.71667,"longitude":-9.13333,"country":"Portugal","country_code":"PT","admin1":"Lisboa"}]}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, server.Client())
	resp, err := client.Search(context.Background(), "Lisboa", 1, "pt")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}

	if gotQuery != "count=1&language=pt&name=Lisboa" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(resp.Results) != 1 || resp.Results[0].Country != "Portugal" {
		t.Errorf("Results = %+v", resp.Results)
	}
}

func TestGeocodingClient_SearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, server.Client())
	resp, err := client.Search(context.Background(), "Nonexistent City XYZ", 1, "en")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Results = %+v, want none", resp.Results)
	}
}

func TestGeocodingClient_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantErr  error
	}{
		{
			name:     "nearest place",
			body:     `{"results":[{"name":"São Paulo","country":"Brasil","country_code":"BR","admin1":"São Paulo"}]}`,
			wantName: "São Paulo",
		},
		{
			name:    "nothing nearby",
			body:    `{"results":[]}`,
			wantErr: ErrNoResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/reverse" {
					t.Errorf("path = %q, want /reverse", r.URL.Path)
				}
				if r.URL.Query().Get("latitude") != "-23.550500" {
					t.Errorf("latitude = %q", r.URL.Query().Get("latitude"))
				}
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewGeocodingClient(server.URL, server.Client())
			info, err := client.ReverseGeocode(context.Background(), -23.5505, -46.6333, "pt")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReverseGeocode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReverseGeocode() unexpected error = %v", err)
			}
			if info.Name != tt.wantName || info.Label() != "São Paulo, Brasil" {
				t.Errorf("ReverseGeocode() = %+v", info)
			}
		})
	}
}
