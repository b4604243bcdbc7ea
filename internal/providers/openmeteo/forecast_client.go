package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=-23.55&longitude=-46.63&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,rain,showers&hourly=temperature_2m,weather_code,rain,showers&daily=weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,rain_sum&timezone=auto&forecast_days=8
const (
	baseForecastURL = "https://api.open-meteo.com/v1"
)

var (
	CurrentVars = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
		"rain",
		"showers",
	}

	HourlyVars = []string{
		"temperature_2m",
		"weather_code",
		"rain",
		"showers",
	}

	DailyVars = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"sunrise",
		"sunset",
		"rain_sum",
	}
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewForecastClient creates a client for the forecast API rooted at baseURL
// (the default public endpoint when empty).
func NewForecastClient(baseURL string, httpClient *http.Client) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: newHTTPClient(httpClient),
		baseURL:    baseURL,
	}
}

// GetForecast fetches current, hourly and daily data for the given coordinates
// in the location's own timezone. It makes exactly one request.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("forecast")

	q := u.Query()

	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("current", strings.Join(CurrentVars, ","))
	q.Set("hourly", strings.Join(HourlyVars, ","))
	q.Set("daily", strings.Join(DailyVars, ","))

	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
