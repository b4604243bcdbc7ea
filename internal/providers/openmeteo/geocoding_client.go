package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"clima/internal/types"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample requests:
// - https://geocoding-api.open-meteo.com/v1/search?name=Lisboa&count=1&language=pt
// - https://geocoding-api.open-meteo.com/v1/reverse?latitude=-23.55&longitude=-46.63&language=pt
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1"
)

// ErrNoResults is returned by ReverseGeocode when no place matched
var ErrNoResults = errors.New("geocoding returned no results")

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGeocodingClient creates a client for the geocoding API rooted at baseURL
// (the default public endpoint when empty).
func NewGeocodingClient(baseURL string, httpClient *http.Client) *GeocodingClient {
	if baseURL == "" {
		baseURL = baseGeocodingURL
	}
	return &GeocodingClient{
		httpClient: newHTTPClient(httpClient),
		baseURL:    baseURL,
	}
}

// Search looks up places by name
func (c *GeocodingClient) Search(ctx context.Context, name string, count int, language string) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("search")

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", language)
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// Reverse looks up the places nearest to a coordinate
func (c *GeocodingClient) Reverse(ctx context.Context, latitude, longitude float64, language string) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("reverse")

	q := u.Query()
	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("language", language)
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// ReverseGeocode returns the nearest place to a coordinate
func (c *GeocodingClient) ReverseGeocode(ctx context.Context, latitude, longitude float64, language string) (types.LocationInfo, error) {
	resp, err := c.Reverse(ctx, latitude, longitude, language)
	if err != nil {
		return types.LocationInfo{}, err
	}
	if len(resp.Results) == 0 {
		return types.LocationInfo{}, ErrNoResults
	}

	return resp.Results[0].LocationInfo(), nil
}

// LocationInfo converts a result to domain LocationInfo
func (r GeocodingResult) LocationInfo() types.LocationInfo {
	return types.LocationInfo{
		Name:        r.Name,
		State:       r.Admin1,
		Country:     r.Country,
		CountryCode: r.CountryCode,
	}
}
