package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"clima/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=-23.55&lon=-46.63&format=json&accept-language=pt
const (
	baseURL          = "https://nominatim.openstreetmap.org/reverse"
	defaultUserAgent = "clima/1.0"
)

// ErrNoResults is returned when Nominatim has no place for the coordinate
var ErrNoResults = errors.New("nominatim returned no place")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a Nominatim reverse-geocoding client. Nominatim's usage
// policy requires an identifying User-Agent.
func NewClient(endpoint, userAgent string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = baseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		userAgent:  userAgent,
	}
}

func (c *Client) Lookup(ctx context.Context, latitude, longitude float64, language string) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	if language != "" {
		q.Set("accept-language", language)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Nominatim answers 200 with {"error": "..."} for points in the ocean
	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResults, apiResp.Error)
	}

	return &apiResp, nil
}

// ReverseGeocode returns the place at a coordinate as domain LocationInfo
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64, language string) (types.LocationInfo, error) {
	resp, err := c.Lookup(ctx, latitude, longitude, language)
	if err != nil {
		return types.LocationInfo{}, err
	}
	return translateLocationInfo(resp), nil
}

// translateLocationInfo converts a Nominatim reverse lookup response to domain LocationInfo
func translateLocationInfo(resp *LookupAPIResponse) types.LocationInfo {
	// Prefer the settlement name, then the feature name, then the full display name
	name := resp.Address.City
	if name == "" {
		name = resp.Address.Town
	}
	if name == "" {
		name = resp.Address.Village
	}
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}
