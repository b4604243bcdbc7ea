package ipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"clima/internal/types"
)

// API Docs: https://ipapi.co/api/#complete-location
// Sample request: https://ipapi.co/json/
const (
	baseURL = "https://ipapi.co/json/"
)

// ErrPositionUnknown is returned when the service cannot place the caller
var ErrPositionUnknown = errors.New("ip geolocation returned no position")

type LookupAPIResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
}

// Client places the host by its public IP address. It stands in for a
// device position sensor on machines that have none.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = baseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
	}
}

func (c *Client) Lookup(ctx context.Context) (*LookupAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

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

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Error {
		return nil, fmt.Errorf("%w: %s", ErrPositionUnknown, apiResp.Reason)
	}

	return &apiResp, nil
}

// CurrentPosition returns the approximate coordinates of the host
func (c *Client) CurrentPosition(ctx context.Context) (types.Coords, error) {
	resp, err := c.Lookup(ctx)
	if err != nil {
		return types.Coords{}, err
	}
	if resp.Latitude == 0 && resp.Longitude == 0 {
		return types.Coords{}, ErrPositionUnknown
	}
	return types.NewCoords(resp.Latitude, resp.Longitude), nil
}
