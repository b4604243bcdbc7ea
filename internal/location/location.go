package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"clima/internal/config"
	"clima/internal/i18n"
	"clima/internal/providers/ipapi"
	"clima/internal/providers/openmeteo"
	"clima/internal/providers/openstreetmap"
	"clima/internal/types"
)

var (
	ErrCityNotFound           = errors.New("city not found")
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	ErrGeolocationDenied      = errors.New("geolocation denied")
	ErrOutOfRange             = errors.New("coordinates out of range")
	ErrNetwork                = errors.New("network error")

	ErrInvalidLatitude  = fmt.Errorf("%w: latitude must be between -90 and 90", ErrOutOfRange)
	ErrInvalidLongitude = fmt.Errorf("%w: longitude must be between -180 and 180", ErrOutOfRange)
)

// Service turns a place name, the device position or raw coordinates into a Location
type Service interface {
	// ResolveByName geocodes a city name, asking for a single result
	ResolveByName(ctx context.Context, city, language string) (types.Location, error)
	// ResolveByDevice reads the device position and names it when possible
	ResolveByDevice(ctx context.Context, language string) (types.Location, error)
	// ResolveByCoordinates validates coordinates without touching the network
	ResolveByCoordinates(latitude, longitude float64) (types.Location, error)
	// Fallback is the location used when the device position is not available
	Fallback() types.Location
}

// GeocodeProvider defines the interface for place name search providers
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int, language string) (*openmeteo.GeocodingAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for coordinate to place providers
type ReverseGeocodeProvider interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64, language string) (types.LocationInfo, error)
}

// PositionSensor reports where the device is
type PositionSensor interface {
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// StaticSensor always reports the same position
type StaticSensor types.Coords

func (s StaticSensor) CurrentPosition(context.Context) (types.Coords, error) {
	return types.Coords(s), nil
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	reverseProvider ReverseGeocodeProvider
	sensor          PositionSensor
	fallback        types.Location
	logger          *slog.Logger
}

// NewLocationService creates a location service with real provider clients
// chosen by configuration
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	httpClient := &http.Client{Timeout: cfg.Providers.Timeout}
	geocoder := openmeteo.NewGeocodingClient(cfg.Providers.GeocodingURL, httpClient)

	var reverse ReverseGeocodeProvider = geocoder
	if strings.EqualFold(cfg.Providers.ReverseGeocoder, "nominatim") {
		reverse = openstreetmap.NewClient(cfg.Providers.NominatimURL, cfg.Providers.UserAgent, httpClient)
	}

	var sensor PositionSensor
	switch strings.ToLower(cfg.Device.Mode) {
	case "ip":
		sensor = ipapi.NewClient(cfg.Device.IPLookupURL, httpClient)
	case "static":
		sensor = StaticSensor(types.NewCoords(cfg.Device.Latitude, cfg.Device.Longitude))
	default:
		// no sensor: ResolveByDevice reports ErrGeolocationUnavailable
	}

	fallback := types.NewLocation(cfg.App.FallbackLatitude, cfg.App.FallbackLongitude, "")

	return NewLocationServiceWithProviders(geocoder, reverse, sensor, fallback, logger)
}

// NewLocationServiceWithProviders creates a new location service with custom providers.
// A nil sensor means the device has no position capability; a nil reverse
// provider skips naming device positions.
func NewLocationServiceWithProviders(
	geocodeProvider GeocodeProvider,
	reverseProvider ReverseGeocodeProvider,
	sensor PositionSensor,
	fallback types.Location,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		reverseProvider: reverseProvider,
		sensor:          sensor,
		fallback:        fallback,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolveByName(ctx context.Context, city, language string) (types.Location, error) {
	resp, err := s.geocodeProvider.Search(ctx, city, 1, geocoderLanguage(language))
	if err != nil {
		s.logger.Error("failed to search city", "city", city, "error", err)
		return types.Location{}, fmt.Errorf("%w: failed to search city: %w", ErrNetwork, err)
	}

	if resp == nil || len(resp.Results) == 0 {
		s.logger.Debug("city not found", "city", city)
		return types.Location{}, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}

	result := resp.Results[0]
	return types.NewLocation(result.Latitude, result.Longitude, result.LocationInfo().Label()), nil
}

func (s *locationService) ResolveByDevice(ctx context.Context, language string) (types.Location, error) {
	if s.sensor == nil {
		return types.Location{}, ErrGeolocationUnavailable
	}

	coords, err := s.sensor.CurrentPosition(ctx)
	if err != nil {
		s.logger.Warn("device position not available", "error", err)
		return types.Location{}, fmt.Errorf("%w: %w", ErrGeolocationDenied, err)
	}

	loc, err := s.ResolveByCoordinates(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("device reported invalid position", "coordinates", coords.String(), "error", err)
		return types.Location{}, fmt.Errorf("%w: %w", ErrGeolocationDenied, err)
	}

	loc.DisplayName = s.reverseLookup(ctx, coords, language)
	return loc, nil
}

// reverseLookup names a coordinate, returning "" on any failure
func (s *locationService) reverseLookup(ctx context.Context, coords types.Coords, language string) string {
	if s.reverseProvider == nil {
		return ""
	}

	info, err := s.reverseProvider.ReverseGeocode(ctx, coords.Latitude, coords.Longitude, geocoderLanguage(language))
	if err != nil {
		s.logger.Debug("reverse geocoding failed", "coordinates", coords.String(), "error", err)
		return ""
	}
	return info.Label()
}

func (s *locationService) ResolveByCoordinates(latitude, longitude float64) (types.Location, error) {
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return types.Location{}, err
	}
	return types.NewLocation(latitude, longitude, ""), nil
}

func (s *locationService) Fallback() types.Location {
	return s.fallback
}

// ValidateCoordinates checks the inclusive latitude and longitude ranges
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// geocoderLanguage reduces a UI language tag to the two-letter code the
// geocoding services understand
func geocoderLanguage(tag string) string {
	base, _, _ := strings.Cut(i18n.Normalize(tag), "-")
	return base
}
