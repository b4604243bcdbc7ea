package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"clima/internal/config"
	"clima/internal/location"
	"clima/internal/providers/openmeteo"
	"clima/internal/timezone"
	"clima/internal/types"
)

// ForecastDays is today plus the seven days the weekly strip shows
const ForecastDays = 8

var (
	// ErrNetwork is shared with location so callers see one taxonomy
	ErrNetwork           = location.ErrNetwork
	ErrMalformedResponse = fmt.Errorf("%w: malformed forecast response", ErrNetwork)
)

type ForecastProvider interface {
	// GetForecast fetches current, hourly and daily data in the location's own timezone
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	// Fetch makes exactly one forecast request for loc
	Fetch(ctx context.Context, loc types.Location) (*Snapshot, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	logger           *slog.Logger
	now              func() time.Time
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	httpClient := &http.Client{Timeout: cfg.Providers.Timeout}
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(cfg.Providers.ForecastURL, httpClient), tzSvc, logger), nil
}

// NewWeatherServiceWithProvider wires a custom provider. timezoneService may
// be nil, in which case responses without a usable zone are read as UTC.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		logger:           logger.With("component", "weather-service"),
		now:              time.Now,
	}
}

func (s *weatherService) Fetch(ctx context.Context, loc types.Location) (*Snapshot, error) {
	lat, lon := loc.Coordinates.Latitude, loc.Coordinates.Longitude

	apiResponse, err := s.forecastProvider.GetForecast(ctx, lat, lon, ForecastDays)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return nil, fmt.Errorf("%w: failed to get forecast: %w", ErrNetwork, err)
	}

	tz := s.resolveTimezone(apiResponse, loc)

	s.logger.Debug("received forecast",
		"latitude", lat,
		"longitude", lon,
		"timezone", tz.String(),
		"hourly_points", len(apiResponse.Hourly.Time),
		"daily_points", len(apiResponse.Daily.Time),
	)

	snapshot, err := mapForecastAPIResponseToSnapshot(loc, tz, s.now(), apiResponse)
	if err != nil {
		s.logger.Error("failed to map forecast response", "error", err)
		return nil, err
	}

	return snapshot, nil
}

// resolveTimezone picks the zone to read local timestamps in: the one the API
// reported, else the one containing the coordinates, else the reported UTC
// offset.
func (s *weatherService) resolveTimezone(resp *openmeteo.ForecastAPIResponse, loc types.Location) *time.Location {
	if resp.Timezone != "" {
		if tz, err := time.LoadLocation(resp.Timezone); err == nil {
			return tz
		}
		s.logger.Warn("unknown timezone in forecast response", "timezone", resp.Timezone)
	}

	if s.timezoneService != nil {
		tz, err := s.timezoneService.Location(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
		if err == nil {
			return tz
		}
		s.logger.Warn("failed to determine timezone",
			"latitude", loc.Coordinates.Latitude,
			"longitude", loc.Coordinates.Longitude,
			"error", err,
		)
	}

	if resp.UtcOffsetSeconds != 0 {
		return time.FixedZone(resp.TimezoneAbbreviation, resp.UtcOffsetSeconds)
	}
	return time.UTC
}
