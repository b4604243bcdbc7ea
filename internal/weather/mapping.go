package weather

import (
	"fmt"
	"time"

	"clima/internal/providers/openmeteo"
	"clima/internal/types"
)

const (
	minuteLayout = "2006-01-02T15:04"
	dayLayout    = "2006-01-02"
)

func mapForecastAPIResponseToSnapshot(loc types.Location, tz *time.Location, fetchedAt time.Time, apiResponse *openmeteo.ForecastAPIResponse) (*Snapshot, error) {
	if apiResponse == nil {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	current := apiResponse.Current
	currentTime, err := toTime(current.Time, minuteLayout, tz)
	if err != nil {
		return nil, fmt.Errorf("%w: current time: %w", ErrMalformedResponse, err)
	}

	hourly, err := mapHourly(apiResponse, tz)
	if err != nil {
		return nil, err
	}

	daily, err := mapDaily(apiResponse, tz)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Location: loc,
		Timezone: tz.String(),
		Current: CurrentReading{
			Time:                currentTime,
			Temperature:         current.Temperature2M,
			ApparentTemperature: current.ApparentTemperature,
			RelativeHumidity:    current.RelativeHumidity2M,
			WindSpeed:           current.WindSpeed10M,
			WeatherCode:         current.WeatherCode,
			Rain:                current.Rain,
			Showers:             current.Showers,
		},
		Hourly:    hourly,
		Daily:     daily,
		FetchedAt: fetchedAt.In(tz),
	}, nil
}

func mapHourly(apiResponse *openmeteo.ForecastAPIResponse, tz *time.Location) (HourlySeries, error) {
	h := apiResponse.Hourly
	n := len(h.Time)

	if err := checkLengths("hourly", n, map[string]int{
		"temperature_2m": len(h.Temperature2M),
		"weather_code":   len(h.WeatherCode),
		"rain":           len(h.Rain),
		"showers":        len(h.Showers),
	}); err != nil {
		return HourlySeries{}, err
	}

	times, err := toTimes(h.Time, minuteLayout, tz)
	if err != nil {
		return HourlySeries{}, fmt.Errorf("%w: hourly time: %w", ErrMalformedResponse, err)
	}

	return HourlySeries{
		Time:        times,
		Temperature: h.Temperature2M,
		WeatherCode: h.WeatherCode,
		Rain:        h.Rain,
		Showers:     h.Showers,
	}, nil
}

func mapDaily(apiResponse *openmeteo.ForecastAPIResponse, tz *time.Location) (DailySeries, error) {
	d := apiResponse.Daily
	n := len(d.Time)

	if err := checkLengths("daily", n, map[string]int{
		"weather_code":       len(d.WeatherCode),
		"temperature_2m_max": len(d.Temperature2MMax),
		"temperature_2m_min": len(d.Temperature2MMin),
		"sunrise":            len(d.Sunrise),
		"sunset":             len(d.Sunset),
		"rain_sum":           len(d.RainSum),
	}); err != nil {
		return DailySeries{}, err
	}

	days, err := toTimes(d.Time, dayLayout, tz)
	if err != nil {
		return DailySeries{}, fmt.Errorf("%w: daily time: %w", ErrMalformedResponse, err)
	}
	sunrise, err := toTimes(d.Sunrise, minuteLayout, tz)
	if err != nil {
		return DailySeries{}, fmt.Errorf("%w: sunrise: %w", ErrMalformedResponse, err)
	}
	sunset, err := toTimes(d.Sunset, minuteLayout, tz)
	if err != nil {
		return DailySeries{}, fmt.Errorf("%w: sunset: %w", ErrMalformedResponse, err)
	}

	return DailySeries{
		Time:           days,
		WeatherCode:    d.WeatherCode,
		TemperatureMax: d.Temperature2MMax,
		TemperatureMin: d.Temperature2MMin,
		Sunrise:        sunrise,
		Sunset:         sunset,
		RainSum:        d.RainSum,
	}, nil
}

// checkLengths enforces that every field series matches the time axis
func checkLengths(series string, want int, fields map[string]int) error {
	for field, got := range fields {
		if got != want {
			return fmt.Errorf("%w: %s.%s has %d values, time has %d", ErrMalformedResponse, series, field, got, want)
		}
	}
	return nil
}

func toTime(value, layout string, tz *time.Location) (time.Time, error) {
	return time.ParseInLocation(layout, value, tz)
}

func toTimes(values []string, layout string, tz *time.Location) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, err := toTime(v, layout, tz)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}
