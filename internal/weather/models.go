package weather

import (
	"time"

	"clima/internal/types"
)

// Snapshot is one fetched bundle of current, hourly and daily data. All times
// are in the forecast location's timezone.
type Snapshot struct {
	Location  types.Location
	Timezone  string
	Current   CurrentReading
	Hourly    HourlySeries
	Daily     DailySeries
	FetchedAt time.Time
}

// CurrentReading holds the scalar values for "now"
type CurrentReading struct {
	Time                time.Time
	Temperature         float64 // °C
	ApparentTemperature float64 // °C
	RelativeHumidity    float64 // %
	WindSpeed           float64 // km/h
	WeatherCode         int
	Rain                float64 // mm
	Showers             float64 // mm
}

// HourlySeries is index-aligned: element i of every slice describes Time[i]
type HourlySeries struct {
	Time        []time.Time
	Temperature []float64
	WeatherCode []int
	Rain        []float64
	Showers     []float64
}

func (h HourlySeries) Len() int {
	return len(h.Time)
}

// DailySeries is index-aligned: element i of every slice describes Time[i].
// Index 0 is today.
type DailySeries struct {
	Time           []time.Time
	WeatherCode    []int
	TemperatureMax []float64
	TemperatureMin []float64
	Sunrise        []time.Time
	Sunset         []time.Time
	RainSum        []float64
}

func (d DailySeries) Len() int {
	return len(d.Time)
}
