package openmeteo

// ForecastAPIResponse is the forecast endpoint payload. Times are local to
// Timezone and formatted "2006-01-02T15:04" (daily Time is "2006-01-02").
type ForecastAPIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationtimeMs     float64           `json:"generationtime_ms"`
	UtcOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	CurrentUnits         map[string]string `json:"current_units"`
	Current              struct {
		Time                string  `json:"time"`
		Interval            int     `json:"interval"`
		Temperature2M       float64 `json:"temperature_2m"`
		RelativeHumidity2M  float64 `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed10M        float64 `json:"wind_speed_10m"`
		Rain                float64 `json:"rain"`
		Showers             float64 `json:"showers"`
	} `json:"current"`
	HourlyUnits map[string]string `json:"hourly_units"`
	Hourly      struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		WeatherCode   []int     `json:"weather_code"`
		Rain          []float64 `json:"rain"`
		Showers       []float64 `json:"showers"`
	} `json:"hourly"`
	DailyUnits map[string]string `json:"daily_units"`
	Daily      struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2MMax []float64 `json:"temperature_2m_max"`
		Temperature2MMin []float64 `json:"temperature_2m_min"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		RainSum          []float64 `json:"rain_sum"`
	} `json:"daily"`
}

// GeocodingResult is one place returned by the geocoding API
type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	Timezone    string  `json:"timezone"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
}

// GeocodingAPIResponse is the payload of both the search and the reverse
// endpoints. Results is absent when nothing matched.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}
