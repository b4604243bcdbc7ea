package presenter

import (
	"clima/internal/catalog"
)

// RenderModel is everything the dashboard shows for one snapshot
type RenderModel struct {
	Language string        `json:"language"`
	Location string        `json:"location"`
	Current  CurrentBlock  `json:"current"`
	Hourly   []HourlyEntry `json:"hourly"`
	Weekly   []WeeklyEntry `json:"weekly"`
	Theme    ThemeBlock    `json:"theme"`
}

type CurrentBlock struct {
	Temperature    int    `json:"temperature"`
	Label          string `json:"label"`
	IconID         string `json:"iconId"`
	FeelsLike      int    `json:"feelsLike"`
	WindSpeed      int    `json:"windSpeed"` // km/h
	Humidity       int    `json:"humidity"`  // %
	Rain           int    `json:"rain"`
	Date           string `json:"date"`
	Sunrise        string `json:"sunrise,omitempty"`
	Sunset         string `json:"sunset,omitempty"`
	SunriseSunset  string `json:"sunriseSunset,omitempty"`
	LastUpdate     string `json:"lastUpdate"`
	LastUpdateText string `json:"lastUpdateText"`
}

type HourlyEntry struct {
	Hour        string `json:"hour"`
	IconID      string `json:"iconId"`
	Temperature int    `json:"temperature"`
}

type WeeklyEntry struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	IconID  string `json:"iconId"`
	Max     int    `json:"max"`
	Min     int    `json:"min"`
}

type ThemeBlock struct {
	Theme           catalog.Theme `json:"theme"`
	BackgroundClass string        `json:"backgroundClass"`
	Emoji           string        `json:"emoji"`
	Title           string        `json:"title"`
	Favicon         string        `json:"favicon"`
}
