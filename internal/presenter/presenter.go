// Package presenter turns a forecast snapshot into the values the dashboard
// displays. Everything here is pure: no I/O, no clock, no shared state.
package presenter

import (
	"fmt"
	"math"

	"clima/internal/catalog"
	"clima/internal/i18n"
	"clima/internal/types"
	"clima/internal/weather"
)

// The dashboard always shows a full day of hourly entries and the seven days
// after today. Shorter series are shown as far as they go.
const (
	HourlyHours = 24
	WeeklyDays  = 7
)

func Present(snapshot *weather.Snapshot, loc types.Location, strings i18n.StringTable, lang string) RenderModel {
	lang = i18n.Normalize(lang)

	return RenderModel{
		Language: lang,
		Location: locationLabel(loc, strings),
		Current:  currentBlock(snapshot, strings, lang),
		Hourly:   hourlyBlock(snapshot.Hourly, lang),
		Weekly:   weeklyBlock(snapshot.Daily, lang),
		Theme:    themeBlock(snapshot.Current, strings),
	}
}

// LoadingTitle is the page title shown while no snapshot is available
func LoadingTitle(strings i18n.StringTable) string {
	return fmt.Sprintf("%s – %s", strings.AppName, strings.LoadingTitle)
}

// Round is the single rounding rule for every displayed number
func Round(v float64) int {
	return int(math.Round(v))
}

func locationLabel(loc types.Location, strings i18n.StringTable) string {
	if loc.DisplayName != "" {
		return loc.DisplayName
	}
	return fmt.Sprintf("%s: %.4f, %.4f", strings.Coordinates, loc.Coordinates.Latitude, loc.Coordinates.Longitude)
}

func currentBlock(snapshot *weather.Snapshot, strings i18n.StringTable, lang string) CurrentBlock {
	current := snapshot.Current
	entry := catalog.LookupLocalized(current.WeatherCode, lang)

	block := CurrentBlock{
		Temperature:    Round(current.Temperature),
		Label:          entry.Label,
		IconID:         entry.IconID,
		FeelsLike:      Round(current.ApparentTemperature),
		WindSpeed:      Round(current.WindSpeed),
		Humidity:       Round(current.RelativeHumidity),
		Rain:           Round(rainAmount(current)),
		Date:           i18n.LongDate(snapshot.FetchedAt, lang),
		LastUpdate:     i18n.Time(snapshot.FetchedAt, lang),
		LastUpdateText: fmt.Sprintf("%s: %s", strings.LastUpdate, i18n.Time(snapshot.FetchedAt, lang)),
	}

	daily := snapshot.Daily
	if len(daily.Sunrise) > 0 && len(daily.Sunset) > 0 {
		block.Sunrise = i18n.Time(daily.Sunrise[0], lang)
		block.Sunset = i18n.Time(daily.Sunset[0], lang)
		block.SunriseSunset = block.Sunrise + " / " + block.Sunset
	}

	return block
}

// rainAmount is rain when nonzero, else showers, else zero
func rainAmount(current weather.CurrentReading) float64 {
	if current.Rain != 0 {
		return current.Rain
	}
	return current.Showers
}

func hourlyBlock(hourly weather.HourlySeries, lang string) []HourlyEntry {
	n := min(HourlyHours, len(hourly.Time), len(hourly.Temperature), len(hourly.WeatherCode))

	entries := make([]HourlyEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, HourlyEntry{
			Hour:        i18n.Hour(hourly.Time[i], lang),
			IconID:      catalog.Lookup(hourly.WeatherCode[i]).IconID,
			Temperature: Round(hourly.Temperature[i]),
		})
	}
	return entries
}

// weeklyBlock skips index 0 (today) and stops at whatever the series holds
func weeklyBlock(daily weather.DailySeries, lang string) []WeeklyEntry {
	last := min(WeeklyDays, len(daily.Time)-1, len(daily.WeatherCode)-1,
		len(daily.TemperatureMax)-1, len(daily.TemperatureMin)-1)

	entries := make([]WeeklyEntry, 0, max(last, 0))
	for i := 1; i <= last; i++ {
		entries = append(entries, WeeklyEntry{
			Weekday: i18n.WeekdayShort(daily.Time[i], lang),
			Date:    i18n.DayMonth(daily.Time[i], lang),
			IconID:  catalog.Lookup(daily.WeatherCode[i]).IconID,
			Max:     Round(daily.TemperatureMax[i]),
			Min:     Round(daily.TemperatureMin[i]),
		})
	}
	return entries
}

func themeBlock(current weather.CurrentReading, strings i18n.StringTable) ThemeBlock {
	theme := catalog.ClassifyTheme(current.WeatherCode)
	emoji := catalog.EmojiFor(current.WeatherCode)

	return ThemeBlock{
		Theme:           theme,
		BackgroundClass: theme.BackgroundClass(),
		Emoji:           emoji,
		Title:           fmt.Sprintf("%s %d°C – %s", emoji, Round(current.Temperature), strings.AppName),
		Favicon:         catalog.FaviconFor(current.WeatherCode),
	}
}
