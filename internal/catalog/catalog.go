// Package catalog maps WMO weather codes to the icons, labels, themes and
// emoji the dashboard displays.
package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Icon ids (Font Awesome classes)
const (
	IconSun                = "fa-sun"
	IconCloudSun           = "fa-cloud-sun"
	IconCloud              = "fa-cloud"
	IconSmog               = "fa-smog"
	IconCloudRain          = "fa-cloud-rain"
	IconCloudShowersHeavy  = "fa-cloud-showers-heavy"
	IconSnowflake          = "fa-snowflake"
	IconBolt               = "fa-bolt"
	defaultEmoji           = "🌤️"
	fallbackCode           = 0
	portugueseLanguageBase = "pt"
)

// Entry describes how a weather code is displayed
type Entry struct {
	Code   int    `json:"code"`
	IconID string `json:"iconId"`
	Label  string `json:"label"`
}

type entry struct {
	icon    string
	labelPT string
	labelEN string
}

var entries = map[int]entry{
	0:  {IconSun, "Céu limpo", "Clear sky"},
	1:  {IconCloudSun, "Pouco nublado", "Mainly clear"},
	2:  {IconCloud, "Parcialmente nublado", "Partly cloudy"},
	3:  {IconCloud, "Nublado", "Overcast"},
	45: {IconSmog, "Nevoeiro", "Fog"},
	48: {IconSmog, "Nevoeiro com geada", "Depositing rime fog"},
	51: {IconCloudRain, "Chuvisco leve", "Light drizzle"},
	53: {IconCloudRain, "Chuvisco moderado", "Moderate drizzle"},
	55: {IconCloudRain, "Chuvisco intenso", "Dense drizzle"},
	56: {IconSnowflake, "Chuvisco congelante leve", "Light freezing drizzle"},
	57: {IconSnowflake, "Chuvisco congelante intenso", "Dense freezing drizzle"},
	61: {IconCloudRain, "Chuva leve", "Slight rain"},
	63: {IconCloudRain, "Chuva moderada", "Moderate rain"},
	65: {IconCloudShowersHeavy, "Chuva intensa", "Heavy rain"},
	66: {IconSnowflake, "Chuva congelante leve", "Light freezing rain"},
	67: {IconSnowflake, "Chuva congelante intensa", "Heavy freezing rain"},
	71: {IconSnowflake, "Queda de neve leve", "Slight snow fall"},
	73: {IconSnowflake, "Queda de neve moderada", "Moderate snow fall"},
	75: {IconSnowflake, "Queda de neve intensa", "Heavy snow fall"},
	77: {IconSnowflake, "Grãos de neve", "Snow grains"},
	80: {IconCloudShowersHeavy, "Pancadas de chuva leves", "Slight rain showers"},
	81: {IconCloudShowersHeavy, "Pancadas de chuva moderadas", "Moderate rain showers"},
	82: {IconCloudShowersHeavy, "Pancadas de chuva fortes", "Violent rain showers"},
	85: {IconSnowflake, "Pancadas de neve leves", "Slight snow showers"},
	86: {IconSnowflake, "Pancadas de neve fortes", "Heavy snow showers"},
	95: {IconBolt, "Tempestade leve", "Slight thunderstorm"},
	96: {IconBolt, "Tempestade com granizo leve", "Thunderstorm with slight hail"},
	99: {IconBolt, "Tempestade com granizo forte", "Thunderstorm with heavy hail"},
}

var emojis = map[string]string{
	IconSun:               "☀️",
	IconCloudSun:          "🌤️",
	IconCloud:             "☁️",
	IconCloudRain:         "🌧️",
	IconCloudShowersHeavy: "🌧️",
	IconSnowflake:         "❄️",
	IconBolt:              "⛈️",
	IconSmog:              "🌫️",
}

// Lookup returns the entry for code with its Portuguese label. Unknown codes
// resolve to the clear-sky entry.
func Lookup(code int) Entry {
	return LookupLocalized(code, portugueseLanguageBase)
}

// LookupLocalized is Lookup with an English label for any non-Portuguese
// language.
func LookupLocalized(code int, language string) Entry {
	e, ok := entries[code]
	if !ok {
		code = fallbackCode
		e = entries[fallbackCode]
	}

	label := e.labelEN
	if strings.HasPrefix(strings.ToLower(language), portugueseLanguageBase) {
		label = e.labelPT
	}

	return Entry{
		Code:   code,
		IconID: e.icon,
		Label:  label,
	}
}

// EmojiFor returns the emoji shown in the page title and favicon for code
func EmojiFor(code int) string {
	if emoji, ok := emojis[Lookup(code).IconID]; ok {
		return emoji
	}
	return defaultEmoji
}

// FaviconFor returns an SVG data URI drawing the emoji for code
func FaviconFor(code int) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">%s</text></svg>`, EmojiFor(code))
	return "data:image/svg+xml," + url.PathEscape(svg)
}
