package catalog

// Theme is the background theme of the dashboard
type Theme string

const (
	ThemeSunny  Theme = "sunny"
	ThemeRainy  Theme = "rainy"
	ThemeSnowy  Theme = "snowy"
	ThemeStormy Theme = "stormy"
	ThemeCloudy Theme = "cloudy"
)

// BackgroundClass returns the CSS class of the animated background
func (t Theme) BackgroundClass() string {
	return string(t) + "-bg"
}

// ClassifyTheme maps a weather code to a theme. Fog and drizzle (45-57)
// count as rainy; rain proper (61-67) and showers fall through to cloudy.
func ClassifyTheme(code int) Theme {
	switch {
	case code == 0 || code == 1:
		return ThemeSunny
	case code >= 45 && code <= 57:
		return ThemeRainy
	case code >= 71 && code <= 77:
		return ThemeSnowy
	case code >= 95 && code <= 99:
		return ThemeStormy
	default:
		return ThemeCloudy
	}
}
