// Package i18n holds the dashboard's UI strings and locale formatting for the
// two supported languages, Brazilian Portuguese and English.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	Portuguese = "pt-BR"
	English    = "en"
)

// StringTable is the set of UI strings for one language
type StringTable struct {
	AppName                string `json:"appName"`
	SearchPlaceholder      string `json:"searchPlaceholder"`
	CurrentLocation        string `json:"currentLocation"`
	Coordinates            string `json:"coordinates"`
	FeelsLike              string `json:"feelsLike"`
	Wind                   string `json:"wind"`
	Humidity               string `json:"humidity"`
	Rain                   string `json:"rain"`
	Sun                    string `json:"sun"`
	HourlyForecast         string `json:"hourlyForecast"`
	WeeklyForecast         string `json:"weeklyForecast"`
	SearchByCoords         string `json:"searchByCoords"`
	Latitude               string `json:"latitude"`
	Longitude              string `json:"longitude"`
	Cancel                 string `json:"cancel"`
	Search                 string `json:"search"`
	LastUpdate             string `json:"lastUpdate"`
	Loading                string `json:"loading"`
	LoadingTitle           string `json:"loadingTitle"`
	LocationError          string `json:"locationError"`
	GeolocationUnsupported string `json:"geolocationUnsupported"`
	CityError              string `json:"cityError"`
	APIError               string `json:"apiError"`
	CoordinatesError       string `json:"coordinatesError"`
	Updated                string `json:"updated"`
}

var tables = map[string]StringTable{
	Portuguese: {
		AppName:                "Clima",
		SearchPlaceholder:      "Buscar cidade...",
		CurrentLocation:        "Localização Atual",
		Coordinates:            "Coordenadas",
		FeelsLike:              "Sensação",
		Wind:                   "Vento",
		Humidity:               "Umidade",
		Rain:                   "Chuva",
		Sun:                    "Sol",
		HourlyForecast:         "Previsão por Hora",
		WeeklyForecast:         "Previsão para 7 Dias",
		SearchByCoords:         "Buscar por Coordenadas",
		Latitude:               "Latitude",
		Longitude:              "Longitude",
		Cancel:                 "Cancelar",
		Search:                 "Buscar",
		LastUpdate:             "Última atualização",
		Loading:                "Buscando dados do clima...",
		LoadingTitle:           "Carregando...",
		LocationError:          "Não foi possível obter sua localização",
		GeolocationUnsupported: "Geolocalização não suportada pelo dispositivo",
		CityError:              "Cidade não encontrada",
		APIError:               "Erro ao buscar dados do clima",
		CoordinatesError:       "Por favor, insira coordenadas válidas",
		Updated:                "Dados do clima atualizados!",
	},
	English: {
		AppName:                "Weather",
		SearchPlaceholder:      "Search city...",
		CurrentLocation:        "Current Location",
		Coordinates:            "Coordinates",
		FeelsLike:              "Feels like",
		Wind:                   "Wind",
		Humidity:               "Humidity",
		Rain:                   "Rain",
		Sun:                    "Sun",
		HourlyForecast:         "Hourly Forecast",
		WeeklyForecast:         "7-Day Forecast",
		SearchByCoords:         "Search by Coordinates",
		Latitude:               "Latitude",
		Longitude:              "Longitude",
		Cancel:                 "Cancel",
		Search:                 "Search",
		LastUpdate:             "Last update",
		Loading:                "Fetching weather data...",
		LoadingTitle:           "Loading...",
		LocationError:          "Unable to get your location",
		GeolocationUnsupported: "Geolocation is not supported by this device",
		CityError:              "City not found",
		APIError:               "Error fetching weather data",
		CoordinatesError:       "Please enter valid coordinates",
		Updated:                "Weather data updated!",
	},
}

// StringsFor returns the string table for a language tag. Tags starting with
// "pt" and the empty tag get Portuguese, everything else gets English.
func StringsFor(tag string) StringTable {
	return tables[Normalize(tag)]
}

// Normalize reduces any language tag to one of the supported languages
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || isPortuguese(tag) {
		return Portuguese
	}
	return English
}

func isPortuguese(tag string) bool {
	if strings.HasPrefix(strings.ToLower(tag), "pt") {
		return true
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return false
	}
	base, _ := parsed.Base()
	return base.String() == "pt"
}

// DetectLanguage turns a POSIX locale such as "pt_BR.UTF-8" (the form found
// in LANG) into a BCP 47 tag. It returns "" when nothing usable is found.
func DetectLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

// FromAcceptLanguage returns the preferred tag of an Accept-Language header,
// or "" when the header is empty or malformed.
func FromAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
