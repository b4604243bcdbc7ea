package catalog

import (
	"strings"
	"testing"
)

func knownCodes() []int {
	codes := make([]int, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	return codes
}

func TestLookup_KnownCodes(t *testing.T) {
	if len(knownCodes()) != 28 {
		t.Errorf("catalog holds %d codes, want 28", len(knownCodes()))
	}
	for _, code := range knownCodes() {
		got := Lookup(code)
		if got.Code != code {
			t.Errorf("Lookup(%d).Code = %d, want %d", code, got.Code, code)
		}
		if got.IconID == "" || got.Label == "" {
			t.Errorf("Lookup(%d) = %+v, want icon and label", code, got)
		}
	}
}

func TestLookup_UnknownCodesFallBackToClearSky(t *testing.T) {
	clear := Lookup(0)
	for _, code := range []int{-1, 4, 44, 58, 100, 1000} {
		got := Lookup(code)
		if got != clear {
			t.Errorf("Lookup(%d) = %+v, want %+v", code, got, clear)
		}
	}
}

func TestLookupLocalized(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		language string
		want     string
	}{
		{"portuguese", 95, "pt-BR", "Tempestade leve"},
		{"portuguese base", 3, "pt", "Nublado"},
		{"english", 3, "en", "Overcast"},
		{"other language gets english", 61, "de", "Slight rain"},
		{"unknown code english", 42, "en", "Clear sky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupLocalized(tt.code, tt.language)
			if got.Label != tt.want {
				t.Errorf("LookupLocalized(%d, %q).Label = %q, want %q", tt.code, tt.language, got.Label, tt.want)
			}
		})
	}
}

func TestClassifyTheme(t *testing.T) {
	tests := []struct {
		code int
		want Theme
	}{
		{-1, ThemeCloudy},
		{0, ThemeSunny},
		{1, ThemeSunny},
		{2, ThemeCloudy},
		{3, ThemeCloudy},
		{44, ThemeCloudy},
		{45, ThemeRainy},
		{51, ThemeRainy},
		{57, ThemeRainy},
		{58, ThemeCloudy},
		{63, ThemeCloudy},
		{70, ThemeCloudy},
		{71, ThemeSnowy},
		{77, ThemeSnowy},
		{78, ThemeCloudy},
		{94, ThemeCloudy},
		{95, ThemeStormy},
		{99, ThemeStormy},
		{100, ThemeCloudy},
	}

	for _, tt := range tests {
		if got := ClassifyTheme(tt.code); got != tt.want {
			t.Errorf("ClassifyTheme(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestClassifyTheme_Partition(t *testing.T) {
	for code := -50; code <= 150; code++ {
		got := ClassifyTheme(code)
		switch got {
		case ThemeSunny, ThemeRainy, ThemeSnowy, ThemeStormy, ThemeCloudy:
		default:
			t.Fatalf("ClassifyTheme(%d) = %q, not a known theme", code, got)
		}
	}
}

func TestTheme_BackgroundClass(t *testing.T) {
	if got := ThemeStormy.BackgroundClass(); got != "stormy-bg" {
		t.Errorf("BackgroundClass() = %q, want %q", got, "stormy-bg")
	}
}

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "☀️"},
		{1, "🌤️"},
		{3, "☁️"},
		{45, "🌫️"},
		{61, "🌧️"},
		{82, "🌧️"},
		{75, "❄️"},
		{96, "⛈️"},
		{12345, "☀️"},
	}

	for _, tt := range tests {
		if got := EmojiFor(tt.code); got != tt.want {
			t.Errorf("EmojiFor(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFaviconFor(t *testing.T) {
	got := FaviconFor(0)
	if !strings.HasPrefix(got, "data:image/svg+xml,") {
		t.Errorf("FaviconFor(0) = %q, want svg data uri", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("FaviconFor(0) = %q, want escaped spaces", got)
	}
}
