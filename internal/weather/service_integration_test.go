//go:build integration

package weather

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"clima/internal/config"
	"clima/internal/types"
)

func TestWeatherService_Fetch_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc, err := NewWeatherService(config.Default(), logger)
	if err != nil {
		t.Fatalf("Failed to create weather service: %v", err)
	}

	lisbon := types.NewLocation(38.7167, -9.1333, "Lisboa, Portugal")

	snapshot, err := svc.Fetch(context.Background(), lisbon)
	if err != nil {
		t.Fatalf("Failed to fetch forecast: %v", err)
	}

	t.Logf("Timezone: %s", snapshot.Timezone)
	t.Logf("Current: %.1f°C (feels %.1f°C), code %d, wind %.1f km/h",
		snapshot.Current.Temperature,
		snapshot.Current.ApparentTemperature,
		snapshot.Current.WeatherCode,
		snapshot.Current.WindSpeed,
	)

	if snapshot.Timezone != "Europe/Lisbon" {
		t.Errorf("Timezone = %q, want Europe/Lisbon", snapshot.Timezone)
	}
	if snapshot.Daily.Len() != 8 {
		t.Errorf("daily length = %d, want 8", snapshot.Daily.Len())
	}
	if snapshot.Hourly.Len() != 8*24 {
		t.Errorf("hourly length = %d, want %d", snapshot.Hourly.Len(), 8*24)
	}
	for i, day := range snapshot.Daily.Time {
		t.Logf("  %s  min %.1f  max %.1f  sunrise %s  sunset %s",
			day.Format("2006-01-02"),
			snapshot.Daily.TemperatureMin[i],
			snapshot.Daily.TemperatureMax[i],
			snapshot.Daily.Sunrise[i].Format("15:04"),
			snapshot.Daily.Sunset[i].Format("15:04"),
		)
	}
}
