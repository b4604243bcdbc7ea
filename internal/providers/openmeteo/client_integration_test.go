//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: São Paulo
	lat := -23.5505
	lon := -46.6333
	forecastDays := 8

	client := NewForecastClient("", nil)

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(context.Background(), lat, lon, forecastDays)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp.Current, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Current conditions:\n%s", string(rawJSON))

	t.Logf("Response metadata:")
	t.Logf("  Latitude: %f", resp.Latitude)
	t.Logf("  Longitude: %f", resp.Longitude)
	t.Logf("  Timezone: %s", resp.Timezone)
	t.Logf("  Generation time: %.2f ms", resp.GenerationtimeMs)

	if resp.Timezone != "America/Sao_Paulo" {
		t.Errorf("Timezone = %s, want America/Sao_Paulo", resp.Timezone)
	}

	if len(resp.Hourly.Time) != forecastDays*24 {
		t.Errorf("Hourly forecast contains %d time points, want %d", len(resp.Hourly.Time), forecastDays*24)
	}

	if len(resp.Daily.Time) != forecastDays {
		t.Fatalf("Daily forecast contains %d days, want %d", len(resp.Daily.Time), forecastDays)
	}

	t.Logf("Day 1 - Sunrise: %s, Sunset: %s", resp.Daily.Sunrise[0], resp.Daily.Sunset[0])
	t.Log("✓ API call successful, response structure valid")
}

func TestGeocodingClient_Search_Integration(t *testing.T) {
	client := NewGeocodingClient("", nil)

	resp, err := client.Search(context.Background(), "Lisboa", 1, "pt")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Expected exactly one result, got %d", len(resp.Results))
	}

	t.Logf("Result: %+v", resp.Results[0])

	if resp.Results[0].CountryCode != "PT" {
		t.Errorf("CountryCode = %s, want PT", resp.Results[0].CountryCode)
	}
}
