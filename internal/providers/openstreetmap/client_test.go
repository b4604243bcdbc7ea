package openstreetmap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantErr  error
	}{
		{
			name:     "city address",
			body:     `{"place_id":1,"name":"Praça da Sé","display_name":"Praça da Sé, Sé, São Paulo, Brasil","address":{"city":"São Paulo","state":"São Paulo","country":"Brasil","country_code":"br"}}`,
			wantName: "São Paulo",
		},
		{
			name:     "town address",
			body:     `{"place_id":2,"name":"","display_name":"Paraty, Rio de Janeiro, Brasil","address":{"town":"Paraty","country":"Brasil","country_code":"br"}}`,
			wantName: "Paraty",
		},
		{
			name:     "feature name only",
			body:     `{"place_id":3,"name":"Pico da Neblina","display_name":"Pico da Neblina, Brasil","address":{"country":"Brasil"}}`,
			wantName: "Pico da Neblina",
		},
		{
			name:    "open ocean",
			body:    `{"error":"Unable to geocode"}`,
			wantErr: ErrNoResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserAgent, gotLanguage string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserAgent = r.Header.Get("User-Agent")
				gotLanguage = r.URL.Query().Get("accept-language")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "clima-test", server.Client())
			info, err := client.ReverseGeocode(context.Background(), -23.5505, -46.6333, "pt")

			if gotUserAgent != "clima-test" {
				t.Errorf("User-Agent = %q, want %q", gotUserAgent, "clima-test")
			}
			if gotLanguage != "pt" {
				t.Errorf("accept-language = %q, want %q", gotLanguage, "pt")
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReverseGeocode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReverseGeocode() unexpected error = %v", err)
			}
			if info.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", info.Name, tt.wantName)
			}
		})
	}
}

func TestClient_Lookup_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", server.Client())
	if _, err := client.Lookup(context.Background(), 0, 0, ""); err == nil {
		t.Fatal("Lookup() expected error but got none")
	}
}
