package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "São Paulo",
			latitude:  -23.5505,
			longitude: -46.6333,
			want:      "America/Sao_Paulo",
		},
		{
			name:      "Lisbon",
			latitude:  38.7167,
			longitude: -9.1333,
			want:      "Europe/Lisbon",
		},
		{
			name:      "Manaus",
			latitude:  -3.1190,
			longitude: -60.0217,
			want:      "America/Manaus",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}

			loc, err := svc.Location(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("Location() error = %v", err)
				return
			}
			if loc.String() != tt.want {
				t.Errorf("Location() = %v, want %v", loc, tt.want)
			}
		})
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
