package normalize

import (
	"testing"

	"github.com/rushteam/famkit/core"
)

func TestExtractPricing(t *testing.T) {
	tests := []struct {
		name        string
		payload     map[string]any
		wantType    core.PricingType
		wantAmount  float64
		wantRange   *core.PriceRange
	}{
		{
			name:     "no price field defaults to per session",
			payload:  map[string]any{"name": "Art class"},
			wantType: core.PricingPerSession,
		},
		{
			name:     "numeric zero is free",
			payload:  map[string]any{"price": 0},
			wantType: core.PricingFree,
		},
		{
			name:       "numeric amount",
			payload:    map[string]any{"price": 45.0},
			wantType:   core.PricingPerSession,
			wantAmount: 45,
		},
		{
			name:     "free string",
			payload:  map[string]any{"cost": "Free admission"},
			wantType: core.PricingFree,
		},
		{
			name:      "string range",
			payload:   map[string]any{"price": "$40-$60"},
			wantType:  core.PricingPerSession,
			wantRange: &core.PriceRange{Min: 40, Max: 60},
		},
		{
			name:       "dollar string amount",
			payload:    map[string]any{"fee": "$25 per visit"},
			wantType:   core.PricingPerSession,
			wantAmount: 25,
		},
		{
			name:       "monthly key maps to per month",
			payload:    map[string]any{"price_per_month": 200.0},
			wantType:   core.PricingPerMonth,
			wantAmount: 200,
		},
		{
			name:       "tuition maps to per month",
			payload:    map[string]any{"tuition": "$350"},
			wantType:   core.PricingPerMonth,
			wantAmount: 350,
		},
		{
			name:       "camp category maps to per program",
			payload:    map[string]any{"price": "$400", "category": "summer camp"},
			wantType:   core.PricingPerProgram,
			wantAmount: 400,
		},
		{
			name:     "unparseable string keeps type only",
			payload:  map[string]any{"price": "call for pricing"},
			wantType: core.PricingPerSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPricing(tt.payload)
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Amount != tt.wantAmount {
				t.Errorf("Amount = %v, want %v", got.Amount, tt.wantAmount)
			}
			if (got.Range == nil) != (tt.wantRange == nil) {
				t.Fatalf("Range = %v, want %v", got.Range, tt.wantRange)
			}
			if got.Range != nil && (got.Range.Min != tt.wantRange.Min || got.Range.Max != tt.wantRange.Max) {
				t.Errorf("Range = %+v, want %+v", got.Range, tt.wantRange)
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    core.Location
	}{
		{
			name: "nested location object",
			payload: map[string]any{
				"location": map[string]any{
					"neighborhood": "Mission",
					"city":         "San Francisco, CA",
					"zip_code":     "94110",
				},
			},
			want: core.Location{Neighborhood: "Mission", City: "San Francisco", State: "CA", ZipCode: "94110"},
		},
		{
			name:    "top level fields",
			payload: map[string]any{"city": "Oakland", "state": "CA"},
			want:    core.Location{City: "Oakland", State: "CA"},
		},
		{
			name:    "coordinates captured",
			payload: map[string]any{"lat": 37.76, "lng": -122.42},
			want:    core.Location{Coordinates: &core.GeoPoint{Lat: 37.76, Lng: -122.42}},
		},
		{
			name:    "zero coordinates ignored",
			payload: map[string]any{"lat": 0.0, "lng": 0.0},
			want:    core.Location{},
		},
		{
			name:    "empty payload",
			payload: map[string]any{},
			want:    core.Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLocation(tt.payload)
			if got.Neighborhood != tt.want.Neighborhood || got.City != tt.want.City ||
				got.State != tt.want.State || got.ZipCode != tt.want.ZipCode {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if (got.Coordinates == nil) != (tt.want.Coordinates == nil) {
				t.Fatalf("Coordinates = %v, want %v", got.Coordinates, tt.want.Coordinates)
			}
			if got.Coordinates != nil && (got.Coordinates.Lat != tt.want.Coordinates.Lat || got.Coordinates.Lng != tt.want.Coordinates.Lng) {
				t.Errorf("Coordinates = %+v, want %+v", got.Coordinates, tt.want.Coordinates)
			}
		})
	}
}

func TestSplitCityState(t *testing.T) {
	tests := []struct {
		in        string
		wantCity  string
		wantState string
	}{
		{"San Francisco, CA", "San Francisco", "CA"},
		{"Oakland", "Oakland", ""},
		{" Berkeley , CA ", "Berkeley", "CA"},
		{"", "", ""},
	}
	for _, tt := range tests {
		city, state := SplitCityState(tt.in)
		if city != tt.wantCity || state != tt.wantState {
			t.Errorf("SplitCityState(%q) = (%q, %q), want (%q, %q)", tt.in, city, state, tt.wantCity, tt.wantState)
		}
	}
}
