package rank

import (
	"testing"

	"github.com/rushteam/famkit/core"
)

func TestLocationScore_Coordinates(t *testing.T) {
	mission := &core.GeoPoint{Lat: 37.7485, Lng: -122.4184}
	tests := []struct {
		name     string
		family   core.Location
		activity core.Location
		want     float64
	}{
		{
			"same point",
			core.Location{Coordinates: mission},
			core.Location{Coordinates: &core.GeoPoint{Lat: 37.7485, Lng: -122.4184}},
			1.0,
		},
		{
			"mission to berkeley is a medium hop",
			core.Location{ZipCode: "94110"},
			core.Location{ZipCode: "94702"},
			0.5,
		},
		{
			"mission to alameda",
			core.Location{ZipCode: "94110"},
			core.Location{ZipCode: "94501"},
			0.7,
		},
		{
			"sf to san jose is far",
			core.Location{ZipCode: "94110"},
			core.Location{ZipCode: "95125"},
			0.05,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocationScore(tt.family, tt.activity)
			if !closeTo(got, tt.want) {
				t.Errorf("LocationScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocationScore_TextFallback(t *testing.T) {
	tests := []struct {
		name     string
		family   core.Location
		activity core.Location
		want     float64
	}{
		{
			"same neighborhood",
			core.Location{Neighborhood: "Mission", City: "San Francisco"},
			core.Location{Neighborhood: "mission", City: "San Francisco"},
			0.9,
		},
		{
			"same city close zips",
			core.Location{City: "Fresno", ZipCode: "93701"},
			core.Location{City: "Fresno", ZipCode: "93704"},
			0.9,
		},
		{
			"same city no zips",
			core.Location{City: "Fresno"},
			core.Location{City: "Fresno"},
			0.7,
		},
		{
			"same metro different city",
			core.Location{City: "San Francisco"},
			core.Location{City: "Emeryville"},
			0.5,
		},
		{
			"same state only",
			core.Location{City: "Fresno", State: "CA"},
			core.Location{City: "Bakersfield", State: "CA"},
			0.2,
		},
		{
			"nothing in common",
			core.Location{City: "Fresno", State: "CA"},
			core.Location{City: "Portland", State: "OR"},
			0.3,
		},
		{
			"both empty",
			core.Location{},
			core.Location{},
			0.3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocationScore(tt.family, tt.activity)
			if !closeTo(got, tt.want) {
				t.Errorf("LocationScore = %v, want %v", got, tt.want)
			}
		})
	}
}
