package normalize

import (
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/conv"
)

// 位置抽取：接受预结构化的 location 子对象，或单个 "City, ST" 字符串；
// 数值经纬度直接透传。

var (
	zipKeys  = []string{"zip", "zip_code", "zipcode", "postal_code", "zipCode"}
	latKeys  = []string{"lat", "latitude"}
	lngKeys  = []string{"lng", "lon", "longitude"}
	addrKeys = []string{"address", "venue_address", "street_address"}
)

// ExtractLocation 抽取候选位置。
func ExtractLocation(payload map[string]any) core.Location {
	// 预结构化子对象优先
	if sub, ok := payload["location"].(map[string]any); ok {
		return locationFromFields(sub)
	}
	return locationFromFields(payload)
}

func locationFromFields(m map[string]any) core.Location {
	loc := core.Location{}

	loc.Neighborhood, _ = conv.FirstString(m, "neighborhood", "district", "area")
	if city, ok := conv.FirstString(m, "city", "location", "venue_city"); ok {
		loc.City, loc.State = SplitCityState(city)
	}
	if loc.State == "" {
		loc.State, _ = conv.FirstString(m, "state")
	}
	loc.ZipCode, _ = conv.FirstString(m, zipKeys...)
	loc.Address, _ = conv.FirstString(m, addrKeys...)

	lat, okLat := conv.FirstFloat64(m, latKeys...)
	lng, okLng := conv.FirstFloat64(m, lngKeys...)
	if okLat && okLng && (lat != 0 || lng != 0) {
		loc.Coordinates = &core.GeoPoint{Lat: lat, Lng: lng}
	}
	return loc
}

// SplitCityState 拆分 "City, ST" 形式；不含逗号时整体作为城市名。
func SplitCityState(s string) (city, state string) {
	s = strings.TrimSpace(s)
	if city, rest, found := strings.Cut(s, ","); found {
		return strings.TrimSpace(city), strings.TrimSpace(rest)
	}
	return s, ""
}
