// Package geo 提供距离打分所需的地理工具：
// 大圆距离、ZIP 前缀坐标表、都会区归属。
package geo

import (
	"math"
	"strings"
)

// Point 是经纬度坐标。
type Point struct {
	Lat float64
	Lng float64
}

const earthRadiusMiles = 3958.8

// HaversineMiles 计算两点间大圆距离（英里）。
func HaversineMiles(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// zipCoords 是已知邮编的近似中心坐标表。
// 覆盖湾区常见家庭活动区域；查不到时距离打分退回文本层级匹配。
var zipCoords = map[string]Point{
	"94102": {37.7793, -122.4193}, // SF Civic Center
	"94103": {37.7725, -122.4147},
	"94107": {37.7621, -122.3971}, // Potrero Hill
	"94110": {37.7485, -122.4184}, // Mission
	"94114": {37.7583, -122.4350}, // Castro / Noe Valley
	"94117": {37.7692, -122.4449}, // Haight
	"94118": {37.7811, -122.4615}, // Inner Richmond
	"94121": {37.7786, -122.4892}, // Outer Richmond
	"94122": {37.7593, -122.4836}, // Sunset
	"94131": {37.7451, -122.4383}, // Glen Park
	"94602": {37.7995, -122.2109}, // Oakland Dimond
	"94610": {37.8110, -122.2442}, // Oakland Lakeshore
	"94611": {37.8283, -122.2235}, // Oakland Montclair
	"94702": {37.8660, -122.2864}, // Berkeley
	"94705": {37.8545, -122.2510}, // Berkeley Elmwood
	"94014": {37.6879, -122.4702}, // Daly City
	"94030": {37.6003, -122.4024}, // Millbrae
	"94401": {37.5743, -122.3210}, // San Mateo
	"94501": {37.7652, -122.2416}, // Alameda
	"95112": {37.3541, -121.8866}, // San Jose
	"95125": {37.2949, -121.8930}, // San Jose Willow Glen
}

// ZipPoint 把邮编解析为近似坐标。仅覆盖内置表中的已知邮编。
func ZipPoint(zip string) (Point, bool) {
	p, ok := zipCoords[strings.TrimSpace(zip)]
	return p, ok
}

// ZipNumeric 把 5 位邮编转成数值，用于"邮编接近"启发。
func ZipNumeric(zip string) (int, bool) {
	zip = strings.TrimSpace(zip)
	if len(zip) < 5 {
		return 0, false
	}
	n := 0
	for _, r := range zip[:5] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// metroOf 是城市 → 都会区的归属表（小写城市名）。
// "同都会区"是位置打分中介于同城与同州之间的层级。
var metroOf = map[string]string{
	"san francisco":       "sf_bay",
	"oakland":             "sf_bay",
	"berkeley":            "sf_bay",
	"daly city":           "sf_bay",
	"south san francisco": "sf_bay",
	"san mateo":           "sf_bay",
	"millbrae":            "sf_bay",
	"alameda":             "sf_bay",
	"emeryville":          "sf_bay",
	"sausalito":           "sf_bay",
	"san jose":            "sf_bay",
	"palo alto":           "sf_bay",
	"mountain view":       "sf_bay",
}

// SameMetro 判断两个城市是否属于同一个已枚举的都会区。
func SameMetro(cityA, cityB string) bool {
	a, okA := metroOf[normCity(cityA)]
	b, okB := metroOf[normCity(cityB)]
	return okA && okB && a == b
}

func normCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
