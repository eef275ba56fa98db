package rank

import (
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/geo"
)

// 位置分：双方都有坐标时按大圆距离（英里）走固定阶梯；
// 否则退化为文本层级匹配：同街区 > 同城（邮编接近加成）> 同都会区
// > 同州 > 基准分。家庭侧只有邮编时先经内置表折算近似坐标。

const locationScoreBase = 0.3

// LocationScore 计算位置接近分，[0,1]。
func LocationScore(family, activity core.Location) float64 {
	famPt, famOK := resolvePoint(family)
	actPt, actOK := resolvePoint(activity)
	if famOK && actOK {
		return distanceScore(geo.HaversineMiles(famPt, actPt))
	}
	return textLocationScore(family, activity)
}

func resolvePoint(loc core.Location) (geo.Point, bool) {
	if loc.Coordinates != nil {
		return geo.Point{Lat: loc.Coordinates.Lat, Lng: loc.Coordinates.Lng}, true
	}
	if loc.ZipCode != "" {
		if p, ok := geo.ZipPoint(loc.ZipCode); ok {
			return p, true
		}
	}
	return geo.Point{}, false
}

// distanceScore 是英里 → 分数的固定阶梯。
func distanceScore(miles float64) float64 {
	switch {
	case miles <= 2:
		return 1.0
	case miles <= 5:
		return 0.9
	case miles <= 10:
		return 0.7
	case miles <= 15:
		return 0.5
	case miles <= 25:
		return 0.3
	case miles <= 40:
		return 0.1
	default:
		return 0.05
	}
}

func textLocationScore(family, activity core.Location) float64 {
	if sameText(family.Neighborhood, activity.Neighborhood) {
		return 0.9
	}
	if sameText(family.City, activity.City) {
		score := 0.7 + zipProximityBonus(family.ZipCode, activity.ZipCode)
		if score > 0.9 {
			score = 0.9
		}
		return score
	}
	if geo.SameMetro(family.City, activity.City) {
		return 0.5
	}
	if sameText(family.State, activity.State) {
		return 0.2
	}
	return locationScoreBase
}

// zipProximityBonus 把同城内的邮编数值接近折算为加成（最多 +0.2）。
func zipProximityBonus(zipA, zipB string) float64 {
	a, okA := geo.ZipNumeric(zipA)
	b, okB := geo.ZipNumeric(zipB)
	if !okA || !okB {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 10:
		return 0.2
	case diff <= 50:
		return 0.1
	default:
		return 0
	}
}

func sameText(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return a != "" && a == b
}
