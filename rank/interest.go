package rank

import "strings"

// 兴趣分：活动侧兴趣与家庭兴趣（孩子兴趣 ∪ 偏好活动类型）做
// 大小写不敏感的子串匹配，按两侧集合较大者归一。
// 家庭完全没给兴趣时返回中性 0.5（不惩罚）。

const interestScoreNeutral = 0.5

// InterestScore 计算兴趣重合分，[0,1]。
func InterestScore(activityInterests, familyInterests []string) float64 {
	if len(familyInterests) == 0 {
		return interestScoreNeutral
	}
	if len(activityInterests) == 0 {
		return 0
	}

	matched := 0
	for _, ai := range activityInterests {
		if matchesAny(ai, familyInterests) {
			matched++
		}
	}

	denom := len(familyInterests)
	if len(activityInterests) > denom {
		denom = len(activityInterests)
	}
	return float64(matched) / float64(denom)
}

// matchesAny 判断活动兴趣与任一家庭兴趣是否构成双向子串匹配。
// "art" 命中 "art class"，"painting classes" 也命中 "painting"。
func matchesAny(activityInterest string, familyInterests []string) bool {
	a := strings.ToLower(strings.TrimSpace(activityInterest))
	if a == "" {
		return false
	}
	for _, fi := range familyInterests {
		f := strings.ToLower(strings.TrimSpace(fi))
		if f == "" {
			continue
		}
		if strings.Contains(a, f) || strings.Contains(f, a) {
			return true
		}
	}
	return false
}
