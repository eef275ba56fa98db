package rank

import "github.com/rushteam/famkit/core"

// 质量分：从中性基准 0.5 出发做加减法——
// 评分相对 3 星线性调整（每星 ±0.1），评论数最多 +0.2（100 条封顶），
// 认证 +0.1，从业年限最多 +0.1（10 年封顶），最终截断到 [0,1]。
// 画像全空的机构落在 0.5，不奖不罚。

const qualityScoreBase = 0.5

// QualityScore 计算机构质量分，[0,1]。
func QualityScore(info core.ProviderInfo) float64 {
	score := qualityScoreBase

	if info.Rating > 0 {
		score += (info.Rating - 3.0) * 0.1
	}
	if info.ReviewCount > 0 {
		n := float64(info.ReviewCount)
		if n > 100 {
			n = 100
		}
		score += 0.2 * n / 100
	}
	if info.Verified {
		score += 0.1
	}
	if info.ExperienceYears > 0 {
		y := float64(info.ExperienceYears)
		if y > 10 {
			y = 10
		}
		score += 0.1 * y / 10
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
