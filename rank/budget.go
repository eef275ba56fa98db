package rank

import "github.com/rushteam/famkit/core"

// 预算分：免费活动恒为满分；家庭没给预算上限返回 0.7；
// 活动费用抽不出来返回 0.8（不确定不重罚）。
// 其余按费用/上限的倍率分档：1.0 倍内 1.0，1.2 倍内 0.7，
// 1.5 倍内 0.4，再往上 0.1。

const (
	budgetScoreNoBudget    = 0.7
	budgetScoreUnknownCost = 0.8
)

// BudgetScore 计算预算契合分，[0,1]。
func BudgetScore(budget *core.Budget, pricing core.Pricing) float64 {
	if pricing.Type == core.PricingFree {
		return 1.0
	}
	if budget == nil || budget.Max <= 0 {
		return budgetScoreNoBudget
	}

	cost := pricing.EffectiveCost()
	if cost <= 0 {
		return budgetScoreUnknownCost
	}

	ratio := cost / budget.Max
	switch {
	case ratio <= 1.0:
		return 1.0
	case ratio <= 1.2:
		return 0.7
	case ratio <= 1.5:
		return 0.4
	default:
		return 0.1
	}
}
