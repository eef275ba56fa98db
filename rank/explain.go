package rank

import (
	"fmt"

	"github.com/rushteam/famkit/core"
)

// 解释生成：纯模板逻辑，不调用任何模型。
// 因子分越过高阈值产出 matchReasons，跌破低阈值产出 concerns，
// 顺序固定（年龄→兴趣→位置→排期→预算→质量）保证可测。

// Explain 从因子分与活动画像推导匹配理由与顾虑。
func Explain(f core.FactorScores, rec *core.ActivityRecord) (reasons, concerns []string) {
	if f.Age >= 0.8 {
		if rec != nil && rec.AgeRange != nil {
			reasons = append(reasons, fmt.Sprintf("适龄区间 %d-%d 岁，与孩子年龄契合", rec.AgeRange.Min, rec.AgeRange.Max))
		} else {
			reasons = append(reasons, "与孩子年龄契合")
		}
	}
	if f.Interests >= 0.7 {
		reasons = append(reasons, "活动内容与孩子兴趣高度重合")
	}
	if f.Location >= 0.8 {
		reasons = append(reasons, "距离家庭位置很近")
	}
	if f.Budget >= 0.9 {
		if rec != nil && rec.Pricing.Type == core.PricingFree {
			reasons = append(reasons, "免费活动")
		} else {
			reasons = append(reasons, "价格在预算范围内")
		}
	}
	if f.Quality >= 0.8 {
		reasons = append(reasons, "机构口碑与资质出色")
	}
	if rec != nil && rec.Provider.Verified {
		reasons = append(reasons, "已认证机构")
	}

	if f.Age < 0.3 {
		concerns = append(concerns, "适龄区间与孩子年龄差距较大")
	}
	if f.Interests < 0.3 {
		concerns = append(concerns, "活动内容与孩子兴趣重合度低")
	}
	if f.Location < 0.4 {
		concerns = append(concerns, "距离家庭位置较远")
	}
	if f.Budget < 0.5 {
		concerns = append(concerns, "价格可能超出预算")
	}
	return reasons, concerns
}
