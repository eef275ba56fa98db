package core

import "github.com/rushteam/famkit/pkg/utils"

// SearchFilters 是一次推荐请求的结构化过滤条件。
// 既下发给向量检索（Filters 参数），也驱动本地过滤节点。
type SearchFilters struct {
	Categories       []string // 仅保留这些类目（空表示不限）
	Neighborhoods    []string // 仅保留这些街区（空表示不限）
	MaxPrice         float64  // 0 表示不限
	ExcludeProviders []string // 被屏蔽的机构 ID

	// RuleExpr 是可选的 CEL 业务规则，作用于 candidate / family 两个变量。
	// 例如：!("peanut" in family.allergies) || candidate.category != "cooking"
	RuleExpr string
}

// MatchContext 承载一次推荐请求的家庭画像/过滤条件/请求级参数，
// 贯穿整个 Pipeline 透传。
type MatchContext struct {
	RequestID string

	// Family 是结构化家庭画像（上游解析产物，引擎只读）。
	Family *FamilyProfile

	Filters *SearchFilters

	// Params 请求级上下文参数：query（检索文本）、limit 等。
	Params map[string]any

	// Labels 是请求级标签，可驱动整个 Pipeline 行为。
	Labels map[string]utils.Label
}

// PutLabel 写入请求级 Label。
func (mctx *MatchContext) PutLabel(key string, lbl utils.Label) {
	if mctx.Labels == nil {
		mctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := mctx.Labels[key]; ok {
		mctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	mctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (mctx *MatchContext) GetLabel(key string) (utils.Label, bool) {
	if mctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := mctx.Labels[key]
	return lbl, ok
}

// Param 按 key 取请求级参数，取不到时返回 nil。
func (mctx *MatchContext) Param(key string) any {
	if mctx.Params == nil {
		return nil
	}
	return mctx.Params[key]
}

// SetParam 写入请求级参数。
func (mctx *MatchContext) SetParam(key string, v any) {
	if mctx.Params == nil {
		mctx.Params = make(map[string]any)
	}
	mctx.Params[key] = v
}
