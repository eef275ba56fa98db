package core

import "github.com/rushteam/famkit/pkg/utils"

// FactorScores 是六个实用性因子分，均在 [0,1]。
type FactorScores struct {
	Age       float64
	Interests float64
	Location  float64
	Schedule  float64
	Budget    float64
	Quality   float64
}

// Candidate 是推荐链路中的统一承载结构：向量检索命中 → 归一化画像 →
// 因子分与总分 → 解释。每次请求新建，响应返回后即丢弃。
// Labels 用于解释与观测；MatchScore 用于排序决策。
type Candidate struct {
	ID     string
	Source SourceKind

	// Payload 是向量检索返回的原始负载（异构、可能残缺），
	// 归一化之后仅供调试/规则过滤使用。
	Payload map[string]any

	// VectorSimilarity 是向量检索相似度，[0,1]。
	VectorSimilarity float64

	// Activity 由 Normalizer 填充。
	Activity *ActivityRecord

	// Ranking / PracticalScore / MatchScore 由 Rank 阶段填充。
	Ranking        FactorScores
	PracticalScore float64
	MatchScore     float64

	// MatchReasons / Concerns 是模板化解释（保序）。
	MatchReasons []string
	Concerns     []string

	Labels map[string]utils.Label
}

// NewCandidate 创建一个候选。
func NewCandidate(id string, source SourceKind) *Candidate {
	return &Candidate{
		ID:      id,
		Source:  source,
		Payload: make(map[string]any),
		Labels:  make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// ProviderID 返回候选的机构 ID（画像未就绪时为空串）。
func (c *Candidate) ProviderID() string {
	if c.Activity == nil {
		return ""
	}
	return c.Activity.ProviderID
}
