package rank

import "github.com/rushteam/famkit/core"

// 权重混合：六个因子先按固定权重加权平均得到"现实约束分"，
// 再与向量相似度按 3:7 混合为最终匹配分。权重可配置，
// 计算时按权重和归一，零和权重退化为向量相似度直通。

// Weights 是六因子权重。
type Weights struct {
	Age       float64 `yaml:"age" json:"age"`
	Interests float64 `yaml:"interests" json:"interests"`
	Location  float64 `yaml:"location" json:"location"`
	Schedule  float64 `yaml:"schedule" json:"schedule"`
	Budget    float64 `yaml:"budget" json:"budget"`
	Quality   float64 `yaml:"quality" json:"quality"`

	// Vector 是向量相似度在最终混合里的占比，剩余给现实约束分。
	Vector float64 `yaml:"vector" json:"vector"`

	// Cutoff 以下的候选在排序后被丢弃。
	Cutoff float64 `yaml:"cutoff" json:"cutoff"`
}

// DefaultWeights 返回缺省权重。
func DefaultWeights() Weights {
	return Weights{
		Age:       0.25,
		Interests: 0.20,
		Location:  0.10,
		Schedule:  0.10,
		Budget:    0.03,
		Quality:   0.02,
		Vector:    0.3,
		Cutoff:    0.2,
	}
}

// Practical 把因子分折算为现实约束分（按权重和归一）。
func (w Weights) Practical(f core.FactorScores) float64 {
	total := w.Age + w.Interests + w.Location + w.Schedule + w.Budget + w.Quality
	if total <= 0 {
		return 0
	}
	sum := w.Age*f.Age +
		w.Interests*f.Interests +
		w.Location*f.Location +
		w.Schedule*f.Schedule +
		w.Budget*f.Budget +
		w.Quality*f.Quality
	return sum / total
}

// Blend 混合向量相似度与现实约束分。
func (w Weights) Blend(vectorSimilarity, practical float64) float64 {
	v := w.Vector
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v*vectorSimilarity + (1-v)*practical
}
