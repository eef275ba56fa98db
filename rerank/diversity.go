// Package rerank 在排序结果上做多样性选择与截断。
package rerank

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/utils"
)

// Diversity 是贪心多样性选择 ReRank：
// 恒保留榜首；此后每个名额选使
// (1-w)·matchScore + w·diversityScore 最大的剩余候选。
// diversityScore 从 1.0 起，与每个已选候选比较：同机构 ×0.3、
// 同类目 ×0.7、同街区 ×0.8，跨所有已选乘法叠加。
// 同机构还受硬性名额上限约束（MaxPerProvider，缺省 1）：
// 上限打满后同机构候选直接跳过，宁可返回不足 limit 个，
// 也不让结果被单一机构刷屏。
// 上下文参数 diversity_weight ∈ [0,1] 按请求覆盖 w；
// 显式传 0 表示纯按分数排序。
// - 输入要求已按 matchScore 降序
// - 写入 labels：diversity_score
type Diversity struct {
	// Weight 是多样性权重 w ∈ [0,1]，<=0 时取 0.3。
	Weight float64

	// Limit 是最终名额数，<=0 时不截断。
	Limit int

	// MaxPerProvider 是单机构名额上限，<=0 时取 1。
	// 机构未知的候选不受此限。
	MaxPerProvider int
}

func (n *Diversity) Name() string        { return "rerank.diversity" }
func (n *Diversity) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *Diversity) Process(
	_ context.Context,
	mctx *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(cands) == 0 {
		return cands, nil
	}

	w := n.Weight
	if w <= 0 {
		w = 0.3
	}
	if w > 1 {
		w = 1
	}
	if mctx != nil {
		if f, ok := mctx.Param("diversity_weight").(float64); ok && f >= 0 && f <= 1 {
			w = f
		}
	}

	limit := n.Limit
	if limit <= 0 || limit > len(cands) {
		limit = len(cands)
	}

	selected := make([]*core.Candidate, 0, limit)
	remaining := make([]*core.Candidate, 0, len(cands))
	for _, c := range cands {
		if c == nil {
			continue
		}
		remaining = append(remaining, c)
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	maxPerProvider := n.MaxPerProvider
	if maxPerProvider <= 0 {
		maxPerProvider = 1
	}
	providerCount := make(map[string]int, limit)

	// 榜首直接入选，多样性不折扣最优匹配。
	selected = append(selected, remaining[0])
	countProvider(providerCount, remaining[0])
	remaining = remaining[1:]

	for len(selected) < limit && len(remaining) > 0 {
		bestIdx := -1
		bestScore := -1.0
		for i, c := range remaining {
			if pid := normKey(c.ProviderID()); pid != "" && providerCount[pid] >= maxPerProvider {
				continue
			}
			div := diversityScore(c, selected)
			combined := (1-w)*c.MatchScore + w*div
			if combined > bestScore {
				bestScore = combined
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		pick := remaining[bestIdx]
		pick.PutLabel("diversity_score", utils.Label{
			Value:  fmt.Sprintf("%.3f", diversityScore(pick, selected)),
			Source: "rerank",
		})
		selected = append(selected, pick)
		countProvider(providerCount, pick)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected, nil
}

func countProvider(counts map[string]int, c *core.Candidate) {
	if pid := normKey(c.ProviderID()); pid != "" {
		counts[pid]++
	}
}

// diversityScore 计算候选相对已选集合的多样性，乘法叠加。
func diversityScore(c *core.Candidate, selected []*core.Candidate) float64 {
	score := 1.0
	for _, s := range selected {
		if sameKey(c.ProviderID(), s.ProviderID()) {
			score *= 0.3
		}
		if c.Activity != nil && s.Activity != nil {
			if sameKey(c.Activity.Category, s.Activity.Category) {
				score *= 0.7
			}
			if sameKey(c.Activity.Location.Neighborhood, s.Activity.Location.Neighborhood) {
				score *= 0.8
			}
		}
	}
	return score
}

func sameKey(a, b string) bool {
	a = normKey(a)
	return a != "" && a == normKey(b)
}

func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
