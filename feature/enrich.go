package feature

import (
	"context"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/utils"
)

// EnrichNode 是机构质量回填节点：候选画像里评分/评价数等质量元数据
// 缺失时，从特征服务批量拉取补齐，供质量分计算使用。
// - 只回填缺失字段，负载里已有的值不被覆盖
// - 特征服务失败时跳过回填，不中断批次（质量分退化为中性基准）
// - 写入 labels：quality_source
type EnrichNode struct {
	Service core.FeatureService
}

func (n *EnrichNode) Name() string        { return "feature.enrich" }
func (n *EnrichNode) Kind() pipeline.Kind { return pipeline.KindEnrich }

func (n *EnrichNode) Process(
	ctx context.Context,
	_ *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Service == nil || len(cands) == 0 {
		return cands, nil
	}

	// 只为质量画像稀疏的候选发起请求。
	sparse := make(map[string][]*core.Candidate)
	for _, c := range cands {
		if c == nil || c.Activity == nil {
			continue
		}
		pid := c.ProviderID()
		if pid == "" || !sparseQuality(c.Activity.Provider) {
			continue
		}
		sparse[pid] = append(sparse[pid], c)
	}
	if len(sparse) == 0 {
		return cands, nil
	}

	ids := make([]string, 0, len(sparse))
	for pid := range sparse {
		ids = append(ids, pid)
	}

	features, err := n.Service.BatchGetProviderFeatures(ctx, ids)
	if err != nil {
		return cands, nil
	}

	for pid, group := range sparse {
		f, ok := features[pid]
		if !ok {
			continue
		}
		for _, c := range group {
			backfill(&c.Activity.Provider, f)
			c.PutLabel("quality_source", utils.Label{Value: n.Service.Name(), Source: "feature"})
		}
	}
	return cands, nil
}

// sparseQuality 判断质量画像是否缺失到值得回填。
func sparseQuality(info core.ProviderInfo) bool {
	return info.Rating <= 0 || info.ReviewCount <= 0
}

// backfill 用特征值补齐缺失字段，不覆盖负载里已有的值。
func backfill(info *core.ProviderInfo, features map[string]float64) {
	if info.Rating <= 0 {
		if v, ok := features["rating"]; ok && v > 0 {
			info.Rating = v
		}
	}
	if info.ReviewCount <= 0 {
		if v, ok := features["review_count"]; ok && v > 0 {
			info.ReviewCount = int(v)
		}
	}
	if !info.Verified {
		if v, ok := features["verified"]; ok && v >= 1 {
			info.Verified = true
		}
	}
	if info.ExperienceYears <= 0 {
		if v, ok := features["experience_years"]; ok && v > 0 {
			info.ExperienceYears = int(v)
		}
	}
}
