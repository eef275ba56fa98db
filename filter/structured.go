package filter

import (
	"context"
	"strings"

	"github.com/rushteam/famkit/core"
)

// CategoryAllow 只保留指定类目的候选。类目未知的候选放行，
// 留给打分阶段用低兴趣分处理，而不是在过滤层武断淘汰。
type CategoryAllow struct {
	Categories []string
}

func (f *CategoryAllow) Name() string { return "filter.category" }

func (f *CategoryAllow) ShouldFilter(
	_ context.Context,
	_ *core.MatchContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	cat := ""
	if cand.Activity != nil {
		cat = strings.ToLower(strings.TrimSpace(cand.Activity.Category))
	}
	if cat == "" {
		return false, nil
	}
	for _, c := range f.Categories {
		if cat == strings.ToLower(strings.TrimSpace(c)) {
			return false, nil
		}
	}
	return true, nil
}

// NeighborhoodAllow 只保留指定街区的候选。街区未知放行。
type NeighborhoodAllow struct {
	Neighborhoods []string
}

func (f *NeighborhoodAllow) Name() string { return "filter.neighborhood" }

func (f *NeighborhoodAllow) ShouldFilter(
	_ context.Context,
	_ *core.MatchContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	nb := ""
	if cand.Activity != nil {
		nb = strings.ToLower(strings.TrimSpace(cand.Activity.Location.Neighborhood))
	}
	if nb == "" {
		return false, nil
	}
	for _, n := range f.Neighborhoods {
		if nb == strings.ToLower(strings.TrimSpace(n)) {
			return false, nil
		}
	}
	return true, nil
}

// MaxPrice 过滤费用超过上限的候选。免费活动与费用未知的候选放行。
type MaxPrice struct {
	Limit float64
}

func (f *MaxPrice) Name() string { return "filter.max_price" }

func (f *MaxPrice) ShouldFilter(
	_ context.Context,
	_ *core.MatchContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	if cand.Activity == nil || f.Limit <= 0 {
		return false, nil
	}
	pricing := cand.Activity.Pricing
	if pricing.Type == core.PricingFree {
		return false, nil
	}
	cost := pricing.EffectiveCost()
	if cost <= 0 {
		return false, nil
	}
	return cost > f.Limit, nil
}
