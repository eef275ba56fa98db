package filter

import (
	"context"
	"strings"

	"github.com/rushteam/famkit/core"
)

// ProviderBlock 过滤被屏蔽机构的候选。
// 机构 ID 比较大小写不敏感；候选无机构归属时放行。
type ProviderBlock struct {
	ProviderIDs []string
}

func (f *ProviderBlock) Name() string { return "filter.provider_block" }

func (f *ProviderBlock) ShouldFilter(
	_ context.Context,
	_ *core.MatchContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	pid := strings.ToLower(strings.TrimSpace(cand.ProviderID()))
	if pid == "" {
		return false, nil
	}
	for _, id := range f.ProviderIDs {
		if pid == strings.ToLower(strings.TrimSpace(id)) {
			return true, nil
		}
	}
	return false, nil
}
