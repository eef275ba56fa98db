package filter

import (
	"context"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/utils"
)

// Node 是过滤 Node，可以组合多个过滤器。
// 任何一个过滤器返回 true 候选即被移除；
// 单个过滤器报错时跳过该过滤器，不中断批次。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string        { return "filter.node" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *Node) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 || len(cands) == 0 {
		return cands, nil
	}

	out := make([]*core.Candidate, 0, len(cands))
	for _, c := range cands {
		if c == nil {
			continue
		}

		dropped := false
		reason := ""
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, mctx, c)
			if err != nil {
				continue
			}
			if ok {
				dropped = true
				reason = f.Name()
				break
			}
		}

		if dropped {
			c.PutLabel("filtered", utils.Label{Value: "true", Source: reason})
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// FromFilters 按请求的结构化过滤条件装配过滤器集合。
func FromFilters(sf *core.SearchFilters) []Filter {
	if sf == nil {
		return nil
	}
	var fs []Filter
	if len(sf.ExcludeProviders) > 0 {
		fs = append(fs, &ProviderBlock{ProviderIDs: sf.ExcludeProviders})
	}
	if len(sf.Categories) > 0 {
		fs = append(fs, &CategoryAllow{Categories: sf.Categories})
	}
	if len(sf.Neighborhoods) > 0 {
		fs = append(fs, &NeighborhoodAllow{Neighborhoods: sf.Neighborhoods})
	}
	if sf.MaxPrice > 0 {
		fs = append(fs, &MaxPrice{Limit: sf.MaxPrice})
	}
	if sf.RuleExpr != "" {
		fs = append(fs, &Rule{Expr: sf.RuleExpr})
	}
	return fs
}
