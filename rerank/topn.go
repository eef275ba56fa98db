package rerank

import (
	"context"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
)

// TopN 是纯截断 ReRank：保留前 N 个候选，不做多样性权衡。
// 适合调用方自己控制多样性或明确要求按原始分数输出的场景。
type TopN struct {
	N int
}

func (n *TopN) Name() string        { return "rerank.topn" }
func (n *TopN) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopN) Process(
	_ context.Context,
	_ *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.N <= 0 || len(cands) <= n.N {
		return cands, nil
	}
	return cands[:n.N], nil
}
