package pipeline

import (
	"context"

	"github.com/rushteam/famkit/core"
)

// Pipeline 是 famkit 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
// 一次请求从召回开始，候选批次依次流过每个 Node。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	mctx *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := cands
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, mctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
