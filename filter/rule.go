package filter

import (
	"context"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/dsl"
)

// Rule 是 CEL 业务规则过滤器：表达式求值为 false 的候选被过滤。
// 业务方用一行表达式声明放行规则，无需改引擎代码，例如：
//
//	!("peanut" in family.allergies) || candidate.category != "cooking"
//
// 表达式报错时保留候选（规则失效不应清空结果），错误向上返回由
// Node 记录并跳过。
type Rule struct {
	Expr string
}

func (f *Rule) Name() string { return "filter.rule" }

func (f *Rule) ShouldFilter(
	_ context.Context,
	mctx *core.MatchContext,
	cand *core.Candidate,
) (bool, error) {
	if f.Expr == "" || cand == nil {
		return false, nil
	}
	pass, err := dsl.NewEval(cand, mctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return !pass, nil
}
