// Package filter 在召回之后、打分之前按结构化条件与业务规则筛掉候选。
package filter

import (
	"context"

	"github.com/rushteam/famkit/core"
)

// Filter 是过滤器的抽象接口，用于判断一个候选是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断候选是否应该被过滤
	ShouldFilter(ctx context.Context, mctx *core.MatchContext, cand *core.Candidate) (bool, error)
}
