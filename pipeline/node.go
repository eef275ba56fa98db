package pipeline

import (
	"context"

	"github.com/rushteam/famkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall    Kind = "recall"    // 召回阶段：向量检索生成候选集
	KindNormalize Kind = "normalize" // 归一化阶段：原始负载 → 活动画像
	KindFilter    Kind = "filter"    // 过滤阶段：剔除不符合约束的候选
	KindEnrich    Kind = "enrich"    // 补全阶段：回填机构质量等特征
	KindRank      Kind = "rank"      // 排序阶段：因子打分、融合并排序
	KindReRank    Kind = "rerank"    // 重排阶段：在排序结果上做多样性选择
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态，
// 方便召回生成、过滤截断、重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		mctx *core.MatchContext,
		cands []*core.Candidate,
	) ([]*core.Candidate, error)
}
