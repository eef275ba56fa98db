// Package engine 是推荐编排层：装配各阶段 Node，单趟执行并产出
// 带检索元数据与分阶段耗时的最终结果。
package engine

import (
	"context"
	"time"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/feature"
	"github.com/rushteam/famkit/filter"
	"github.com/rushteam/famkit/normalize"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/rank"
	"github.com/rushteam/famkit/recall"
	"github.com/rushteam/famkit/rerank"
)

// Options 是单次推荐请求的参数。
type Options struct {
	// Limit 是最终名额数，<=0 时取 10。
	Limit int

	// DiversityWeight 是多样性权重 ∈ [0,1]，nil 时取缺省 0.3。
	// 显式传 0 表示纯按分数排序、不做多样性折扣。
	DiversityWeight *float64

	// Filters 是结构化过滤条件（可选）。
	Filters *core.SearchFilters

	// IncludeScore 为 false 时清空结果里的数值分（只留解释），
	// 面向终端用户的出口通常不暴露内部分数。
	IncludeScore bool
}

// SearchMetadata 是一次检索的元信息。
type SearchMetadata struct {
	// TotalMatches 是通过打分截断、进入多样性选择前的候选数。
	TotalMatches int

	// FiltersApplied 是生效的过滤器名称列表。
	FiltersApplied []string

	// Query 是喂给外部向量化的检索文本。
	Query string
}

// Performance 是分阶段耗时（毫秒）。
type Performance struct {
	RecallMs    int64
	NormalizeMs int64
	FilterMs    int64
	EnrichMs    int64
	RankMs      int64
	ReRankMs    int64
	TotalMs     int64
}

// Result 是推荐结果。
type Result struct {
	Recommendations []*core.Candidate
	Metadata        SearchMetadata
	Performance     Performance
}

// Engine 编排一次完整的推荐：召回 → 归一化 → 过滤 → 补全 → 排序 → 重排。
// 本层不重试；上游检索失败原样上抛（SEARCH_UNAVAILABLE）。
type Engine struct {
	embedder   core.Embedder
	vector     core.VectorService
	features   core.FeatureService
	collection string
	timeout    time.Duration
	weights    rank.Weights
}

// Option 配置 Engine（依赖经构造注入，不使用包级单例）。
type Option func(*Engine)

// WithEmbedder 注入查询向量化协作方。
func WithEmbedder(e core.Embedder) Option {
	return func(eng *Engine) { eng.embedder = e }
}

// WithVectorService 注入向量检索协作方。
func WithVectorService(v core.VectorService) Option {
	return func(eng *Engine) { eng.vector = v }
}

// WithFeatureService 注入机构特征服务（可选，缺省不回填）。
func WithFeatureService(f core.FeatureService) Option {
	return func(eng *Engine) { eng.features = f }
}

// WithCollection 设置向量集合名。
func WithCollection(name string) Option {
	return func(eng *Engine) { eng.collection = name }
}

// WithSearchTimeout 设置单次嵌入+检索的总超时。
func WithSearchTimeout(d time.Duration) Option {
	return func(eng *Engine) { eng.timeout = d }
}

// WithWeights 覆盖缺省打分权重。
func WithWeights(w rank.Weights) Option {
	return func(eng *Engine) { eng.weights = w }
}

// New 创建 Engine。
func New(opts ...Option) *Engine {
	eng := &Engine{weights: rank.DefaultWeights()}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Recommend 执行一次推荐。
// 零候选（检索空、被过滤清空或全部低于截断线）是合法结果，
// 返回空列表与 TotalMatches=0，不报错。
func (eng *Engine) Recommend(ctx context.Context, family *core.FamilyProfile, opts Options) (*Result, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	mctx := &core.MatchContext{
		Family:  family,
		Filters: opts.Filters,
	}
	mctx.SetParam("limit", limit)
	if opts.DiversityWeight != nil {
		mctx.SetParam("diversity_weight", *opts.DiversityWeight)
	}

	filters := filter.FromFilters(opts.Filters)

	recallNode := &recall.VectorNode{
		Embedder:   eng.embedder,
		Service:    eng.vector,
		Collection: eng.collection,
		Timeout:    eng.timeout,
	}
	normalizeNode := &normalize.Normalizer{}
	filterNode := &filter.Node{Filters: filters}
	enrichNode := &feature.EnrichNode{Service: eng.features}
	rankNode := rank.NewNode(rank.WithWeights(eng.weights))
	rerankNode := &rerank.Diversity{Limit: limit}

	result := &Result{}
	started := time.Now()

	// 各阶段单独执行以采集耗时；语义与 pipeline.Pipeline.Run 一致。
	var cands []*core.Candidate
	var err error

	cands, err = runStage(ctx, mctx, recallNode, nil, &result.Performance.RecallMs)
	if err != nil {
		return nil, err
	}
	cands, err = runStage(ctx, mctx, normalizeNode, cands, &result.Performance.NormalizeMs)
	if err != nil {
		return nil, err
	}
	cands, err = runStage(ctx, mctx, filterNode, cands, &result.Performance.FilterMs)
	if err != nil {
		return nil, err
	}
	cands, err = runStage(ctx, mctx, enrichNode, cands, &result.Performance.EnrichMs)
	if err != nil {
		return nil, err
	}
	cands, err = runStage(ctx, mctx, rankNode, cands, &result.Performance.RankMs)
	if err != nil {
		return nil, err
	}
	result.Metadata.TotalMatches = len(cands)

	cands, err = runStage(ctx, mctx, rerankNode, cands, &result.Performance.ReRankMs)
	if err != nil {
		return nil, err
	}

	result.Performance.TotalMs = time.Since(started).Milliseconds()
	result.Recommendations = cands
	for _, f := range filters {
		result.Metadata.FiltersApplied = append(result.Metadata.FiltersApplied, f.Name())
	}
	if q, ok := mctx.Param("query").(string); ok {
		result.Metadata.Query = q
	}

	if !opts.IncludeScore {
		clearScores(cands)
	}
	return result, nil
}

func runStage(
	ctx context.Context,
	mctx *core.MatchContext,
	node pipeline.Node,
	cands []*core.Candidate,
	elapsedMs *int64,
) ([]*core.Candidate, error) {
	started := time.Now()
	out, err := node.Process(ctx, mctx, cands)
	*elapsedMs = time.Since(started).Milliseconds()
	return out, err
}

// clearScores 抹掉出口结果里的内部分数，只保留解释。
func clearScores(cands []*core.Candidate) {
	for _, c := range cands {
		if c == nil {
			continue
		}
		c.VectorSimilarity = 0
		c.PracticalScore = 0
		c.MatchScore = 0
		c.Ranking = core.FactorScores{}
	}
}
