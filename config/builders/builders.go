// Package builders 在 init 中注册内置 Node 的配置构建器。
// 配置驱动入口需空导入本包：
//
//	import _ "github.com/rushteam/famkit/config/builders"
package builders

import (
	"fmt"

	"github.com/rushteam/famkit/config"
	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/filter"
	"github.com/rushteam/famkit/normalize"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/conv"
	"github.com/rushteam/famkit/rank"
	"github.com/rushteam/famkit/rerank"
)

func init() {
	config.Register("recall.vector", buildVectorRecallNode)
	config.Register("normalize.metadata", buildNormalizeNode)
	config.Register("filter.node", buildFilterNode)
	config.Register("rank.factors", buildRankNode)
	config.Register("rerank.diversity", buildDiversityNode)
	config.Register("rerank.topn", buildTopNNode)
}

// buildVectorRecallNode 拒绝从纯配置构建：召回节点需要注入
// Embedder 与 VectorService 客户端，属于代码装配职责。
func buildVectorRecallNode(_ map[string]any) (pipeline.Node, error) {
	return nil, fmt.Errorf("recall.vector requires injected embedder and vector service; assemble it in code")
}

func buildNormalizeNode(_ map[string]any) (pipeline.Node, error) {
	return &normalize.Normalizer{}, nil
}

func buildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	sf := &core.SearchFilters{
		Categories:       conv.ToStringSlice(cfg["categories"]),
		Neighborhoods:    conv.ToStringSlice(cfg["neighborhoods"]),
		MaxPrice:         conv.ConfigGetFloat64(cfg, "max_price", 0),
		ExcludeProviders: conv.ToStringSlice(cfg["exclude_providers"]),
		RuleExpr:         conv.ConfigGet[string](cfg, "rule", ""),
	}
	return &filter.Node{Filters: filter.FromFilters(sf)}, nil
}

func buildRankNode(cfg map[string]any) (pipeline.Node, error) {
	w := rank.DefaultWeights()
	if weights, ok := cfg["weights"].(map[string]any); ok {
		w.Age = conv.ConfigGetFloat64(weights, "age", w.Age)
		w.Interests = conv.ConfigGetFloat64(weights, "interests", w.Interests)
		w.Location = conv.ConfigGetFloat64(weights, "location", w.Location)
		w.Schedule = conv.ConfigGetFloat64(weights, "schedule", w.Schedule)
		w.Budget = conv.ConfigGetFloat64(weights, "budget", w.Budget)
		w.Quality = conv.ConfigGetFloat64(weights, "quality", w.Quality)
		w.Vector = conv.ConfigGetFloat64(weights, "vector", w.Vector)
		w.Cutoff = conv.ConfigGetFloat64(weights, "cutoff", w.Cutoff)
	}
	opts := []rank.Option{rank.WithWeights(w)}
	if c := conv.ConfigGetInt(cfg, "concurrency", 0); c > 0 {
		opts = append(opts, rank.WithConcurrency(c))
	}
	return rank.NewNode(opts...), nil
}

func buildDiversityNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.Diversity{
		Weight:         conv.ConfigGetFloat64(cfg, "weight", 0),
		Limit:          conv.ConfigGetInt(cfg, "limit", 0),
		MaxPerProvider: conv.ConfigGetInt(cfg, "max_per_provider", 0),
	}, nil
}

func buildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	n := conv.ConfigGetInt(cfg, "n", 0)
	if n <= 0 {
		return nil, fmt.Errorf("rerank.topn requires positive n")
	}
	return &rerank.TopN{N: n}, nil
}
