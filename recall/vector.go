package recall

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/utils"
)

const (
	// overFetchFactor 超量召回倍率：过滤与截断会淘汰一部分候选，
	// 多取一些保证最终名额能填满。
	overFetchFactor = 3

	defaultLimit   = 10
	defaultTimeout = 5 * time.Second
)

// VectorNode 是向量检索召回 Node：
// 画像 → 查询文本 → Embedder → VectorService.Search → 候选批次。
// - 超量召回 limit×overFetchFactor
// - 整体失败（嵌入或检索）以 SEARCH_UNAVAILABLE 上抛，本层不重试
// - 写入 labels：recall_source；写入 params：query
type VectorNode struct {
	Embedder core.Embedder
	Service  core.VectorService

	// Collection 是向量集合名。
	Collection string

	// Timeout 是单次嵌入+检索的总超时，<=0 时取 defaultTimeout。
	Timeout time.Duration
}

func (n *VectorNode) Name() string        { return "recall.vector" }
func (n *VectorNode) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *VectorNode) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Embedder == nil || n.Service == nil {
		return nil, core.NewDomainError(core.ModuleRecall, core.ErrorCodeUnavailable, "recall: embedder or vector service not configured")
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	limit := defaultLimit
	if mctx != nil {
		if v, ok := mctx.Param("limit").(int); ok && v > 0 {
			limit = v
		}
	}

	query := BuildQuery(familyOf(mctx))
	if mctx != nil {
		mctx.SetParam("query", query)
	}

	vector, err := n.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleRecall, core.ErrorCodeSearchUnavailable,
			fmt.Sprintf("recall: embed query: %v", err))
	}

	req := &core.VectorSearchRequest{
		Collection: n.Collection,
		Vector:     vector,
		TopK:       limit * overFetchFactor,
		Filters:    searchFilters(mctx),
	}
	result, err := n.Service.Search(ctx, req)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleRecall, core.ErrorCodeSearchUnavailable,
			fmt.Sprintf("recall: vector search: %v", err))
	}
	if result == nil {
		return nil, nil
	}

	cands := make([]*core.Candidate, 0, len(result.Hits))
	for _, hit := range result.Hits {
		c := core.NewCandidate(hit.ID, hit.Source)
		c.VectorSimilarity = hit.Score
		c.Payload = hit.Payload
		c.PutLabel("recall_source", utils.Label{Value: n.Name(), Source: "recall"})
		c.PutLabel("vector_similarity", utils.Label{Value: strconv.FormatFloat(hit.Score, 'f', 3, 64), Source: "recall"})
		cands = append(cands, c)
	}
	return cands, nil
}

func familyOf(mctx *core.MatchContext) *core.FamilyProfile {
	if mctx == nil {
		return nil
	}
	return mctx.Family
}

// searchFilters 把结构化过滤条件折算为底层索引可透传的形式。
// 本地过滤节点仍会再筛一遍，索引侧的下推只是缩小召回面。
func searchFilters(mctx *core.MatchContext) map[string]any {
	if mctx == nil || mctx.Filters == nil {
		return nil
	}
	f := mctx.Filters
	out := make(map[string]any, 3)
	if len(f.Categories) > 0 {
		out["categories"] = f.Categories
	}
	if len(f.Neighborhoods) > 0 {
		out["neighborhoods"] = f.Neighborhoods
	}
	if f.MaxPrice > 0 {
		out["max_price"] = f.MaxPrice
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
