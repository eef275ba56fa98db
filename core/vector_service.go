package core

import "context"

// SourceKind 标记向量检索命中的来源表形状。
// 上游数据按来源分为三种已知形状，Normalizer 按形状分派映射函数，
// 避免一个巨型函数去猜测任意字段名。
type SourceKind string

const (
	SourceProvider SourceKind = "provider" // 机构记录
	SourceEvent    SourceKind = "event"    // 一次性活动记录
	SourceSession  SourceKind = "session"  // 课程/班次记录
)

// SearchHit 是向量检索的单条命中：点 ID + 相似度 + 原始负载。
// Payload 字段名与形状随来源表不同，且经常缺失；归一化交给 Normalizer。
type SearchHit struct {
	ID      string
	Score   float64 // 相似度，[0,1]
	Source  SourceKind
	Payload map[string]any
}

// VectorSearchRequest 向量搜索请求
type VectorSearchRequest struct {
	// Collection 集合名称
	Collection string

	// Vector 查询向量
	Vector []float64

	// TopK 返回 TopK 个最相似的结果
	TopK int

	// Filters 过滤条件（可选），透传给底层索引
	Filters map[string]any
}

// VectorSearchResult 向量搜索结果
type VectorSearchResult struct {
	// Hits 命中列表（按相似度排序）
	Hits []SearchHit
}

// VectorService 是向量检索服务的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由外部协作方实现
//   - 引擎不自建索引、不重试；超时与重试策略属于实现方或调用方
//
// 实现：
//   - 测试中用内存假实现
//   - 生产上对接外部 ANN 索引（Milvus、pgvector、Qdrant 等均可）
type VectorService interface {
	// Search 向量搜索
	Search(ctx context.Context, req *VectorSearchRequest) (*VectorSearchResult, error)

	// Close 关闭连接
	Close() error
}

// Embedder 把检索文本编码为查询向量。
// 嵌入生成是外部协作方（引擎只负责拼出检索文本）。
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
