package core

import "context"

// KeyValueStore 是通用 KV 存储的领域接口。
//
// 使用场景：
//   - 机构特征缓存（feature 模块的本地/Redis 回源）
//   - 候选负载补全（只读数据源的一种接入方式）
//
// 实现：
//   - store.MemoryStore（内存，测试/原型）
//   - store.RedisStore（生产常用）
type KeyValueStore interface {
	// Name 返回存储名称
	Name() string

	// Get 读取 key；key 不存在时返回 ErrStoreNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入 key，ttl 单位为秒（可选，0 表示不过期）
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除 key
	Delete(ctx context.Context, key string) error

	// BatchGet 批量读取；不存在的 key 不出现在结果中
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)
}
