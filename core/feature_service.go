package core

import "context"

// FeatureService 是机构特征服务的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（feature / feast）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//
// 使用场景：
//   - 候选的机构质量元数据（评分、评价数、认证、从业年限）缺失时，
//     从特征库回填，供质量分计算使用
//
// 特征命名约定（value 统一为 float64）：
//   - rating: 1-5 评分
//   - review_count: 评价数
//   - verified: 0/1
//   - experience_years: 从业年限
type FeatureService interface {
	// Name 返回特征服务名称（用于日志/监控）
	Name() string

	// GetProviderFeatures 获取机构特征（单个机构）
	GetProviderFeatures(ctx context.Context, providerID string) (map[string]float64, error)

	// BatchGetProviderFeatures 批量获取机构特征（推荐使用，减少网络往返）
	BatchGetProviderFeatures(ctx context.Context, providerIDs []string) (map[string]map[string]float64, error)

	// Close 关闭特征服务，释放资源
	Close(ctx context.Context) error
}
