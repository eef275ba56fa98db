package feature

import (
	"context"

	"github.com/rushteam/famkit/core"
)

// Chain 按顺序尝试多个特征服务，返回第一个命中的结果。
// 典型用法：KV 缓存在前、Feast 在后，缓存未命中再走线上特征库。
type Chain struct {
	Services []core.FeatureService
}

// NewChain 创建链式特征服务。
func NewChain(services ...core.FeatureService) *Chain {
	return &Chain{Services: services}
}

func (c *Chain) Name() string { return "feature.chain" }

// GetProviderFeatures 逐个服务尝试，全部失败时返回最后一个错误。
func (c *Chain) GetProviderFeatures(ctx context.Context, providerID string) (map[string]float64, error) {
	var lastErr error
	for _, s := range c.Services {
		features, err := s.GetProviderFeatures(ctx, providerID)
		if err == nil && len(features) > 0 {
			return features, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound, "feature: provider features not found: "+providerID)
}

// BatchGetProviderFeatures 逐个服务补齐缺失机构的特征。
func (c *Chain) BatchGetProviderFeatures(ctx context.Context, providerIDs []string) (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64, len(providerIDs))
	missing := append([]string(nil), providerIDs...)

	for _, s := range c.Services {
		if len(missing) == 0 {
			break
		}
		got, err := s.BatchGetProviderFeatures(ctx, missing)
		if err != nil {
			continue
		}
		next := missing[:0]
		for _, id := range missing {
			if features, ok := got[id]; ok && len(features) > 0 {
				out[id] = features
			} else {
				next = append(next, id)
			}
		}
		missing = next
	}
	return out, nil
}

// Close 关闭所有下游服务，返回第一个错误。
func (c *Chain) Close(ctx context.Context) error {
	var firstErr error
	for _, s := range c.Services {
		if err := s.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ core.FeatureService = (*Chain)(nil)
