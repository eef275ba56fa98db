// Package feature 提供机构质量特征的获取与回填。
// 特征来源可以是 KV 存储（缓存/自建库）或 Feast（线上特征库），
// 二者都实现 core.FeatureService，可经 Chain 组合做降级。
package feature

import (
	"context"
	"encoding/json"

	"github.com/rushteam/famkit/core"
)

const kvKeyPrefix = "provider:features:"

// KVService 是基于 KeyValueStore 的特征服务。
// 特征以 JSON 编码的 map[string]float64 存在 kvKeyPrefix+providerID 下。
type KVService struct {
	Store core.KeyValueStore

	// Prefix 覆盖默认 key 前缀（可选）。
	Prefix string
}

// NewKVService 创建 KV 特征服务。
func NewKVService(store core.KeyValueStore) *KVService {
	return &KVService{Store: store}
}

func (s *KVService) Name() string { return "feature.kv" }

func (s *KVService) key(providerID string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = kvKeyPrefix
	}
	return prefix + providerID
}

// GetProviderFeatures 获取单个机构的特征。
func (s *KVService) GetProviderFeatures(ctx context.Context, providerID string) (map[string]float64, error) {
	if s.Store == nil {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeUnavailable, "feature: store not configured")
	}
	raw, err := s.Store.Get(ctx, s.key(providerID))
	if err != nil {
		return nil, err
	}
	features := make(map[string]float64)
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput, "feature: decode features: "+err.Error())
	}
	return features, nil
}

// BatchGetProviderFeatures 批量获取机构特征。
// 不存在或解码失败的机构不出现在结果中。
func (s *KVService) BatchGetProviderFeatures(ctx context.Context, providerIDs []string) (map[string]map[string]float64, error) {
	if s.Store == nil {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeUnavailable, "feature: store not configured")
	}
	if len(providerIDs) == 0 {
		return map[string]map[string]float64{}, nil
	}

	keys := make([]string, 0, len(providerIDs))
	keyToID := make(map[string]string, len(providerIDs))
	for _, id := range providerIDs {
		k := s.key(id)
		keys = append(keys, k)
		keyToID[k] = id
	}

	raws, err := s.Store.BatchGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]float64, len(raws))
	for k, raw := range raws {
		features := make(map[string]float64)
		if err := json.Unmarshal(raw, &features); err != nil {
			continue
		}
		out[keyToID[k]] = features
	}
	return out, nil
}

// SetProviderFeatures 写入机构特征（供缓存回填/离线灌库使用）。
func (s *KVService) SetProviderFeatures(ctx context.Context, providerID string, features map[string]float64, ttl ...int) error {
	if s.Store == nil {
		return core.NewDomainError(core.ModuleFeature, core.ErrorCodeUnavailable, "feature: store not configured")
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, s.key(providerID), raw, ttl...)
}

// Close 实现 core.FeatureService。
func (s *KVService) Close(_ context.Context) error { return nil }

var _ core.FeatureService = (*KVService)(nil)
