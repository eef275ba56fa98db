package feast

import (
	"context"
	"strings"

	"github.com/rushteam/famkit/core"
)

// 机构特征在 Feast 中的特征视图与实体名。
const (
	defaultFeatureView = "provider_stats"
	defaultEntityKey   = "provider_id"
)

// providerFeatureNames 是质量回填需要的特征短名。
var providerFeatureNames = []string{"rating", "review_count", "verified", "experience_years"}

// Service 把 Feast 客户端适配为 core.FeatureService。
// 特征引用为 "<FeatureView>:<短名>"，返回时剥掉视图前缀。
type Service struct {
	Client Client

	// FeatureView 特征视图名，空时取 defaultFeatureView。
	FeatureView string

	// EntityKey 实体键名，空时取 defaultEntityKey。
	EntityKey string
}

// NewService 创建 Feast 特征服务。
func NewService(client Client) *Service {
	return &Service{Client: client}
}

func (s *Service) Name() string { return "feature.feast" }

// GetProviderFeatures 获取单个机构的特征。
func (s *Service) GetProviderFeatures(ctx context.Context, providerID string) (map[string]float64, error) {
	all, err := s.BatchGetProviderFeatures(ctx, []string{providerID})
	if err != nil {
		return nil, err
	}
	if features, ok := all[providerID]; ok {
		return features, nil
	}
	return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound, "feast: provider features not found: "+providerID)
}

// BatchGetProviderFeatures 批量获取机构特征。
// 无特征的机构不出现在结果中。
func (s *Service) BatchGetProviderFeatures(ctx context.Context, providerIDs []string) (map[string]map[string]float64, error) {
	if s.Client == nil {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeUnavailable, "feast: client not configured")
	}
	if len(providerIDs) == 0 {
		return map[string]map[string]float64{}, nil
	}

	view := s.FeatureView
	if view == "" {
		view = defaultFeatureView
	}
	entityKey := s.EntityKey
	if entityKey == "" {
		entityKey = defaultEntityKey
	}

	refs := make([]string, 0, len(providerFeatureNames))
	for _, name := range providerFeatureNames {
		refs = append(refs, view+":"+name)
	}
	rows := make([]map[string]interface{}, 0, len(providerIDs))
	for _, id := range providerIDs {
		rows = append(rows, map[string]interface{}{entityKey: id})
	}

	resp, err := s.Client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   refs,
		EntityRows: rows,
	})
	if err != nil {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeUnavailable, "feast: "+err.Error())
	}

	out := make(map[string]map[string]float64, len(providerIDs))
	for i, vec := range resp.FeatureVectors {
		if i >= len(providerIDs) {
			break
		}
		features := make(map[string]float64, len(vec.Values))
		for name, raw := range vec.Values {
			f, ok := raw.(float64)
			if !ok {
				continue
			}
			short := name
			if idx := strings.LastIndex(name, ":"); idx >= 0 {
				short = name[idx+1:]
			}
			features[short] = f
		}
		if len(features) > 0 {
			out[providerIDs[i]] = features
		}
	}
	return out, nil
}

// Close 关闭底层客户端。
func (s *Service) Close(_ context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Close()
}

var _ core.FeatureService = (*Service)(nil)
