// Package normalize 把异构、字段残缺的向量检索负载归一化为统一的
// 活动画像（core.ActivityRecord）。
//
// 设计要点：
//   - 按来源形状（provider / event / session）分派各自的映射函数，
//     不做跨形状的任意字段名猜测
//   - 字段未知时退化为零值/nil，单个候选永远不会因脏数据失败
//   - 各启发式抽取（年龄/排期/位置/定价）是独立可测的纯函数
package normalize

import (
	"context"
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/conv"
	"github.com/rushteam/famkit/pkg/utils"
)

// Record 把单条候选负载归一化为活动画像。从不失败。
func Record(id string, source core.SourceKind, payload map[string]any) (*core.ActivityRecord, AgeSource) {
	if payload == nil {
		payload = map[string]any{}
	}
	var rec *core.ActivityRecord
	switch source {
	case core.SourceEvent:
		rec = mapEvent(id, payload)
	case core.SourceSession:
		rec = mapSession(id, payload)
	default:
		rec = mapProvider(id, payload)
	}

	ageRange, ageSrc := ExtractAgeRange(payload)
	rec.AgeRange = ageRange
	rec.Interests = ExtractInterests(rec.Category, rec.Provider.Name, rec.Name)
	rec.Location = ExtractLocation(payload)
	rec.Pricing = ExtractPricing(payload)
	return rec, ageSrc
}

// mapProvider 映射机构记录：长期开课的主体，排期缺省为周期性。
func mapProvider(id string, p map[string]any) *core.ActivityRecord {
	name, _ := conv.FirstString(p, "company_name", "name")
	desc, _ := conv.FirstString(p, "description", "about")
	category, _ := conv.FirstString(p, "category", "type", "activity_type")
	providerID, ok := conv.FirstString(p, "provider_id", "providerId")
	if !ok {
		providerID = id
	}

	rec := &core.ActivityRecord{
		ProviderID:  providerID,
		Name:        name,
		Description: desc,
		Category:    category,
		Provider:    extractProvider(p, name),
	}
	rec.Schedule = ExtractSchedule(p, name+" "+desc, true)
	return rec
}

// mapEvent 映射一次性活动记录：排期缺省为非周期性。
func mapEvent(id string, p map[string]any) *core.ActivityRecord {
	name, _ := conv.FirstString(p, "title", "name")
	desc, _ := conv.FirstString(p, "description")
	category, _ := conv.FirstString(p, "category", "event_type", "type")
	providerID, ok := conv.FirstString(p, "provider_id", "organizer_id")
	if !ok {
		providerID = id
	}
	organizer, _ := conv.FirstString(p, "organizer", "host")

	rec := &core.ActivityRecord{
		ProviderID:  providerID,
		Name:        name,
		Description: desc,
		Category:    category,
		Provider:    extractProvider(p, organizer),
	}
	freeText := strings.Join([]string{name, desc, stringField(p, "date"), stringField(p, "start_time")}, " ")
	rec.Schedule = ExtractSchedule(p, freeText, false)
	return rec
}

// mapSession 映射课程/班次记录：挂在机构下的具体排期单元。
func mapSession(id string, p map[string]any) *core.ActivityRecord {
	name, _ := conv.FirstString(p, "program_name", "name", "title")
	desc, _ := conv.FirstString(p, "description")
	category, _ := conv.FirstString(p, "category", "type")
	providerID, ok := conv.FirstString(p, "provider_id", "providerId")
	if !ok {
		providerID = id
	}
	programID, _ := conv.FirstString(p, "program_id", "session_id")
	if programID == "" {
		programID = id
	}
	providerName, _ := conv.FirstString(p, "provider_name", "company_name")

	rec := &core.ActivityRecord{
		ProviderID:  providerID,
		ProgramID:   programID,
		Name:        name,
		Description: desc,
		Category:    category,
		Provider:    extractProvider(p, providerName),
	}
	rec.Schedule = ExtractSchedule(p, name+" "+desc, true)
	return rec
}

func extractProvider(p map[string]any, name string) core.ProviderInfo {
	info := core.ProviderInfo{Name: name}
	if rating, ok := conv.FirstFloat64(p, "rating", "avg_rating"); ok && rating > 0 {
		info.Rating = rating
	}
	if n, ok := conv.First(p, "review_count", "reviews", "reviewCount"); ok {
		if i, iok := conv.ToInt(n); iok && i > 0 {
			info.ReviewCount = i
		}
	}
	if v, ok := conv.First(p, "verified", "is_verified"); ok {
		if b, bok := conv.ToBool(v); bok {
			info.Verified = b
		}
	}
	if y, ok := conv.FirstFloat64(p, "years_experience", "experience_years"); ok && y > 0 {
		info.ExperienceYears = int(y)
	}
	return info
}

func stringField(m map[string]any, key string) string {
	s, _ := conv.ToString(m[key])
	return s
}

// Normalizer 是归一化 Node：对批次内每个候选填充 Activity。
// 单个候选的脏数据只会让画像更稀疏，不会让批次失败。
type Normalizer struct{}

func (n *Normalizer) Name() string        { return "normalize.metadata" }
func (n *Normalizer) Kind() pipeline.Kind { return pipeline.KindNormalize }

func (n *Normalizer) Process(
	_ context.Context,
	_ *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	for _, c := range cands {
		if c == nil {
			continue
		}
		rec, ageSrc := Record(c.ID, c.Source, c.Payload)
		c.Activity = rec
		c.PutLabel("age_source", utils.Label{Value: string(ageSrc), Source: "normalize"})
	}
	return cands, nil
}
