// Package recall 负责候选召回：从家庭画像构建查询文本，
// 经外部 Embedder 生成查询向量后调用向量检索服务。
package recall

import (
	"fmt"
	"strings"

	"github.com/rushteam/famkit/core"
)

// BuildQuery 把家庭画像折算为自然语言查询文本，供外部向量化。
// 逐句拼接：孩子概述、位置、活动偏好、时段、预算、语言、备注。
// 画像越稀疏句子越少，全空时返回通用句兜底。
func BuildQuery(family *core.FamilyProfile) string {
	if family == nil {
		return "family activities for children"
	}

	var parts []string

	if len(family.Children) > 0 {
		parts = append(parts, childrenSummary(family.Children))
	}
	if loc := locationSummary(family.Location); loc != "" {
		parts = append(parts, loc)
	}
	if types := family.Preferences.ActivityTypes; len(types) > 0 {
		parts = append(parts, "looking for "+strings.Join(types, ", ")+" activities")
	}
	if slots := family.Preferences.Schedule; len(slots) > 0 {
		parts = append(parts, "available during "+slotSummary(slots))
	}
	if b := family.Preferences.Budget; b != nil && b.Max > 0 {
		parts = append(parts, fmt.Sprintf("budget up to %.0f %s", b.Max, currencyOf(b)))
	}
	if langs := family.Preferences.Languages; len(langs) > 0 {
		parts = append(parts, "preferred languages "+strings.Join(langs, ", "))
	}
	if notes := strings.TrimSpace(family.Notes); notes != "" {
		parts = append(parts, notes)
	}

	if len(parts) == 0 {
		return "family activities for children"
	}
	return strings.Join(parts, ". ")
}

// childrenSummary 产出"a 7 year old interested in art, soccer"式的概述。
func childrenSummary(children []core.Child) string {
	var segs []string
	for _, c := range children {
		seg := fmt.Sprintf("a %d year old", c.Age)
		if len(c.Interests) > 0 {
			seg += " interested in " + strings.Join(c.Interests, ", ")
		}
		if c.SpecialNeeds != "" {
			seg += " with special needs (" + c.SpecialNeeds + ")"
		}
		segs = append(segs, seg)
	}
	return "activities for " + strings.Join(segs, " and ")
}

func locationSummary(loc core.Location) string {
	switch {
	case loc.Neighborhood != "" && loc.City != "":
		return "near " + loc.Neighborhood + ", " + loc.City
	case loc.Neighborhood != "":
		return "near " + loc.Neighborhood
	case loc.City != "":
		return "in " + loc.City
	case loc.ZipCode != "":
		return "near zip code " + loc.ZipCode
	default:
		return ""
	}
}

func slotSummary(slots []core.TimeSlot) string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, strings.ReplaceAll(string(s), "_", " "))
	}
	return strings.Join(out, ", ")
}

func currencyOf(b *core.Budget) string {
	if b.Currency != "" {
		return b.Currency
	}
	return "USD"
}
