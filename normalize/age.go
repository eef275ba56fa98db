package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/conv"
)

// 年龄区间抽取：上游数据极少带干净的适龄字段，这里按固定顺序做级联，
// 命中即止：
//  1. 显式数值字段（含多种拼写），要求 0 <= min <= max <= 25
//  2. 年级字符串（"K-5" / "PreK-2" / "6-12"），经年级→年龄表折算
//  3. 适龄自由文本字段（关键词 + 数值模式）
//  4. 名称/描述全文扫描（同第 3 步的模式）
//  5. 全部未命中 → nil（从不捏造）
//
// 每一步都是独立可测的纯函数。

// AgeSource 标记区间由级联的哪一步产出，用于观测。
type AgeSource string

const (
	AgeSourceExplicit AgeSource = "explicit"
	AgeSourceGrade    AgeSource = "grade"
	AgeSourceText     AgeSource = "text"
	AgeSourceScan     AgeSource = "scan"
	AgeSourceNone     AgeSource = "none"
)

var (
	minAgeKeys = []string{"min_age", "minAge", "age_min", "ageMin"}
	maxAgeKeys = []string{"max_age", "maxAge", "age_max", "ageMax"}
	gradeKeys  = []string{"grade_range", "grades", "grade"}
	agesKeys   = []string{"ages", "age_range", "age_group", "ageRange"}
	textKeys   = []string{"name", "title", "program_name", "description"}
)

// ExtractAgeRange 对单个候选负载执行完整级联。
func ExtractAgeRange(payload map[string]any) (*core.AgeRange, AgeSource) {
	if r := AgeFromFields(payload); r != nil {
		return r, AgeSourceExplicit
	}
	if s, ok := conv.FirstString(payload, gradeKeys...); ok {
		if r := AgeFromGrades(s); r != nil {
			return r, AgeSourceGrade
		}
	}
	if s, ok := conv.FirstString(payload, agesKeys...); ok {
		if r := AgeFromText(s); r != nil {
			return r, AgeSourceText
		}
	}
	for _, k := range textKeys {
		if s, ok := conv.ToString(payload[k]); ok {
			if r := AgeFromText(s); r != nil {
				return r, AgeSourceScan
			}
		}
	}
	return nil, AgeSourceNone
}

// AgeFromFields 读取显式数值字段（级联第 1 步）。
// 仅当 0 <= min <= max <= 25 时接受。
func AgeFromFields(payload map[string]any) *core.AgeRange {
	min, okMin := conv.FirstFloat64(payload, minAgeKeys...)
	max, okMax := conv.FirstFloat64(payload, maxAgeKeys...)
	if !okMin || !okMax {
		return nil
	}
	lo, hi := int(min), int(max)
	if lo < 0 || hi > 25 || lo > hi {
		return nil
	}
	return &core.AgeRange{Min: lo, Max: hi}
}

// gradeAges 是年级→年龄折算表：PreK≈3-4、K≈5-6、grade N≈(5+N)-(6+N)。
func gradeAges(token string) (int, int, bool) {
	switch token {
	case "prek", "pk", "preschool":
		return 3, 4, true
	case "k", "kindergarten":
		return 5, 6, true
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > 12 {
		return 0, 0, false
	}
	return 5 + n, 6 + n, true
}

// AgeFromGrades 解析年级字符串（级联第 2 步）。
// 支持单年级（"K"、"3"）与区间（"K-5"、"PreK-2"、"6-12"）两种形式。
func AgeFromGrades(s string) *core.AgeRange {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	// "pre-k" 自带连字符，先折叠避免被当成区间切开
	s = strings.ReplaceAll(s, "pre-k", "prek")
	s = strings.TrimPrefix(s, "grades ")
	s = strings.TrimPrefix(s, "grade ")

	if lo, hi, found := strings.Cut(s, "-"); found {
		loMin, _, okLo := gradeAges(strings.TrimSpace(lo))
		_, hiMax, okHi := gradeAges(strings.TrimSpace(hi))
		if !okLo || !okHi || loMin > hiMax {
			return nil
		}
		return &core.AgeRange{Min: loMin, Max: hiMax}
	}

	min, max, ok := gradeAges(s)
	if !ok {
		return nil
	}
	return &core.AgeRange{Min: min, Max: max}
}

// 关键词表：字面命中时直接给出区间。
// "adult"/"18+" 是这里唯一允许越过 25 岁上限的形式。
var ageKeywords = []struct {
	keyword  string
	min, max int
}{
	{"all ages", 0, 18},
	{"18+", 18, 99},
	{"adult", 18, 99},
	{"toddler", 1, 3},
	{"preschool", 3, 5},
	{"infant", 0, 2},
	{"baby", 0, 2},
}

var (
	reAgesRange  = regexp.MustCompile(`(?i)ages?\s+(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})`)
	reYearOlds   = regexp.MustCompile(`(?i)(?:for\s+)?(\d{1,2})\s*[- ]?year[- ]?olds?`)
	reBareRange  = regexp.MustCompile(`(\d{1,2})\s*[-–]\s*(\d{1,2})`)
)

// AgeFromText 解析自由文本中的适龄描述（级联第 3/4 步共用）。
// 先查关键词，再依次尝试 "ages 4-8"、"for 6 year olds"（±1 年）、裸区间 "3-5"。
func AgeFromText(s string) *core.AgeRange {
	if s == "" {
		return nil
	}
	lower := strings.ToLower(s)
	for _, kw := range ageKeywords {
		if strings.Contains(lower, kw.keyword) {
			return &core.AgeRange{Min: kw.min, Max: kw.max}
		}
	}

	if m := reAgesRange.FindStringSubmatch(s); m != nil {
		if r := rangeFromTokens(m[1], m[2]); r != nil {
			return r
		}
	}
	if m := reYearOlds.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 0 && n <= 25 {
			min := n - 1
			if min < 0 {
				min = 0
			}
			return &core.AgeRange{Min: min, Max: n + 1}
		}
	}
	if m := reBareRange.FindStringSubmatch(s); m != nil {
		if r := rangeFromTokens(m[1], m[2]); r != nil {
			return r
		}
	}
	return nil
}

func rangeFromTokens(lo, hi string) *core.AgeRange {
	min, errLo := strconv.Atoi(lo)
	max, errHi := strconv.Atoi(hi)
	if errLo != nil || errHi != nil {
		return nil
	}
	if min < 0 || max > 25 || min > max {
		return nil
	}
	return &core.AgeRange{Min: min, Max: max}
}
