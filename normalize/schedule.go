package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/conv"
)

// 排期抽取：优先读显式 days/times 字段；缺失时从自由文本推断
// 星期名与时段关键词。产出的 Times 统一为 "HH:MM" 24 小时制，
// 下游折算时段枚举时无需再做文本解析。

var dayAliases = map[string]string{
	"mon": "monday", "monday": "monday",
	"tue": "tuesday", "tues": "tuesday", "tuesday": "tuesday",
	"wed": "wednesday", "wednesday": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "thursday": "thursday",
	"fri": "friday", "friday": "friday",
	"sat": "saturday", "saturday": "saturday",
	"sun": "sunday", "sunday": "sunday",
}

var allWeekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
var allWeekendDays = []string{"saturday", "sunday"}

var (
	dayKeys  = []string{"days", "day_of_week", "schedule_days", "dayOfWeek"}
	timeKeys = []string{"times", "hours", "start_time", "time", "startTime"}
)

// recurringHints 按类目/类型文本判定是否周期性活动。
var recurringTrueHints = []string{"camp", "class", "program", "lesson", "course"}
var recurringFalseHints = []string{"event", "one-time", "one time", "drop-in"}

// ExtractSchedule 抽取活动排期。
// freeText 是名称+描述拼接文本，用于显式字段缺失时的推断；
// recurringDefault 是来源形状给出的缺省周期性（机构/课程 true，活动 false）。
func ExtractSchedule(payload map[string]any, freeText string, recurringDefault bool) core.Schedule {
	days := extractDays(payload)
	times := extractTimes(payload)

	if len(days) == 0 {
		days = daysFromText(freeText)
	}
	if len(times) == 0 {
		times = timesFromText(freeText)
	}

	sched := core.Schedule{
		Days:      days,
		Times:     times,
		Recurring: recurringFromText(payload, freeText, recurringDefault),
	}

	switch {
	case len(days) > 0 && len(times) > 0:
		sched.Flexibility = core.FlexFixed
	case len(days) > 0 || len(times) > 0:
		sched.Flexibility = core.FlexFlexible
	default:
		sched.Flexibility = core.FlexVeryFlexible
	}
	return sched
}

func extractDays(payload map[string]any) []string {
	v, ok := conv.First(payload, dayKeys...)
	if !ok {
		return nil
	}
	out := make([]string, 0, 4)
	seen := make(map[string]bool, 7)
	for _, raw := range conv.ToStringSlice(v) {
		if day, ok := NormalizeDay(raw); ok && !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out
}

func extractTimes(payload map[string]any) []string {
	v, ok := conv.First(payload, timeKeys...)
	if !ok {
		return nil
	}
	out := make([]string, 0, 4)
	seen := make(map[string]bool, 4)
	for _, raw := range conv.ToStringSlice(v) {
		if t, ok := NormalizeTime(raw); ok && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// NormalizeDay 把星期写法（"Mon" / "monday"）归一为小写全名。
func NormalizeDay(s string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, "s") // "mondays" → "monday"
	if day, ok := dayAliases[key]; ok {
		return day, true
	}
	// TrimSuffix 会误伤 "thurs"/本就以 s 结尾的缩写，补查原词
	if day, ok := dayAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return day, true
	}
	return "", false
}

var reClock = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// 时段关键词 → 代表钟点。"after school" 归入下午。
var timeOfDayHints = []struct {
	keyword string
	canon   string
}{
	{"after school", "15:00"},
	{"afterschool", "15:00"},
	{"morning", "09:00"},
	{"afternoon", "15:00"},
	{"evening", "18:00"},
}

// NormalizeTime 把时间写法归一为 "HH:MM" 24 小时制。
// 支持 "3:30 PM" / "15:30" / "9am"，以及时段关键词（morning 等）。
func NormalizeTime(s string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return "", false
	}
	for _, h := range timeOfDayHints {
		if strings.Contains(lower, h.keyword) {
			return h.canon, true
		}
	}
	m := reClock.FindStringSubmatch(lower)
	if m == nil || m[1] == "" {
		return "", false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		// 无 am/pm 时按 24h 处理；裸 "3" 无法区分上下午，放弃
		if m[2] == "" && hour < 8 {
			return "", false
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// HourOf 取 "HH:MM" 的小时部分。Times 经过 NormalizeTime 后总能解析。
func HourOf(t string) (int, bool) {
	if len(t) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(t[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

func daysFromText(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0, 4)
	seen := make(map[string]bool, 7)
	add := func(day string) {
		if !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	for _, day := range append(append([]string{}, allWeekdays...), allWeekendDays...) {
		if strings.Contains(lower, day) {
			add(day)
		}
	}
	if strings.Contains(lower, "weekday") {
		for _, day := range allWeekdays {
			add(day)
		}
	}
	if strings.Contains(lower, "weekend") {
		for _, day := range allWeekendDays {
			add(day)
		}
	}
	return out
}

func timesFromText(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0, 2)
	seen := make(map[string]bool, 3)
	for _, h := range timeOfDayHints {
		if strings.Contains(lower, h.keyword) && !seen[h.canon] {
			seen[h.canon] = true
			out = append(out, h.canon)
		}
	}
	return out
}

func recurringFromText(payload map[string]any, freeText string, def bool) bool {
	parts := []string{freeText}
	if s, ok := conv.FirstString(payload, "type", "category", "activity_type"); ok {
		parts = append(parts, s)
	}
	lower := strings.ToLower(strings.Join(parts, " "))
	for _, hint := range recurringTrueHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	for _, hint := range recurringFalseHints {
		if strings.Contains(lower, hint) {
			return false
		}
	}
	return def
}
