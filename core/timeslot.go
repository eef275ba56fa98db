package core

import "strings"

// TimeSlot 是排期匹配的统一时段枚举（工作日/周末 × 上午/下午/晚上）。
// 抽取层之后的所有排期匹配都只用该集合表达，不再出现原始钟点。
type TimeSlot string

const (
	SlotWeekdayMorning   TimeSlot = "weekday_morning"
	SlotWeekdayAfternoon TimeSlot = "weekday_afternoon"
	SlotWeekdayEvening   TimeSlot = "weekday_evening"
	SlotWeekendMorning   TimeSlot = "weekend_morning"
	SlotWeekendAfternoon TimeSlot = "weekend_afternoon"
	SlotWeekendEvening   TimeSlot = "weekend_evening"
)

// AllTimeSlots 返回全部六个时段（固定顺序）。
func AllTimeSlots() []TimeSlot {
	return []TimeSlot{
		SlotWeekdayMorning, SlotWeekdayAfternoon, SlotWeekdayEvening,
		SlotWeekendMorning, SlotWeekendAfternoon, SlotWeekendEvening,
	}
}

// ValidTimeSlot 校验时段值是否属于闭集。
func ValidTimeSlot(s TimeSlot) bool {
	switch s {
	case SlotWeekdayMorning, SlotWeekdayAfternoon, SlotWeekdayEvening,
		SlotWeekendMorning, SlotWeekendAfternoon, SlotWeekendEvening:
		return true
	default:
		return false
	}
}

// IsWeekend 返回该时段是否属于周末。
func (s TimeSlot) IsWeekend() bool {
	return strings.HasPrefix(string(s), "weekend_")
}

// DayPart 返回时段的一天内部分：morning / afternoon / evening。
func (s TimeSlot) DayPart() string {
	if i := strings.IndexByte(string(s), '_'); i >= 0 {
		return string(s)[i+1:]
	}
	return ""
}

var weekendDays = map[string]bool{
	"saturday": true,
	"sunday":   true,
}

// IsWeekendDay 判断星期名（小写英文）是否为周末。
func IsWeekendDay(day string) bool {
	return weekendDays[strings.ToLower(strings.TrimSpace(day))]
}

// SlotOf 把（星期名, 24 小时制小时）折算成时段枚举。
// 小时分桶：[5,12) morning、[12,17) afternoon、[17,22) evening；
// 桶外小时（深夜/凌晨）不属于任何时段，返回 false。
func SlotOf(day string, hour int) (TimeSlot, bool) {
	var part string
	switch {
	case hour >= 5 && hour < 12:
		part = "morning"
	case hour >= 12 && hour < 17:
		part = "afternoon"
	case hour >= 17 && hour < 22:
		part = "evening"
	default:
		return "", false
	}
	if IsWeekendDay(day) {
		return TimeSlot("weekend_" + part), true
	}
	return TimeSlot("weekday_" + part), true
}
