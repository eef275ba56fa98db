package rank

import (
	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/normalize"
)

// 排期分：把活动的 (day, time) 对折算为时段枚举后与家庭偏好求交。
// 精确时段命中 1.0；只在工作日/周末类别上重合 0.6；无重合 0.2；
// 排期完全未知 0.5。灵活度加成（very_flexible +0.3、flexible +0.15，
// 总分封顶 1.0）。
// 家庭只允许一个时段且未精确命中时 ×0.3（下限 0.1）——单一硬时段
// 约束接近一票否决。家庭没给时段偏好时返回 0.7。

const (
	scheduleScoreNoPref  = 0.7
	scheduleScoreUnknown = 0.5
)

// ScheduleScore 计算排期契合分，[0,1]。
func ScheduleScore(preferred []core.TimeSlot, sched core.Schedule) float64 {
	if len(preferred) == 0 {
		return scheduleScoreNoPref
	}

	slots := activitySlots(sched)

	var score float64
	exactMatch := false
	switch {
	case len(slots) == 0:
		score = scheduleScoreUnknown
	case slotsOverlap(slots, preferred):
		score = 1.0
		exactMatch = true
	case categoryOverlap(slots, preferred):
		score = 0.6
	default:
		score = 0.2
	}

	switch sched.Flexibility {
	case core.FlexVeryFlexible:
		score += 0.3
	case core.FlexFlexible:
		score += 0.15
	}
	if score > 1.0 {
		score = 1.0
	}

	if len(preferred) == 1 && !exactMatch {
		score *= 0.3
		if score < 0.1 {
			score = 0.1
		}
	}
	return score
}

// activitySlots 把活动排期展开为时段枚举集合。
// 只有 day 没有 time（或反之）时无法折算精确时段，返回空集，
// 由调用方按"排期未知"处理（灵活度在上层单独加成）。
func activitySlots(sched core.Schedule) []core.TimeSlot {
	if len(sched.Days) == 0 || len(sched.Times) == 0 {
		return nil
	}
	seen := make(map[core.TimeSlot]bool, 6)
	out := make([]core.TimeSlot, 0, 4)
	for _, day := range sched.Days {
		for _, t := range sched.Times {
			hour, ok := normalize.HourOf(t)
			if !ok {
				continue
			}
			slot, ok := core.SlotOf(day, hour)
			if !ok || seen[slot] {
				continue
			}
			seen[slot] = true
			out = append(out, slot)
		}
	}
	return out
}

func slotsOverlap(a, b []core.TimeSlot) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// categoryOverlap 只比较工作日/周末类别。
func categoryOverlap(a, b []core.TimeSlot) bool {
	for _, x := range a {
		for _, y := range b {
			if x.IsWeekend() == y.IsWeekend() {
				return true
			}
		}
	}
	return false
}
