package rank

import (
	"testing"

	"github.com/rushteam/famkit/core"
)

func TestScheduleScore(t *testing.T) {
	tests := []struct {
		name      string
		preferred []core.TimeSlot
		sched     core.Schedule
		want      float64
	}{
		{
			name: "no preference",
			sched: core.Schedule{
				Days:  []string{"monday"},
				Times: []string{"15:30"},
			},
			want: 0.7,
		},
		{
			name:      "exact slot match",
			preferred: []core.TimeSlot{core.SlotWeekdayAfternoon},
			sched: core.Schedule{
				Days:        []string{"monday"},
				Times:       []string{"15:30"},
				Flexibility: core.FlexFixed,
			},
			want: 1.0,
		},
		{
			name:      "category overlap only",
			preferred: []core.TimeSlot{core.SlotWeekendMorning, core.SlotWeekendEvening},
			sched: core.Schedule{
				Days:        []string{"saturday"},
				Times:       []string{"15:00"},
				Flexibility: core.FlexFixed,
			},
			want: 0.6,
		},
		{
			name:      "no overlap",
			preferred: []core.TimeSlot{core.SlotWeekendMorning, core.SlotWeekendAfternoon},
			sched: core.Schedule{
				Days:        []string{"monday"},
				Times:       []string{"15:30"},
				Flexibility: core.FlexFixed,
			},
			want: 0.2,
		},
		{
			name:      "unknown schedule",
			preferred: []core.TimeSlot{core.SlotWeekdayMorning, core.SlotWeekendMorning},
			sched:     core.Schedule{},
			want:      0.5,
		},
		{
			name:      "very flexible bonus on unknown",
			preferred: []core.TimeSlot{core.SlotWeekdayMorning, core.SlotWeekendMorning},
			sched:     core.Schedule{Flexibility: core.FlexVeryFlexible},
			want:      0.8,
		},
		{
			name:      "flexible bonus capped at one",
			preferred: []core.TimeSlot{core.SlotWeekdayAfternoon},
			sched: core.Schedule{
				Days:        []string{"monday"},
				Times:       []string{"15:30"},
				Flexibility: core.FlexFlexible,
			},
			want: 1.0,
		},
		{
			name:      "single hard slot miss is near veto",
			preferred: []core.TimeSlot{core.SlotWeekdayMorning},
			sched: core.Schedule{
				Days:        []string{"saturday"},
				Times:       []string{"9:00"},
				Flexibility: core.FlexFixed,
			},
			want: 0.1,
		},
		{
			name:      "single slot category overlap penalized",
			preferred: []core.TimeSlot{core.SlotWeekendMorning},
			sched: core.Schedule{
				Days:        []string{"saturday"},
				Times:       []string{"15:00"},
				Flexibility: core.FlexFixed,
			},
			want: 0.18,
		},
		{
			name:      "days without times counts as unknown",
			preferred: []core.TimeSlot{core.SlotWeekendMorning, core.SlotWeekdayMorning},
			sched:     core.Schedule{Days: []string{"saturday"}, Flexibility: core.FlexFlexible},
			want:      0.65,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleScore(tt.preferred, tt.sched)
			if !closeTo(got, tt.want) {
				t.Errorf("ScheduleScore = %v, want %v", got, tt.want)
			}
		})
	}
}
