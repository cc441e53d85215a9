package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

func TestValidateEntryAccepts(t *testing.T) {
	breakStart := "12:00"
	breakEnd := "13:00"
	entry := &entity.WeeklySchedule{
		DayOfWeek:           1,
		IsAvailable:         true,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		BreakStart:          &breakStart,
		BreakEnd:            &breakEnd,
	}

	assert.NoError(t, ValidateEntry(entry))
}

func TestValidateEntrySkipsUnavailableDays(t *testing.T) {
	// a closed day carries no times to validate
	entry := &entity.WeeklySchedule{DayOfWeek: 0, IsAvailable: false}

	assert.NoError(t, ValidateEntry(entry))
}

func TestValidateEntryRejects(t *testing.T) {
	lateBreakStart := "16:30"
	lateBreakEnd := "17:30"
	invertedBreakStart := "13:00"
	invertedBreakEnd := "12:00"
	loneBreak := "12:00"

	cases := []struct {
		name  string
		entry entity.WeeklySchedule
	}{
		{"day out of range", entity.WeeklySchedule{DayOfWeek: 7, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 30}},
		{"malformed start", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "nine", EndTime: "17:00", SlotDurationMinutes: 30}},
		{"end before start", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "17:00", EndTime: "09:00", SlotDurationMinutes: 30}},
		{"end equals start", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "09:00", SlotDurationMinutes: 30}},
		{"duration too short", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 10}},
		{"duration too long", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 180}},
		{"break outside window", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 30, BreakStart: &lateBreakStart, BreakEnd: &lateBreakEnd}},
		{"break inverted", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 30, BreakStart: &invertedBreakStart, BreakEnd: &invertedBreakEnd}},
		{"break start without end", entity.WeeklySchedule{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 30, BreakStart: &loneBreak}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntry(&tc.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScheduleInput)
		})
	}
}
