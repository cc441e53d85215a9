package scheduling

import (
	"fmt"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// Slot duration bounds enforced when a schedule is saved
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 120
)

// ValidateEntry checks a weekly schedule entry before it is persisted.
// Entries marked unavailable only need a valid day index; available
// entries must carry parseable times, start before end, a duration inside
// [15, 120] and, when present, a break window fully inside the working
// window. Violations are wrapped ErrInvalidScheduleInput.
func ValidateEntry(entry *entity.WeeklySchedule) error {
	if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week %d out of range 0-6", ErrInvalidScheduleInput, entry.DayOfWeek)
	}

	if !entry.IsAvailable {
		return nil
	}

	start, ok := parseClock(entry.StartTime)
	if !ok {
		return fmt.Errorf("%w: start_time %q is not HH:MM", ErrInvalidScheduleInput, entry.StartTime)
	}
	end, ok := parseClock(entry.EndTime)
	if !ok {
		return fmt.Errorf("%w: end_time %q is not HH:MM", ErrInvalidScheduleInput, entry.EndTime)
	}
	if start >= end {
		return fmt.Errorf("%w: end_time %s must be after start_time %s", ErrInvalidScheduleInput, entry.EndTime, entry.StartTime)
	}

	if entry.SlotDurationMinutes < MinSlotDurationMinutes || entry.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot_duration_minutes %d outside [%d, %d]",
			ErrInvalidScheduleInput, entry.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	if (entry.BreakStart == nil) != (entry.BreakEnd == nil) {
		return fmt.Errorf("%w: break_start and break_end must be set together", ErrInvalidScheduleInput)
	}
	if entry.BreakStart != nil {
		breakStart, ok := parseClock(*entry.BreakStart)
		if !ok {
			return fmt.Errorf("%w: break_start %q is not HH:MM", ErrInvalidScheduleInput, *entry.BreakStart)
		}
		breakEnd, ok := parseClock(*entry.BreakEnd)
		if !ok {
			return fmt.Errorf("%w: break_end %q is not HH:MM", ErrInvalidScheduleInput, *entry.BreakEnd)
		}
		if breakStart >= breakEnd {
			return fmt.Errorf("%w: break_end %s must be after break_start %s", ErrInvalidScheduleInput, *entry.BreakEnd, *entry.BreakStart)
		}
		if breakStart < start || breakEnd > end {
			return fmt.Errorf("%w: break window %s-%s must lie within %s-%s",
				ErrInvalidScheduleInput, *entry.BreakStart, *entry.BreakEnd, entry.StartTime, entry.EndTime)
		}
	}

	return nil
}
