package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

func dayEntry(day int, start, end string) entity.WeeklySchedule {
	return entity.WeeklySchedule{
		DayOfWeek:           day,
		IsAvailable:         true,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: 30,
	}
}

func TestCheckConflictsDisjointRanges(t *testing.T) {
	proposed := []entity.WeeklySchedule{dayEntry(1, "09:00", "12:00")}
	siblings := map[int][]SiblingSchedule{
		1: {{OfferingName: "X-Ray", Entry: dayEntry(1, "13:00", "17:00")}},
	}

	assert.Empty(t, CheckConflicts(proposed, siblings))
}

func TestCheckConflictsTouchingRangesDoNotOverlap(t *testing.T) {
	proposed := []entity.WeeklySchedule{dayEntry(1, "09:00", "12:00")}
	siblings := map[int][]SiblingSchedule{
		1: {{OfferingName: "MRI", Entry: dayEntry(1, "12:00", "17:00")}},
	}

	// half-open intervals: 12:00 end meets 12:00 start without conflict
	assert.Empty(t, CheckConflicts(proposed, siblings))
}

func TestCheckConflictsReportsOverlappingWindow(t *testing.T) {
	proposed := []entity.WeeklySchedule{dayEntry(1, "09:00", "12:00")}
	siblings := map[int][]SiblingSchedule{
		1: {{OfferingName: "MRI", Entry: dayEntry(1, "11:00", "14:00")}},
	}

	conflicts := CheckConflicts(proposed, siblings)

	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "Monday")
	assert.Contains(t, conflicts[0], "MRI")
	assert.Contains(t, conflicts[0], "11:00-12:00")
}

func TestCheckConflictsAggregatesAcrossDays(t *testing.T) {
	proposed := []entity.WeeklySchedule{
		dayEntry(1, "09:00", "12:00"), // Monday, free
		dayEntry(3, "09:00", "12:00"), // Wednesday, conflicting
	}
	siblings := map[int][]SiblingSchedule{
		3: {{OfferingName: "Blood Panel", Entry: dayEntry(3, "10:00", "11:00")}},
	}

	conflicts := CheckConflicts(proposed, siblings)

	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "Wednesday")
	assert.NotContains(t, conflicts[0], "Monday")
}

func TestCheckConflictsReportsEverySibling(t *testing.T) {
	proposed := []entity.WeeklySchedule{dayEntry(5, "08:00", "18:00")}
	siblings := map[int][]SiblingSchedule{
		5: {
			{OfferingName: "Ultrasound", Entry: dayEntry(5, "09:00", "11:00")},
			{OfferingName: "CT Scan", Entry: dayEntry(5, "14:00", "16:00")},
		},
	}

	conflicts := CheckConflicts(proposed, siblings)

	// no short-circuit: the caller gets the full report
	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts[0], "Ultrasound")
	assert.Contains(t, conflicts[1], "CT Scan")
}

func TestCheckConflictsIgnoresUnavailableEntries(t *testing.T) {
	closed := dayEntry(2, "09:00", "12:00")
	closed.IsAvailable = false
	proposed := []entity.WeeklySchedule{closed}

	closedSibling := dayEntry(1, "09:00", "12:00")
	closedSibling.IsAvailable = false
	siblings := map[int][]SiblingSchedule{
		1: {{OfferingName: "ECG", Entry: closedSibling}},
		2: {{OfferingName: "ECG", Entry: dayEntry(2, "09:00", "12:00")}},
	}

	assert.Empty(t, CheckConflicts(proposed, siblings))

	open := []entity.WeeklySchedule{dayEntry(1, "09:00", "12:00")}
	assert.Empty(t, CheckConflicts(open, siblings), "unavailable sibling days never conflict")
}

func TestCheckConflictsIdempotent(t *testing.T) {
	proposed := []entity.WeeklySchedule{
		dayEntry(1, "09:00", "12:00"),
		dayEntry(3, "13:00", "17:00"),
	}
	siblings := map[int][]SiblingSchedule{
		1: {{OfferingName: "MRI", Entry: dayEntry(1, "10:00", "15:00")}},
		3: {{OfferingName: "MRI", Entry: dayEntry(3, "16:00", "18:00")}},
	}

	first := CheckConflicts(proposed, siblings)
	second := CheckConflicts(proposed, siblings)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}
