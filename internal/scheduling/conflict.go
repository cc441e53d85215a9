package scheduling

import (
	"fmt"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// SiblingSchedule is another offering's persisted schedule entry at the
// same center, carrying its display name for conflict descriptions.
type SiblingSchedule struct {
	OfferingName string
	Entry        entity.WeeklySchedule
}

// CheckConflicts compares every available day of a proposed weekly
// schedule against the sibling entries for the same day of week, keyed by
// day index 0-6. Overlap uses half-open interval intersection:
// max(startA, startB) < min(endA, endB). All days are checked so the
// caller gets the complete conflict report, never just the first hit.
// An empty result means the proposal is safe to persist.
func CheckConflicts(proposed []entity.WeeklySchedule, siblings map[int][]SiblingSchedule) []string {
	conflicts := make([]string, 0)

	for _, entry := range proposed {
		if !entry.IsAvailable {
			continue
		}

		start, ok := parseClock(entry.StartTime)
		if !ok {
			continue
		}
		end, ok := parseClock(entry.EndTime)
		if !ok {
			continue
		}

		for _, sibling := range siblings[entry.DayOfWeek] {
			if !sibling.Entry.IsAvailable {
				continue
			}

			siblingStart, ok := parseClock(sibling.Entry.StartTime)
			if !ok {
				continue
			}
			siblingEnd, ok := parseClock(sibling.Entry.EndTime)
			if !ok {
				continue
			}

			overlapStart := max(start, siblingStart)
			overlapEnd := min(end, siblingEnd)
			if overlapStart < overlapEnd {
				conflicts = append(conflicts, fmt.Sprintf(
					"%s: overlaps with %s (%s-%s) in window %s-%s",
					entity.DayName(entry.DayOfWeek),
					sibling.OfferingName,
					sibling.Entry.StartTime,
					sibling.Entry.EndTime,
					formatClock(overlapStart),
					formatClock(overlapEnd),
				))
			}
		}
	}

	return conflicts
}
