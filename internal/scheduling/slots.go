package scheduling

import (
	"fmt"
	"time"
)

// Slot is a derived bookable start time. Slots are never persisted; they
// are regenerated on demand from a weekly schedule entry.
type Slot struct {
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// GenerateSlots walks from start to end emitting one slot per duration
// step. Every emitted slot fits fully before end (half-open intervals), so
// a trailing remainder shorter than one slot is dropped. Missing or zero
// inputs yield an empty sequence, not an error.
func GenerateSlots(startTime, endTime string, durationMinutes int) []Slot {
	slots := make([]Slot, 0)
	if startTime == "" || endTime == "" || durationMinutes <= 0 {
		return slots
	}

	start, ok := parseClock(startTime)
	if !ok {
		return slots
	}
	end, ok := parseClock(endTime)
	if !ok {
		return slots
	}

	for current := start; current+durationMinutes <= end; current += durationMinutes {
		slots = append(slots, Slot{
			Time:            formatClock(current),
			DurationMinutes: durationMinutes,
		})
	}

	return slots
}

// parseClock converts an HH:MM string to minutes since midnight
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// formatClock converts minutes since midnight back to HH:MM
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
