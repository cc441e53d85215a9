package scheduling

import (
	"github.com/google/uuid"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// SlotAvailability is one generated slot tagged with whether it can still
// be booked. Unavailable slots are kept in the list so callers can render
// them disabled instead of hiding them.
type SlotAvailability struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}

// ResolveAvailability generates the slots for a weekly schedule entry and
// marks each one unavailable when its start falls inside the entry's break
// window [BreakStart, BreakEnd) or appears in bookedTimes. A nil entry or
// an entry with IsAvailable false resolves to an empty list.
//
// bookedTimes is a snapshot of occupied start times for one (offering,
// date); the caller already excluded the booking being rescheduled, and the
// final booking write must re-validate under the storage layer's
// uniqueness guarantee.
func ResolveAvailability(entry *entity.WeeklySchedule, bookedTimes map[string]bool) []SlotAvailability {
	if entry == nil || !entry.IsAvailable {
		return []SlotAvailability{}
	}

	slots := GenerateSlots(entry.StartTime, entry.EndTime, entry.SlotDurationMinutes)
	breakStart, breakEnd, hasBreak := breakWindow(entry)

	result := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		minute, _ := parseClock(slot.Time)

		available := true
		if hasBreak && minute >= breakStart && minute < breakEnd {
			available = false
		}
		if bookedTimes[slot.Time] {
			available = false
		}

		result[i] = SlotAvailability{
			Time:        slot.Time,
			IsAvailable: available,
		}
	}

	return result
}

// BookedTimesFromBookings collapses a date's bookings into the occupied
// start-time set consumed by ResolveAvailability. Cancelled bookings never
// occupy a slot. When excludeBookingID is set (a reschedule), that booking
// is skipped so the patient can reselect their current slot.
func BookedTimesFromBookings(bookings []entity.Booking, excludeBookingID *uuid.UUID) map[string]bool {
	booked := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		booked[booking.StartTime] = true
	}
	return booked
}

// breakWindow returns the entry's break window in minutes since midnight,
// or false when the entry has no usable break window
func breakWindow(entry *entity.WeeklySchedule) (int, int, bool) {
	if entry.BreakStart == nil || entry.BreakEnd == nil {
		return 0, 0, false
	}
	start, ok := parseClock(*entry.BreakStart)
	if !ok {
		return 0, 0, false
	}
	end, ok := parseClock(*entry.BreakEnd)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}
