package scheduling

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

func availableEntry(start, end string, duration int) *entity.WeeklySchedule {
	return &entity.WeeklySchedule{
		DayOfWeek:           1,
		IsAvailable:         true,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: duration,
	}
}

func TestResolveAvailabilityMarksBookedSlots(t *testing.T) {
	entry := availableEntry("09:00", "10:30", 30)
	booked := map[string]bool{"09:30": true}

	slots := ResolveAvailability(entry, booked)

	require.Len(t, slots, 3)
	assert.Equal(t, SlotAvailability{Time: "09:00", IsAvailable: true}, slots[0])
	assert.Equal(t, SlotAvailability{Time: "09:30", IsAvailable: false}, slots[1])
	assert.Equal(t, SlotAvailability{Time: "10:00", IsAvailable: true}, slots[2])
}

func TestResolveAvailabilityExcludesBreakWindow(t *testing.T) {
	entry := availableEntry("09:00", "12:00", 30)
	breakStart := "10:00"
	breakEnd := "10:30"
	entry.BreakStart = &breakStart
	entry.BreakEnd = &breakEnd

	slots := ResolveAvailability(entry, nil)

	require.Len(t, slots, 6)
	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.IsAvailable
	}
	assert.False(t, byTime["10:00"], "slot inside break must be unavailable")
	assert.True(t, byTime["09:30"])
	assert.True(t, byTime["10:30"], "break end is exclusive")
}

func TestResolveAvailabilityClosedDay(t *testing.T) {
	entry := availableEntry("09:00", "12:00", 30)
	entry.IsAvailable = false

	assert.Empty(t, ResolveAvailability(entry, nil))
	assert.Empty(t, ResolveAvailability(nil, nil))
}

func TestResolveAvailabilityKeepsUnavailableSlotsInList(t *testing.T) {
	entry := availableEntry("09:00", "11:00", 30)
	booked := map[string]bool{"09:00": true, "10:30": true}

	slots := ResolveAvailability(entry, booked)

	// booked slots stay in the list, tagged unavailable, so the caller can
	// render them disabled rather than hiding them
	require.Len(t, slots, 4)
	assert.False(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)
	assert.False(t, slots[3].IsAvailable)
}

func TestBookedTimesFromBookings(t *testing.T) {
	bookings := []entity.Booking{
		{ID: uuid.New(), StartTime: "09:00", Status: entity.BookingStatusConfirmed},
		{ID: uuid.New(), StartTime: "09:30", Status: entity.BookingStatusPending},
		{ID: uuid.New(), StartTime: "10:00", Status: entity.BookingStatusCancelled},
	}

	booked := BookedTimesFromBookings(bookings, nil)

	assert.True(t, booked["09:00"])
	assert.True(t, booked["09:30"])
	assert.False(t, booked["10:00"], "cancelled bookings do not occupy slots")
}

func TestRescheduleExcludesOwnBooking(t *testing.T) {
	ownBookingID := uuid.New()
	bookings := []entity.Booking{
		{ID: ownBookingID, StartTime: "09:30", Status: entity.BookingStatusConfirmed},
		{ID: uuid.New(), StartTime: "10:00", Status: entity.BookingStatusConfirmed},
	}

	booked := BookedTimesFromBookings(bookings, &ownBookingID)
	slots := ResolveAvailability(availableEntry("09:00", "10:30", 30), booked)

	require.Len(t, slots, 3)
	assert.True(t, slots[1].IsAvailable, "patient must be able to keep their current 09:30 slot")
	assert.False(t, slots[2].IsAvailable)
}
