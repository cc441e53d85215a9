package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsCountAndSpacing(t *testing.T) {
	slots := GenerateSlots("09:00", "10:30", 30)

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
	assert.Equal(t, "10:00", slots[2].Time)
	for _, slot := range slots {
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestGenerateSlotsCountInvariant(t *testing.T) {
	// floor((end-start)/duration) slots, each duration minutes apart
	cases := []struct {
		start    string
		end      string
		duration int
		want     int
	}{
		{"08:00", "17:00", 60, 9},
		{"08:00", "17:00", 45, 12},
		{"09:00", "09:15", 15, 1},
		{"09:00", "09:14", 15, 0},
		{"00:00", "23:59", 120, 11},
	}

	for _, tc := range cases {
		slots := GenerateSlots(tc.start, tc.end, tc.duration)
		require.Len(t, slots, tc.want, "start=%s end=%s duration=%d", tc.start, tc.end, tc.duration)

		for i := 1; i < len(slots); i++ {
			prev, ok := parseClock(slots[i-1].Time)
			require.True(t, ok)
			cur, ok := parseClock(slots[i].Time)
			require.True(t, ok)
			assert.Equal(t, tc.duration, cur-prev)
		}
	}
}

func TestGenerateSlotsDropsPartialTrailingSlot(t *testing.T) {
	// 09:00-10:20 with 30 minute slots: 10:00 would end at 10:30 > 10:20
	slots := GenerateSlots("09:00", "10:20", 30)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	first := GenerateSlots("09:00", "12:00", 20)
	second := GenerateSlots("09:00", "12:00", 20)

	assert.Equal(t, first, second)
}

func TestGenerateSlotsEmptyOnMissingOrInvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		duration int
	}{
		{"missing start", "", "10:00", 30},
		{"missing end", "09:00", "", 30},
		{"zero duration", "09:00", "10:00", 0},
		{"negative duration", "09:00", "10:00", -15},
		{"malformed start", "9am", "10:00", 30},
		{"malformed end", "09:00", "25:99", 30},
		{"end before start", "14:00", "09:00", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := GenerateSlots(tc.start, tc.end, tc.duration)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	minutes, ok := parseClock("13:45")
	require.True(t, ok)
	assert.Equal(t, 13*60+45, minutes)
	assert.Equal(t, "13:45", formatClock(minutes))
	assert.Equal(t, "07:05", formatClock(7*60+5))
}
