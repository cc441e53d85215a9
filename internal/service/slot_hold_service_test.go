package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotHoldKey(t *testing.T) {
	offeringID := uuid.MustParse("8a0f9a36-1cc8-4b8c-9e5f-3d2a6b7c8d9e")
	date, err := time.Parse("2006-01-02", "2025-03-17")
	require.NoError(t, err)

	key := slotHoldKey(offeringID, date, "09:30")
	assert.Equal(t, "booking:hold:8a0f9a36-1cc8-4b8c-9e5f-3d2a6b7c8d9e:2025-03-17:09:30", key)
}

func TestSlotHoldKeyDistinguishesSlots(t *testing.T) {
	offeringID := uuid.New()
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	// Different times on the same day must never collide on one hold
	assert.NotEqual(t,
		slotHoldKey(offeringID, date, "09:00"),
		slotHoldKey(offeringID, date, "09:30"),
	)
	assert.NotEqual(t,
		slotHoldKey(offeringID, date, "09:00"),
		slotHoldKey(offeringID, date.AddDate(0, 0, 1), "09:00"),
	)
	assert.NotEqual(t,
		slotHoldKey(offeringID, date, "09:00"),
		slotHoldKey(uuid.New(), date, "09:00"),
	)
}
