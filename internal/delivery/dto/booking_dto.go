package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	OfferingID uuid.UUID `json:"offering_id" validate:"required"`
	Date       string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time       string    `json:"time" validate:"required"` // Format: HH:MM
	Notes      string    `json:"notes" validate:"omitempty,max=500"`
}

type RescheduleBookingRequest struct {
	Date string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time string `json:"time" validate:"required"` // Format: HH:MM
}

// Response DTOs

type BookingResponse struct {
	ID          uuid.UUID         `json:"id"`
	PatientID   uuid.UUID         `json:"patient_id"`
	OfferingID  uuid.UUID         `json:"offering_id"`
	Offering    *OfferingResponse `json:"offering,omitempty"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	BookingCode string            `json:"booking_code"`
	Status      string            `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
