package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type SlotResponse struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}

type AvailabilityResponse struct {
	OfferingID uuid.UUID      `json:"offering_id"`
	Date       string         `json:"date"`
	DayOfWeek  int            `json:"day_of_week"`
	Slots      []SlotResponse `json:"slots"`
	Total      int            `json:"total"`
}
