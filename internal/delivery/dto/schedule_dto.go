package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleEntryRequest struct {
	DayOfWeek           int     `json:"day_of_week" validate:"gte=0,lte=6"`
	IsAvailable         bool    `json:"is_available"`
	StartTime           string  `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime             string  `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	SlotDurationMinutes int     `json:"slot_duration_minutes" validate:"omitempty,gte=15,lte=120"`
	BreakStart          *string `json:"break_start" validate:"omitempty"` // Format: HH:MM
	BreakEnd            *string `json:"break_end" validate:"omitempty"`   // Format: HH:MM
	Notes               string  `json:"notes" validate:"omitempty,max=500"`
}

type SaveScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// Response DTOs

type ScheduleEntryResponse struct {
	ID                  int64     `json:"id"`
	DayOfWeek           int       `json:"day_of_week"`
	DayName             string    `json:"day_name"`
	IsAvailable         bool      `json:"is_available"`
	StartTime           string    `json:"start_time,omitempty"`
	EndTime             string    `json:"end_time,omitempty"`
	SlotDurationMinutes int       `json:"slot_duration_minutes,omitempty"`
	BreakStart          *string   `json:"break_start,omitempty"`
	BreakEnd            *string   `json:"break_end,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ScheduleResponse struct {
	OfferingID uuid.UUID               `json:"offering_id"`
	Entries    []ScheduleEntryResponse `json:"entries"`
	Total      int                     `json:"total"`
}
