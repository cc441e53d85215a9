package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateOfferingRequest struct {
	CenterID uuid.UUID  `json:"center_id" validate:"required"`
	Kind     string     `json:"kind" validate:"required,oneof=doctor lab_test"`
	DoctorID *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	TestType string     `json:"test_type" validate:"omitempty,max=100"`
	Name     string     `json:"name" validate:"required,min=3,max=255"`
}

type UpdateOfferingRequest struct {
	TestType string `json:"test_type" validate:"omitempty,max=100"`
	Name     string `json:"name" validate:"omitempty,min=3,max=255"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type OfferingResponse struct {
	ID        uuid.UUID       `json:"id"`
	CenterID  uuid.UUID       `json:"center_id"`
	Center    *CenterResponse `json:"center,omitempty"`
	Kind      string          `json:"kind"`
	DoctorID  *uuid.UUID      `json:"doctor_id,omitempty"`
	Doctor    *UserResponse   `json:"doctor,omitempty"`
	TestType  string          `json:"test_type,omitempty"`
	Name      string          `json:"name"`
	IsActive  *bool           `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OfferingListResponse struct {
	Offerings []OfferingResponse `json:"offerings"`
	Total     int                `json:"total"`
}
