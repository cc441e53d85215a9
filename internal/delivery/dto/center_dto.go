package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCenterRequest struct {
	Name    string     `json:"name" validate:"required,min=3,max=255"`
	Address string     `json:"address" validate:"omitempty"`
	Phone   string     `json:"phone" validate:"omitempty,min=8,max=20"`
	OwnerID *uuid.UUID `json:"owner_id" validate:"omitempty"`
}

type UpdateCenterRequest struct {
	Name    string `json:"name" validate:"omitempty,min=3,max=255"`
	Address string `json:"address" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty,min=8,max=20"`
	IsActive *bool `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type CenterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CenterListResponse struct {
	Centers []CenterResponse `json:"centers"`
	Total   int              `json:"total"`
}
