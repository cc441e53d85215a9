package converter

import (
	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// CenterToResponse converts a Center entity to CenterResponse DTO
func CenterToResponse(center *entity.Center) *dto.CenterResponse {
	if center == nil {
		return nil
	}

	return &dto.CenterResponse{
		ID:        center.ID,
		Name:      center.Name,
		Address:   center.Address,
		Phone:     center.Phone,
		IsActive:  center.IsActive,
		CreatedAt: center.CreatedAt,
		UpdatedAt: center.UpdatedAt,
	}
}

// CentersToResponses converts a slice of Center entities to slice of CenterResponse DTOs
func CentersToResponses(centers []entity.Center) []dto.CenterResponse {
	responses := make([]dto.CenterResponse, len(centers))
	for i, center := range centers {
		responses[i] = *CenterToResponse(&center)
	}
	return responses
}
