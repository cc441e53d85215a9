package converter

import (
	"github.com/google/uuid"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// OfferingToResponse converts an Offering entity to OfferingResponse DTO
func OfferingToResponse(offering *entity.Offering) *dto.OfferingResponse {
	if offering == nil {
		return nil
	}

	response := &dto.OfferingResponse{
		ID:        offering.ID,
		CenterID:  offering.CenterID,
		Kind:      string(offering.Kind),
		DoctorID:  offering.DoctorID,
		TestType:  offering.TestType,
		Name:      offering.Name,
		IsActive:  offering.IsActive,
		CreatedAt: offering.CreatedAt,
		UpdatedAt: offering.UpdatedAt,
	}

	// Include center info if available
	if offering.Center.ID != uuid.Nil {
		response.Center = CenterToResponse(&offering.Center)
	}

	// Include doctor info if available
	if offering.Doctor != nil {
		response.Doctor = UserToResponse(offering.Doctor)
	}

	return response
}

// OfferingsToResponses converts a slice of Offering entities to slice of OfferingResponse DTOs
func OfferingsToResponses(offerings []entity.Offering) []dto.OfferingResponse {
	responses := make([]dto.OfferingResponse, len(offerings))
	for i, offering := range offerings {
		responses[i] = *OfferingToResponse(&offering)
	}
	return responses
}
