package converter

import (
	"github.com/google/uuid"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:          booking.ID,
		PatientID:   booking.PatientID,
		OfferingID:  booking.OfferingID,
		Date:        booking.BookingDate.Format("2006-01-02"),
		Time:        booking.StartTime,
		BookingCode: booking.BookingCode,
		Status:      string(booking.Status),
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}

	// Include offering info if available
	if booking.Offering.ID != uuid.Nil {
		response.Offering = OfferingToResponse(&booking.Offering)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
