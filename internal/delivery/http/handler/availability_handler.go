package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kashfety/kashfety-api/internal/scheduling"
	"github.com/kashfety/kashfety-api/internal/usecase"
	"github.com/kashfety/kashfety-api/pkg/response"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableSlots lists the offering's slots for one date. Passing
// exclude_booking treats that booking's slot as free, which a reschedule
// UI needs to show the patient's own slot as selectable.
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid offering ID", nil)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter date is required", nil)
		return
	}

	var excludeBookingID *uuid.UUID
	if raw := r.URL.Query().Get("exclude_booking"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid exclude_booking ID", nil)
			return
		}
		excludeBookingID = &parsed
	}

	availability, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), offeringID, dateStr, excludeBookingID)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrMissingOfferingReference):
			response.NotFound(w, "Offering not found")
		case errors.Is(err, scheduling.ErrInvalidScheduleInput):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", availability)
}
