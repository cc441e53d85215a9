package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/delivery/http/middleware"
	"github.com/kashfety/kashfety-api/internal/scheduling"
	"github.com/kashfety/kashfety-api/internal/usecase"
	"github.com/kashfety/kashfety-api/pkg/response"
	"github.com/kashfety/kashfety-api/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid offering ID", nil)
		return
	}

	schedule, err := h.scheduleUsecase.GetWeeklySchedule(r.Context(), offeringID)
	if err != nil {
		if errors.Is(err, scheduling.ErrMissingOfferingReference) {
			response.NotFound(w, "Offering not found")
			return
		}
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// SaveWeeklySchedule replaces an offering's weekly schedule. A save that
// overlaps sibling offerings is rejected with 409 and the full conflict
// list so the client can fix every collision in one pass.
func (h *ScheduleHandler) SaveWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	offeringID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid offering ID", nil)
		return
	}

	var req dto.SaveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.SaveWeeklySchedule(r.Context(), actorID, offeringID, &req)
	if err != nil {
		var conflictErr *scheduling.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			response.Conflict(w, "Schedule conflicts with other offerings at this center", conflictErr.Conflicts)
		case errors.Is(err, scheduling.ErrInvalidScheduleInput):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, scheduling.ErrMissingOfferingReference):
			response.NotFound(w, "Offering not found")
		default:
			response.InternalServerError(w, "Failed to save schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved successfully", schedule)
}
