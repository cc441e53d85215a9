package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/delivery/http/middleware"
	"github.com/kashfety/kashfety-api/internal/usecase"
	"github.com/kashfety/kashfety-api/pkg/response"
	"github.com/kashfety/kashfety-api/pkg/validator"
)

type OfferingHandler struct {
	offeringUsecase usecase.OfferingUsecase
	validator       *validator.CustomValidator
}

func NewOfferingHandler(offeringUsecase usecase.OfferingUsecase, validator *validator.CustomValidator) *OfferingHandler {
	return &OfferingHandler{
		offeringUsecase: offeringUsecase,
		validator:       validator,
	}
}

func (h *OfferingHandler) CreateOffering(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.offeringUsecase.CreateOffering(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCenterNotFound:
			response.NotFound(w, "Center not found")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorRequired:
			response.Error(w, http.StatusBadRequest, "Doctor offering requires a doctor_id", nil)
		case usecase.ErrTestTypeRequired:
			response.Error(w, http.StatusBadRequest, "Lab test offering requires a test_type", nil)
		case usecase.ErrDoctorRoleMismatch:
			response.Error(w, http.StatusBadRequest, "Referenced user is not a doctor", nil)
		default:
			response.InternalServerError(w, "Failed to create offering")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Offering created successfully", offering)
}

func (h *OfferingHandler) GetOffering(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid offering ID", nil)
		return
	}

	offering, err := h.offeringUsecase.GetOffering(r.Context(), offeringID)
	if err != nil {
		if err == usecase.ErrOfferingNotFound {
			response.NotFound(w, "Offering not found")
			return
		}
		response.InternalServerError(w, "Failed to get offering")
		return
	}

	response.Success(w, http.StatusOK, "Offering retrieved successfully", offering)
}

func (h *OfferingHandler) ListByCenter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centerID, err := uuid.Parse(vars["centerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	offerings, err := h.offeringUsecase.ListByCenter(r.Context(), centerID)
	if err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to get offerings")
		return
	}

	response.Success(w, http.StatusOK, "Offerings retrieved successfully", offerings)
}

func (h *OfferingHandler) UpdateOffering(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.offeringUsecase.UpdateOffering(r.Context(), actorID, offeringID, &req)
	if err != nil {
		if err == usecase.ErrOfferingNotFound {
			response.NotFound(w, "Offering not found")
			return
		}
		response.InternalServerError(w, "Failed to update offering")
		return
	}

	response.Success(w, http.StatusOK, "Offering updated successfully", offering)
}

func (h *OfferingHandler) DeleteOffering(w http.ResponseWriter, r *http.Request) {
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

	if err := h.offeringUsecase.DeleteOffering(r.Context(), actorID, offeringID); err != nil {
		if err == usecase.ErrOfferingNotFound {
			response.NotFound(w, "Offering not found")
			return
		}
		response.InternalServerError(w, "Failed to delete offering")
		return
	}

	response.Success(w, http.StatusOK, "Offering deleted successfully", nil)
}
